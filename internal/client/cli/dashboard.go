package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"resipass/internal/client/models"
	"resipass/internal/common"
)

// refresh re-fetches the invitation list and re-renders the current tab.
// It is the only way the list changes: mutations succeed server-side first
// and then trigger a refresh, never an in-place edit.
func (a *App) refresh(ctx context.Context) {
	a.state = StateLoading

	list, err := a.invitations.List(ctx)
	switch {
	case errors.Is(err, common.ErrNoSession):
		a.state = StateEmptySession
		a.list = nil
		fmt.Fprintln(a.out, "No session. Please login first.")
	case err != nil:
		a.state = StateError
		a.lastError = err.Error()
		fmt.Fprintf(a.out, "Error: %s\n", a.lastError)
	default:
		a.state = StateLoaded
		a.list = list
		a.renderDashboard()
	}
}

// selectTab re-applies the filter over the already-fetched list. No fetch.
func (a *App) selectTab(ctx context.Context, name string) {
	tab, err := models.ParseTab(name)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: tab <active|used|expired|cancelled>")
		return
	}
	a.tab = tab

	if a.state != StateLoaded {
		a.refresh(ctx)
		return
	}
	a.renderDashboard()
}

func (a *App) renderDashboard() {
	fmt.Fprint(a.out, "Tabs:")
	for _, tab := range models.Tabs() {
		marker := " "
		if tab == a.tab {
			marker = "*"
		}
		fmt.Fprintf(a.out, " %s%s(%d)", marker, tab, len(models.Filter(a.list, tab)))
	}
	fmt.Fprintln(a.out)

	filtered := models.Filter(a.list, a.tab)
	if len(filtered) == 0 {
		if len(a.list) == 0 {
			fmt.Fprintln(a.out, "You have no invitations yet.")
		} else {
			fmt.Fprintf(a.out, "No invitations on the %s tab.\n", a.tab)
		}
		return
	}

	for _, inv := range filtered {
		line := fmt.Sprintf("#%-4d %-25s %-11s %s", inv.ID, inv.GuestName(), inv.Kind, inv.Status)
		if inv.Kind == models.KindByDate && inv.ValidUntil != nil {
			line += " until " + inv.ValidUntil.Format("02/01/2006")
		}
		fmt.Fprintln(a.out, line)
	}
}

// parseID reads the numeric invitation id from command args.
func (a *App) parseID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	return id, true
}

// cancel marks an invitation cancelled. On failure the list stays exactly
// as it was: no optimistic removal, no refresh.
func (a *App) cancel(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "Usage: cancel <id>")
	if !ok {
		return
	}

	msg, err := a.invitations.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			a.state = StateEmptySession
			fmt.Fprintln(a.out, "No session. Please login first.")
			return
		}
		fmt.Fprintf(a.out, "Cancel failed: %s\n", err.Error())
		return
	}

	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	a.refresh(ctx)
}

// delete removes an invitation entirely. Same contract as cancel.
func (a *App) delete(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "Usage: delete <id>")
	if !ok {
		return
	}

	if err := a.invitations.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNoSession) {
			a.state = StateEmptySession
			fmt.Fprintln(a.out, "No session. Please login first.")
			return
		}
		fmt.Fprintf(a.out, "Delete failed: %s\n", err.Error())
		return
	}

	fmt.Fprintln(a.out, "Invitation deleted.")
	a.refresh(ctx)
}

// findInvitation locates an invitation in the fetched list, refreshing
// first if the dashboard has not been loaded yet.
func (a *App) findInvitation(ctx context.Context, id int) (*models.Invitation, bool) {
	if a.state != StateLoaded {
		a.refresh(ctx)
		if a.state != StateLoaded {
			return nil, false
		}
	}
	for i := range a.list {
		if a.list[i].ID == id {
			return &a.list[i], true
		}
	}
	fmt.Fprintf(a.out, "No invitation with id %d.\n", id)
	return nil, false
}
