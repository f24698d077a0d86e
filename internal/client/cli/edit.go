package cli

import (
	"context"
	"fmt"

	"resipass/internal/client/services"
)

// edit updates an invitation's fields. The form is preloaded with current
// values; a failed save keeps the entered values visible in the message and
// does not touch the list.
func (a *App) edit(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "Usage: edit <id>")
	if !ok {
		return
	}

	inv, ok := a.findInvitation(ctx, id)
	if !ok {
		return
	}

	current := services.InvitationDraft{
		Name:    inv.Name,
		Surname: inv.Surname,
		Kind:    string(inv.Kind),
	}
	if inv.ValidUntil != nil {
		current.ValidUntil = inv.ValidUntil.Format("2006-01-02")
	}

	draft, err := a.promptDraft(current)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	updated, err := a.invitations.Update(ctx, id, draft)
	if err != nil {
		fmt.Fprintf(a.out, "Update failed: %s\n", err.Error())
		fmt.Fprintf(a.out, "Entered values kept: %s %s, %s %s\n", draft.Name, draft.Surname, draft.Kind, draft.ValidUntil)
		return
	}

	fmt.Fprintf(a.out, "Invitation #%d updated.\n", updated.ID)
	a.refresh(ctx)
}
