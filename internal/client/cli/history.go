package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resipass/internal/client/services"
	"resipass/internal/common"
)

// history fetches and renders the resident's access log.
// Usage: history [entry|exit] [from=YYYY-MM-DD] [to=YYYY-MM-DD] [plate=XXX]
func (a *App) history(ctx context.Context, args []string) {
	filter, err := parseHistoryArgs(args)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	records, err := a.access.History(ctx, filter)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			fmt.Fprintln(a.out, "No session. Please login first.")
			return
		}
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "No access records.")
		return
	}

	for _, r := range records {
		line := fmt.Sprintf("%s  %-7s", r.Time.Format("02/01/2006 15:04"), r.Type)
		if r.GuestName != "" {
			line += "  guest: " + r.GuestName
		}
		if r.GuardName != "" {
			line += "  guard: " + r.GuardName
		}
		if r.VehiclePlate != "" {
			line += "  plate: " + r.VehiclePlate
		}
		fmt.Fprintln(a.out, line)
	}
}

func parseHistoryArgs(args []string) (services.HistoryFilter, error) {
	var f services.HistoryFilter

	for _, arg := range args {
		switch {
		case strings.EqualFold(arg, "entry"):
			f.AccessType = "Entrada"
		case strings.EqualFold(arg, "exit"):
			f.AccessType = "Salida"
		case strings.HasPrefix(arg, "from="):
			t, err := time.Parse("2006-01-02", strings.TrimPrefix(arg, "from="))
			if err != nil {
				return f, fmt.Errorf("bad from date: use from=YYYY-MM-DD")
			}
			f.From = &t
		case strings.HasPrefix(arg, "to="):
			t, err := time.Parse("2006-01-02", strings.TrimPrefix(arg, "to="))
			if err != nil {
				return f, fmt.Errorf("bad to date: use to=YYYY-MM-DD")
			}
			f.To = &t
		case strings.HasPrefix(arg, "plate="):
			f.VehiclePlate = strings.TrimPrefix(arg, "plate=")
		default:
			return f, fmt.Errorf("unknown filter %q: use [entry|exit] [from=YYYY-MM-DD] [to=YYYY-MM-DD] [plate=XXX]", arg)
		}
	}

	return f, nil
}
