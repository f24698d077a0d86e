package cli

import (
	"context"
	"fmt"

	"resipass/internal/client/models"
	"resipass/internal/client/services"
)

// create runs the new-invitation form. Validation happens in the service
// before any network call; on success the new QR can be saved straight away.
func (a *App) create(ctx context.Context) {
	draft, err := a.promptDraft(services.InvitationDraft{})
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	inv, err := a.invitations.Create(ctx, draft)
	if err != nil {
		fmt.Fprintf(a.out, "Create failed: %s\n", err.Error())
		return
	}

	fmt.Fprintf(a.out, "Invitation #%d created for %s (code %s).\n", inv.ID, inv.GuestName(), inv.Code)
	a.offerQRSave(ctx, inv)
	a.refresh(ctx)
}

// promptDraft collects the invitation form fields. current carries the
// values to preload, so the edit form shows and keeps existing data.
func (a *App) promptDraft(current services.InvitationDraft) (services.InvitationDraft, error) {
	var d services.InvitationDraft
	var err error

	if current.Name == "" {
		d.Name, err = getSimpleText(a.reader, "Guest name", a.out)
	} else {
		d.Name, err = GetDefaultedText(a.reader, "Guest name", current.Name, a.out)
	}
	if err != nil {
		return d, err
	}

	if current.Surname == "" {
		d.Surname, err = getSimpleText(a.reader, "Guest surname", a.out)
	} else {
		d.Surname, err = GetDefaultedText(a.reader, "Guest surname", current.Surname, a.out)
	}
	if err != nil {
		return d, err
	}

	kindPrompt := "Invitation kind (single, recurring, bydate)"
	if current.Kind == "" {
		d.Kind, err = getSimpleText(a.reader, kindPrompt, a.out)
	} else {
		d.Kind, err = GetDefaultedText(a.reader, kindPrompt, current.Kind, a.out)
	}
	if err != nil {
		return d, err
	}

	if kind, kerr := models.ParseKind(d.Kind); kerr == nil && kind == models.KindByDate {
		if current.ValidUntil == "" {
			d.ValidUntil, err = getSimpleText(a.reader, "Valid until (YYYY-MM-DD)", a.out)
		} else {
			d.ValidUntil, err = GetDefaultedText(a.reader, "Valid until (YYYY-MM-DD)", current.ValidUntil, a.out)
		}
		if err != nil {
			return d, err
		}
	}

	return d, nil
}

// offerQRSave optionally writes the invitation's QR image. A failed encode
// only suppresses the image; the invitation itself is fine.
func (a *App) offerQRSave(ctx context.Context, inv *models.Invitation) {
	path, err := getSimpleText(a.reader, "Save QR image to file (empty to skip)", a.out)
	if err != nil || path == "" {
		return
	}
	a.writeQR(ctx, inv, path)
}
