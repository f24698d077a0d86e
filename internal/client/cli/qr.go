package cli

import (
	"context"
	"fmt"

	"resipass/internal/client/models"
	"resipass/internal/client/qr"
)

// saveQR exports an invitation's QR image to a PNG file.
// Usage: qr <id> [file]
func (a *App) saveQR(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "Usage: qr <id> [file]")
	if !ok {
		return
	}

	inv, ok := a.findInvitation(ctx, id)
	if !ok {
		return
	}

	path := fmt.Sprintf("invitation-%d.png", id)
	if len(args) > 1 {
		path = args[1]
	}
	a.writeQR(ctx, inv, path)
}

// writeQR renders the invitation code to path. Encoding failures are
// logged and reported but leave everything else usable.
func (a *App) writeQR(ctx context.Context, inv *models.Invitation, path string) {
	if err := qr.SaveFile(path, inv.Code); err != nil {
		a.log.Warn(ctx, "qr encode failed", "id", inv.ID, "error", err)
		fmt.Fprintf(a.out, "Could not generate QR image: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "QR image saved to %s\n", path)
}
