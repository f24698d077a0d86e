package cli

import (
	"bufio"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resipass/internal/client/models"
	"resipass/internal/client/services"
)

func TestCreateSingleKindSkipsDatePrompt(t *testing.T) {
	// name, surname, kind, then the QR save prompt (skipped)
	restore := stubInputs("Ana", "Lopez", "single", "")
	defer restore()

	inv := &fakeInvitations{
		created: &models.Invitation{ID: 10, Name: "Ana", Surname: "Lopez", Kind: models.KindSingle, Code: "abc", Status: models.StatusActive},
		list:    sampleList(),
	}
	a, out := testApp(&fakeAuth{}, inv, &fakeAccess{})

	a.create(context.Background())

	require.Len(t, inv.drafts, 1)
	assert.Equal(t, services.InvitationDraft{Name: "Ana", Surname: "Lopez", Kind: "single"}, inv.drafts[0])
	assert.Contains(t, out.String(), "Invitation #10 created for Ana Lopez (code abc).")
	assert.Equal(t, 1, inv.listCalls, "successful create refreshes the dashboard")
}

func TestCreateByDateAsksForDate(t *testing.T) {
	restore := stubInputs("Ben", "Ruiz", "bydate", "2026-03-15", "")
	defer restore()

	inv := &fakeInvitations{
		created: &models.Invitation{ID: 11, Name: "Ben", Surname: "Ruiz", Kind: models.KindByDate, Code: "def", Status: models.StatusActive},
	}
	a, _ := testApp(&fakeAuth{}, inv, &fakeAccess{})

	a.create(context.Background())

	require.Len(t, inv.drafts, 1)
	assert.Equal(t, "2026-03-15", inv.drafts[0].ValidUntil)
}

func TestCreateFailureNoRefresh(t *testing.T) {
	restore := stubInputs("Ana", "Lopez", "single", "")
	defer restore()

	inv := &fakeInvitations{createErr: services.ErrNameRequired}
	a, out := testApp(&fakeAuth{}, inv, &fakeAccess{})

	a.create(context.Background())

	assert.Equal(t, 0, inv.listCalls)
	assert.Contains(t, out.String(), "Create failed")
}

func TestCreateSavesQRWhenAsked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guest.png")
	restore := stubInputs("Ana", "Lopez", "single", path)
	defer restore()

	inv := &fakeInvitations{
		created: &models.Invitation{ID: 12, Name: "Ana", Surname: "Lopez", Kind: models.KindSingle, Code: "qr-payload", Status: models.StatusActive},
	}
	a, out := testApp(&fakeAuth{}, inv, &fakeAccess{})

	a.create(context.Background())

	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "QR image saved to "+path)
}

func TestEditUpdates(t *testing.T) {
	// invitation #2 is ByDate, so every field is preloaded and prompted
	// with a default; pressing Enter keeps it. Only the surname changes.
	inv := &fakeInvitations{
		list:    sampleList(),
		updated: &models.Invitation{ID: 2, Name: "Ben", Surname: "Ortega", Kind: models.KindByDate, Status: models.StatusActive},
	}
	a, out := testApp(&fakeAuth{}, inv, &fakeAccess{})
	a.reader = bufio.NewReader(strings.NewReader("\nOrtega\n\n\n"))
	a.refresh(context.Background())
	out.Reset()

	a.edit(context.Background(), []string{"2"})

	require.Len(t, inv.drafts, 1)
	d := inv.drafts[0]
	assert.Equal(t, "Ben", d.Name, "empty input keeps the current name")
	assert.Equal(t, "Ortega", d.Surname)
	assert.Equal(t, "PorFecha", d.Kind)
	assert.Equal(t, "2026-03-15", d.ValidUntil)
	assert.Contains(t, out.String(), "Invitation #2 updated.")
	assert.Equal(t, 2, inv.listCalls)
}

func TestEditKeepsValuesOnFailure(t *testing.T) {
	inv := &fakeInvitations{
		list:      sampleList(),
		updateErr: errors.New("HTTP 500: internal error"),
	}
	a, out := testApp(&fakeAuth{}, inv, &fakeAccess{})
	a.reader = bufio.NewReader(strings.NewReader("\nOrtega\n\n\n"))
	a.refresh(context.Background())
	out.Reset()

	a.edit(context.Background(), []string{"2"})

	assert.Equal(t, 1, inv.listCalls, "no refresh after a failed update")
	assert.Contains(t, out.String(), "Update failed")
	assert.Contains(t, out.String(), "Entered values kept: Ben Ortega")
}
