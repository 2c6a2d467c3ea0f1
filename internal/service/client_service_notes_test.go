package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/vault-notes/internal/adapter"
	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/mock"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteSvc(t *testing.T) (ClientNoteService, *mock.MockNotesAdapter, *mock.MockSharesAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesAdapter(ctrl)
	shares := mock.NewMockSharesAdapter(ctrl)
	return NewClientNoteService(notes, shares, logger.Nop()), notes, shares
}

func TestClientNoteService_ListDefaults(t *testing.T) {
	svc, notes, _ := newTestNoteSvc(t)

	notes.EXPECT().ListNotes(gomock.Any(), models.ListFilter{Page: 1, Limit: 20, Search: "milk", Scope: models.ScopeOwn}).
		Return(models.NotesPage{Notes: []models.Note{{ID: "n1"}}, Total: 1}, nil)

	page, err := svc.List(context.Background(), models.ListFilter{Search: "  milk "})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 1, page.Pages())
}

func TestClientNoteService_ListUnauthorized(t *testing.T) {
	svc, notes, _ := newTestNoteSvc(t)

	notes.EXPECT().ListNotes(gomock.Any(), gomock.Any()).Return(models.NotesPage{}, fmt.Errorf("%w: token expired", adapter.ErrUnauthorized))

	_, err := svc.List(context.Background(), models.ListFilter{Scope: models.ScopeTrash})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestClientNoteService_GetDeleteRestore(t *testing.T) {
	svc, notes, _ := newTestNoteSvc(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "")
	require.ErrorIs(t, err, ErrNoteNotSaved)

	notes.EXPECT().GetNote(ctx, "n1").Return(models.Note{}, fmt.Errorf("%w: gone", adapter.ErrNotFound))
	_, err = svc.Get(ctx, "n1")
	require.ErrorIs(t, err, ErrNoteNotFound)

	notes.EXPECT().DeleteNote(ctx, "n1", false).Return(nil)
	require.NoError(t, svc.Delete(ctx, "n1", false))

	notes.EXPECT().DeleteNote(ctx, "n1", true).Return(fmt.Errorf("%w: not yours", adapter.ErrForbidden))
	require.ErrorIs(t, svc.Delete(ctx, "n1", true), ErrPermissionDenied)

	notes.EXPECT().RestoreNote(ctx, "n1").Return(nil)
	require.NoError(t, svc.Restore(ctx, "n1"))
}

func TestClientNoteService_Share(t *testing.T) {
	svc, _, shares := newTestNoteSvc(t)
	ctx := context.Background()

	// валидация до любого сетевого вызова
	assert.ErrorIs(t, svc.Share(ctx, "n1", " ", models.PermissionRead), ErrEmptyRecipient)
	assert.ErrorIs(t, svc.Share(ctx, "n1", "bob@example.com", models.Permission("admin")), ErrInvalidPermission)

	shares.EXPECT().ShareNote(ctx, "n1", models.ShareRequest{Recipient: "bob@example.com", Permission: models.PermissionWrite}).Return(nil)
	require.NoError(t, svc.Share(ctx, "n1", " bob@example.com", models.PermissionWrite))

	shares.EXPECT().RevokeShare(ctx, "n1", "u2").Return(nil)
	require.NoError(t, svc.RevokeShare(ctx, "n1", "u2"))
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		in   error
		want error
	}{
		{adapter.ErrBadRequest, ErrInvalidDataProvided},
		{adapter.ErrUnauthorized, ErrUnauthenticated},
		{adapter.ErrMissingToken, ErrUnauthenticated},
		{adapter.ErrForbidden, ErrPermissionDenied},
		{adapter.ErrNotFound, ErrNoteNotFound},
		{adapter.ErrConflict, ErrAccountExists},
		{adapter.ErrTooLarge, ErrFileTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.in.Error(), func(t *testing.T) {
			err := mapAdapterError(fmt.Errorf("%w: details", tt.in))
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.in)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
	other := fmt.Errorf("dial tcp: refused")
	assert.Equal(t, other, mapAdapterError(other))
}
