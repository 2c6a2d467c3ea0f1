package store

import (
	"context"

	"github.com/MKhiriev/vault-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStore persists the authenticated session of the client between
// runs. It is hydrated once at startup and cleared on logout.
type SessionStore interface {
	// Load returns the stored session or [ErrSessionNotFound].
	Load(ctx context.Context) (models.Session, error)
	// Save replaces the stored session.
	Save(ctx context.Context, session models.Session) error
	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
