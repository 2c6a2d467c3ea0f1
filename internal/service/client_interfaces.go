package service

import (
	"context"

	"github.com/MKhiriev/vault-notes/models"
)

// ClientAuthService defines the client-side contract for registration,
// sign-in and the lifetime of the persisted session.
type ClientAuthService interface {
	// Register creates an account with password credentials, persists the
	// resulting session and returns it.
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Login authenticates with password credentials, persists the resulting
	// session and returns it. Rejected credentials yield [ErrWrongCredentials].
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// FederatedSignInURL returns the authorization URL of an external identity
	// provider together with the state to echo back.
	FederatedSignInURL(ctx context.Context, provider models.FederatedProvider) (models.FederatedSignIn, error)

	// CompleteFederatedSignIn exchanges the provider's authorization code for
	// a session and persists it.
	CompleteFederatedSignIn(ctx context.Context, provider models.FederatedProvider, code, state string) (models.Session, error)

	// RestoreSession hydrates the session persisted by a previous run and
	// hands its token to the adapter. A missing session yields
	// store.ErrSessionNotFound; an expired one is cleared and yields
	// [ErrSessionExpired].
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout clears the persisted session and the adapter token.
	Logout(ctx context.Context) error
}

// ClientNoteService defines the note list, trash and sharing operations.
// Note text is persisted by [AutosaveController], not by this service.
type ClientNoteService interface {
	// List returns one page of notes. Page and limit default to 1 and 20; the
	// search term is trimmed.
	List(ctx context.Context, filter models.ListFilter) (models.NotesPage, error)

	Get(ctx context.Context, noteID string) (models.Note, error)

	// Delete moves the note to the trash, or removes it for good when hard
	// is true.
	Delete(ctx context.Context, noteID string, hard bool) error

	// Restore moves a trashed note back.
	Restore(ctx context.Context, noteID string) error

	// Share grants recipient (e-mail or user ID) access to the note.
	// The permission and recipient are validated before any call is made.
	Share(ctx context.Context, noteID, recipient string, permission models.Permission) error

	RevokeShare(ctx context.Context, noteID, userID string) error
}

// ClientProfileService defines the signed-in user's profile operations.
type ClientProfileService interface {
	Get(ctx context.Context) (models.User, error)

	// UploadAvatar uploads the image at path as the new profile picture. The
	// file must not exceed the configured avatar size and must be an image.
	UploadAvatar(ctx context.Context, path string) (models.User, error)
}
