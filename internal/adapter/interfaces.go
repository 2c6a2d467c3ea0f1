// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer of the vault-notes client.
//
// The backend REST API is split into narrow interfaces ([AuthAdapter],
// [NotesAdapter], [AttachmentsAdapter], [SharesAdapter], [ProfileAdapter]) so
// that each service depends only on the calls it makes; [ServerAdapter]
// combines them and is implemented over HTTP by [NewHTTPServerAdapter].
// [ObjectStorage] uploads raw file bytes to pre-signed URLs and is
// implemented by [NewHTTPObjectStorage].
//
// Transport failures are mapped from HTTP status codes to the sentinel
// values in errors.go so that callers can use [errors.Is].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/vault-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter covers sign-in and bearer token handling.
type AuthAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token disables the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// Register creates an account with password credentials and returns the
	// issued token and user. The token is stored via SetToken.
	Register(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Login authenticates with password credentials. The token is stored via
	// SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// FederatedSignInURL asks the backend for the authorization URL of an
	// external identity provider.
	FederatedSignInURL(ctx context.Context, provider models.FederatedProvider) (models.FederatedSignIn, error)

	// CompleteFederatedSignIn exchanges the provider's authorization code for
	// a session. The token is stored via SetToken.
	CompleteFederatedSignIn(ctx context.Context, provider models.FederatedProvider, callback models.FederatedCallback) (models.AuthResponse, error)
}

// NotesAdapter covers note CRUD, listing and trash.
type NotesAdapter interface {
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, input models.NoteInput) (models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	ListNotes(ctx context.Context, filter models.ListFilter) (models.NotesPage, error)

	// DeleteNote moves the note to the trash, or removes it for good when
	// hard is true.
	DeleteNote(ctx context.Context, noteID string, hard bool) error

	// RestoreNote moves a trashed note back.
	RestoreNote(ctx context.Context, noteID string) error
}

// AttachmentsAdapter covers the attachment calls of one note.
type AttachmentsAdapter interface {
	// RequestUploadURL returns a pre-signed URL the file bytes can be PUT to.
	RequestUploadURL(ctx context.Context, noteID string, req models.UploadURLRequest) (models.UploadURL, error)

	// ListAttachments returns the authoritative attachment list of the note.
	ListAttachments(ctx context.Context, noteID string) ([]models.Attachment, error)

	DeleteAttachment(ctx context.Context, noteID, attachmentID string) error

	// RequestDownloadURL returns a time-limited download URL.
	RequestDownloadURL(ctx context.Context, noteID, attachmentID string) (models.DownloadURL, error)
}

// SharesAdapter covers note sharing.
type SharesAdapter interface {
	ShareNote(ctx context.Context, noteID string, req models.ShareRequest) error
	RevokeShare(ctx context.Context, noteID, userID string) error
}

// ProfileAdapter covers the signed-in user's profile.
type ProfileAdapter interface {
	GetProfile(ctx context.Context) (models.User, error)

	// UploadAvatar sends the avatar image as a multipart form and returns the
	// updated profile.
	UploadAvatar(ctx context.Context, filename, contentType string, body io.Reader) (models.User, error)
}

// ObjectStorage uploads raw bytes directly to object storage.
type ObjectStorage interface {
	// PutObject PUTs size bytes read from body to the pre-signed url with the
	// given Content-Type. progress, if not nil, is called with the running
	// total of bytes handed to the transport.
	PutObject(ctx context.Context, url, contentType string, body io.Reader, size int64, progress func(sent int64)) error
}
