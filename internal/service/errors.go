package service

import (
	"errors"

	"github.com/MKhiriev/vault-notes/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrAccountExists       = errors.New("account already exists")

	ErrSessionExpired   = errors.New("session is expired")
	ErrUnauthenticated  = errors.New("not signed in or session expired")
	ErrPermissionDenied = errors.New("permission denied")

	ErrNoteNotFound = errors.New("note not found")
	ErrNoteNotSaved = errors.New("note has not been saved yet")

	ErrInvalidPermission = validators.ErrInvalidPermission
	ErrEmptyRecipient    = validators.ErrEmptyRecipient

	ErrFileTooLarge = errors.New("file is too large")
	ErrNotAnImage   = errors.New("avatar must be an image")
)
