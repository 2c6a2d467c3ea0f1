// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/vault-notes/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error.
// The transport message is kept so the UI can show what the backend said.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var target error
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		target = ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrMissingToken):
		target = ErrUnauthenticated
	case errors.Is(err, adapter.ErrForbidden):
		target = ErrPermissionDenied
	case errors.Is(err, adapter.ErrNotFound):
		target = ErrNoteNotFound
	case errors.Is(err, adapter.ErrConflict):
		target = ErrAccountExists
	case errors.Is(err, adapter.ErrTooLarge):
		target = ErrFileTooLarge
	default:
		return err
	}

	return fmt.Errorf("%w: %w", target, err)
}
