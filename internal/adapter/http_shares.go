// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/vault-notes/models"
)

// ShareNote implements [SharesAdapter]. POST /api/notes/{id}/shares.
func (h *httpServerAdapter) ShareNote(ctx context.Context, noteID string, req models.ShareRequest) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/notes/{id}/shares")
	if err != nil {
		return fmt.Errorf("share note request: %w", err)
	}

	return mapHTTPError(resp)
}

// RevokeShare implements [SharesAdapter].
// DELETE /api/notes/{id}/shares/{userID}.
func (h *httpServerAdapter) RevokeShare(ctx context.Context, noteID, userID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"id": noteID, "userID": userID}).
		Delete("/api/notes/{id}/shares/{userID}")
	if err != nil {
		return fmt.Errorf("revoke share request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetProfile implements [ProfileAdapter]. GET /api/users/me.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile: %w", err)
	}
	return user, nil
}

// UploadAvatar implements [ProfileAdapter]. POST /api/users/me/avatar as
// multipart/form-data with the image in the "avatar" field.
func (h *httpServerAdapter) UploadAvatar(ctx context.Context, filename, contentType string, body io.Reader) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetMultipartField("avatar", filename, contentType, body).
		Post("/api/users/me/avatar")
	if err != nil {
		return models.User{}, fmt.Errorf("upload avatar request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile: %w", err)
	}
	return user, nil
}
