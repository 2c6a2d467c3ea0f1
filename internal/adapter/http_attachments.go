// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vault-notes/models"
)

// RequestUploadURL implements [AttachmentsAdapter].
// POST /api/notes/{id}/attachments/upload-url.
func (h *httpServerAdapter) RequestUploadURL(ctx context.Context, noteID string, req models.UploadURLRequest) (models.UploadURL, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/notes/{id}/attachments/upload-url")
	if err != nil {
		return models.UploadURL{}, fmt.Errorf("upload url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadURL{}, err
	}

	var upload models.UploadURL
	if err = decode(resp, &upload); err != nil {
		return models.UploadURL{}, fmt.Errorf("decode upload url: %w", err)
	}
	if upload.URL == "" {
		return models.UploadURL{}, fmt.Errorf("upload url response: empty url")
	}
	return upload, nil
}

// ListAttachments implements [AttachmentsAdapter].
// GET /api/notes/{id}/attachments.
func (h *httpServerAdapter) ListAttachments(ctx context.Context, noteID string) ([]models.Attachment, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		Get("/api/notes/{id}/attachments")
	if err != nil {
		return nil, fmt.Errorf("list attachments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var attachments []models.Attachment
	if err = decode(resp, &attachments); err != nil {
		return nil, fmt.Errorf("decode attachments: %w", err)
	}
	return attachments, nil
}

// DeleteAttachment implements [AttachmentsAdapter].
// DELETE /api/notes/{id}/attachments/{attachmentID}.
func (h *httpServerAdapter) DeleteAttachment(ctx context.Context, noteID, attachmentID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"id": noteID, "attachmentID": attachmentID}).
		Delete("/api/notes/{id}/attachments/{attachmentID}")
	if err != nil {
		return fmt.Errorf("delete attachment request: %w", err)
	}

	return mapHTTPError(resp)
}

// RequestDownloadURL implements [AttachmentsAdapter].
// GET /api/notes/{id}/attachments/{attachmentID}/download-url.
func (h *httpServerAdapter) RequestDownloadURL(ctx context.Context, noteID, attachmentID string) (models.DownloadURL, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"id": noteID, "attachmentID": attachmentID}).
		Get("/api/notes/{id}/attachments/{attachmentID}/download-url")
	if err != nil {
		return models.DownloadURL{}, fmt.Errorf("download url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadURL{}, err
	}

	var download models.DownloadURL
	if err = decode(resp, &download); err != nil {
		return models.DownloadURL{}, fmt.Errorf("decode download url: %w", err)
	}
	return download, nil
}
