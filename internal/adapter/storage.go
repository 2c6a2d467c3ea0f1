// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/vault-notes/internal/config"
	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/utils"
)

const maxStorageErrorBody = 4 << 10

type httpObjectStorage struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPObjectStorage constructs the [ObjectStorage] that PUTs file bytes to
// pre-signed URLs. It shares nothing with the REST client: pre-signed URLs
// point at the storage host and must not carry the bearer token.
func NewHTTPObjectStorage(cfg config.ClientAdapter, logger *logger.Logger) ObjectStorage {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.UploadTimeout)

	return &httpObjectStorage{client: client, logger: logger}
}

// PutObject implements [ObjectStorage].
//
// The request is built on the resty client's underlying *http.Client rather
// than through resty.Request: the body has to stream with an exact
// Content-Length (pre-signed PUTs reject chunked bodies), and resty only sets
// the length by buffering the whole reader first, which would make progress
// reporting meaningless.
func (s *httpObjectStorage) PutObject(ctx context.Context, url, contentType string, body io.Reader, size int64, progress func(sent int64)) error {
	var reqBody io.Reader = http.NoBody
	if size > 0 {
		reqBody = &progressReader{r: body, onRead: progress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, reqBody)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.GetClient().Do(req)
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxStorageErrorBody))
		return fmt.Errorf("%w: %s: %s", ErrUploadFailed, resp.Status, strings.TrimSpace(string(b)))
	}

	if size == 0 && progress != nil {
		progress(0)
	}
	return nil
}

// progressReader reports the running byte count of everything read through it.
type progressReader struct {
	r      io.Reader
	sent   int64
	onRead func(sent int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.onRead != nil {
			p.onRead(p.sent)
		}
	}
	return n, err
}
