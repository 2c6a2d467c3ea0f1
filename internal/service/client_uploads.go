// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/vault-notes/internal/adapter"
	"github.com/MKhiriev/vault-notes/internal/config"
	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/validators"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"
)

const fallbackContentType = "application/octet-stream"

// IDGenerator hands out unique identifiers.
type IDGenerator interface {
	Generate() string
}

// UploadCoordinator uploads files attached to one note. Every file of a batch
// is uploaded concurrently and independently: a failed file never affects its
// siblings. Once every file of a batch has finished, the coordinator waits
// the refresh delay, drops the batch's tasks and reloads the attachment list
// from the backend once.
type UploadCoordinator struct {
	noteID       func() string
	api          adapter.AttachmentsAdapter
	storage      adapter.ObjectStorage
	ids          IDGenerator
	maxSize      int64
	refreshDelay time.Duration
	concurrency  int
	validator    validators.Validator
	logger       *logger.Logger

	mu          sync.Mutex
	tasks       map[string]*models.UploadTask
	order       []string
	attachments []models.Attachment

	batches sync.WaitGroup
}

// NewUploadCoordinator returns the coordinator of one editing session.
// noteID reports the ID of the edited note; uploads are refused while it
// returns "". attachments is the list the note was opened with.
func NewUploadCoordinator(
	noteID func() string,
	api adapter.AttachmentsAdapter,
	storage adapter.ObjectStorage,
	ids IDGenerator,
	cfg config.ClientEditor,
	logger *logger.Logger,
	attachments []models.Attachment,
) *UploadCoordinator {
	return &UploadCoordinator{
		noteID:       noteID,
		api:          api,
		storage:      storage,
		ids:          ids,
		maxSize:      cfg.MaxAttachmentSize,
		refreshDelay: cfg.UploadRefreshDelay,
		concurrency:  cfg.MaxConcurrentUploads,
		validator:    validators.NewClientInputValidator(),
		logger:       logger,
		tasks:        make(map[string]*models.UploadTask),
		attachments:  slices.Clone(attachments),
	}
}

type batchItem struct {
	taskID string
	file   models.LocalFile
}

// AcceptFiles validates a batch and starts uploading it in the background.
// If any file is over the size limit the whole batch is rejected with one
// [ErrFileTooLarge] error naming every offending file, and nothing starts.
// The returned tasks are snapshots taken when the batch was accepted.
func (c *UploadCoordinator) AcceptFiles(ctx context.Context, files []models.LocalFile) ([]models.UploadTask, error) {
	if len(files) == 0 {
		return nil, nil
	}

	if err := c.checkSizes(files); err != nil {
		c.logger.Warn().Err(err).Str("func", "UploadCoordinator.AcceptFiles").Int("files", len(files)).Msg("batch rejected")
		return nil, err
	}

	noteID := c.noteID()
	if noteID == "" {
		return nil, ErrNoteNotSaved
	}

	items := make([]batchItem, 0, len(files))
	accepted := make([]models.UploadTask, 0, len(files))

	c.mu.Lock()
	for _, f := range files {
		task := &models.UploadTask{
			ID:          c.ids.Generate(),
			FileName:    f.Name,
			Size:        f.Size,
			ContentType: f.ContentType,
			Status:      models.UploadStatusUploading,
		}
		c.tasks[task.ID] = task
		c.order = append(c.order, task.ID)

		items = append(items, batchItem{taskID: task.ID, file: f})
		accepted = append(accepted, *task)
	}
	c.mu.Unlock()

	c.batches.Add(1)
	go c.runBatch(ctx, noteID, items)

	return accepted, nil
}

// CheckSizes reports an [ErrFileTooLarge] error naming every file of the
// batch that is over the size limit, or nil.
func (c *UploadCoordinator) CheckSizes(files []models.LocalFile) error {
	return c.checkSizes(files)
}

func (c *UploadCoordinator) checkSizes(files []models.LocalFile) error {
	if c.maxSize <= 0 {
		return nil
	}

	var oversized []string
	for _, f := range files {
		if f.Size > c.maxSize {
			oversized = append(oversized, fmt.Sprintf("%s (%s)", f.Name, formatSize(f.Size)))
		}
	}
	if len(oversized) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s: maximum size is %s", ErrFileTooLarge, strings.Join(oversized, ", "), formatSize(c.maxSize))
}

func (c *UploadCoordinator) runBatch(ctx context.Context, noteID string, items []batchItem) {
	defer c.batches.Done()

	// no shared cancellation: one failed file must not stop its siblings
	var g errgroup.Group
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}
	for _, item := range items {
		item := item
		g.Go(func() error {
			c.upload(ctx, noteID, item)
			return nil
		})
	}
	_ = g.Wait()

	if c.refreshDelay > 0 {
		t := time.NewTimer(c.refreshDelay)
		select {
		case <-ctx.Done():
			t.Stop()
		case <-t.C:
		}
	}

	c.removeTasks(items)

	if err := c.RefreshAttachments(ctx); err != nil {
		c.logger.Err(err).Str("func", "UploadCoordinator.runBatch").Str("note_id", noteID).Msg("failed to refresh attachments after upload")
	}
}

func (c *UploadCoordinator) upload(ctx context.Context, noteID string, item batchItem) {
	log := c.logger.With().
		Str("func", "UploadCoordinator.upload").
		Str("note_id", noteID).
		Str("task_id", item.taskID).
		Str("file", item.file.Name).
		Logger()

	contentType := resolveContentType(item.file)
	c.update(item.taskID, func(t *models.UploadTask) { t.ContentType = contentType })

	f, err := os.Open(item.file.Path)
	if err != nil {
		log.Err(err).Msg("failed to open file")
		c.fail(item.taskID, fmt.Errorf("open file: %w", err))
		return
	}
	defer f.Close()

	request := models.UploadURLRequest{Filename: item.file.Name, ContentType: contentType}
	if err = c.validator.Validate(ctx, request); err != nil {
		c.fail(item.taskID, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err))
		return
	}

	target, err := c.api.RequestUploadURL(ctx, noteID, request)
	if err != nil {
		log.Err(err).Msg("failed to get upload url")
		c.fail(item.taskID, mapAdapterError(err))
		return
	}

	err = c.storage.PutObject(ctx, target.URL, contentType, f, item.file.Size, func(sent int64) {
		c.progress(item.taskID, sent, item.file.Size)
	})
	if err != nil {
		log.Err(err).Msg("upload failed")
		c.fail(item.taskID, err)
		return
	}

	c.update(item.taskID, func(t *models.UploadTask) {
		t.Status = models.UploadStatusSuccess
		t.Progress = 100
	})
	log.Debug().Int64("size", item.file.Size).Msg("file uploaded")
}

// resolveContentType prefers the declared type, then the sniffed one.
func resolveContentType(f models.LocalFile) string {
	if f.ContentType != "" {
		return f.ContentType
	}
	if m, err := mimetype.DetectFile(f.Path); err == nil && m != nil {
		return m.String()
	}
	return fallbackContentType
}

func (c *UploadCoordinator) progress(taskID string, sent, total int64) {
	pct := 100
	if total > 0 {
		pct = int(math.Round(float64(sent) * 100 / float64(total)))
	}
	pct = min(max(pct, 0), 100)

	c.update(taskID, func(t *models.UploadTask) {
		if pct > t.Progress {
			t.Progress = pct
		}
	})
}

func (c *UploadCoordinator) fail(taskID string, err error) {
	c.update(taskID, func(t *models.UploadTask) {
		t.Status = models.UploadStatusError
		t.Err = err.Error()
	})
}

// update applies fn to a task that has not reached a terminal state.
func (c *UploadCoordinator) update(taskID string, fn func(t *models.UploadTask)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.tasks[taskID]
	if !ok || t.Status.Terminal() {
		return
	}
	fn(t)
}

func (c *UploadCoordinator) removeTasks(items []batchItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range items {
		delete(c.tasks, item.taskID)
	}
	c.order = slices.DeleteFunc(c.order, func(id string) bool {
		_, ok := c.tasks[id]
		return !ok
	})
}

// RefreshAttachments replaces the local attachment list with the backend's.
func (c *UploadCoordinator) RefreshAttachments(ctx context.Context) error {
	noteID := c.noteID()
	if noteID == "" {
		return ErrNoteNotSaved
	}

	list, err := c.api.ListAttachments(ctx, noteID)
	if err != nil {
		return mapAdapterError(err)
	}

	c.mu.Lock()
	c.attachments = slices.Clone(list)
	c.mu.Unlock()

	return nil
}

// DeleteAttachment deletes an attachment. The local list changes only once
// the backend has confirmed the delete.
func (c *UploadCoordinator) DeleteAttachment(ctx context.Context, attachmentID string) error {
	noteID := c.noteID()
	if noteID == "" {
		return ErrNoteNotSaved
	}

	if err := c.api.DeleteAttachment(ctx, noteID, attachmentID); err != nil {
		c.logger.Err(err).
			Str("func", "UploadCoordinator.DeleteAttachment").
			Str("note_id", noteID).
			Str("attachment_id", attachmentID).
			Msg("failed to delete attachment")
		return mapAdapterError(err)
	}

	c.mu.Lock()
	c.attachments = slices.DeleteFunc(c.attachments, func(a models.Attachment) bool {
		return a.ID == attachmentID
	})
	c.mu.Unlock()

	return nil
}

// DownloadURL returns a time-limited URL the attachment can be fetched from.
func (c *UploadCoordinator) DownloadURL(ctx context.Context, attachmentID string) (string, error) {
	noteID := c.noteID()
	if noteID == "" {
		return "", ErrNoteNotSaved
	}

	dl, err := c.api.RequestDownloadURL(ctx, noteID, attachmentID)
	if err != nil {
		c.logger.Err(err).
			Str("func", "UploadCoordinator.DownloadURL").
			Str("note_id", noteID).
			Str("attachment_id", attachmentID).
			Msg("failed to get download url")
		return "", mapAdapterError(err)
	}
	return dl.URL, nil
}

// Attachments returns a copy of the attachment list.
func (c *UploadCoordinator) Attachments() []models.Attachment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.attachments)
}

// Tasks returns copies of the active upload tasks in acceptance order.
func (c *UploadCoordinator) Tasks() []models.UploadTask {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.UploadTask, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.tasks[id])
	}
	return out
}

// Wait blocks until every accepted batch, including its refresh, is done.
func (c *UploadCoordinator) Wait() {
	c.batches.Wait()
}

// formatSize renders whole mebibyte sizes as "10 MB" and anything else with
// humanize.
func formatSize(n int64) string {
	const mib = 1 << 20
	if n > 0 && n%mib == 0 {
		return fmt.Sprintf("%d MB", n/mib)
	}
	return humanize.IBytes(uint64(n))
}
