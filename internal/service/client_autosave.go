// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/vault-notes/internal/adapter"
	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/models"
)

// AutosaveController owns the [models.Draft] of one editing session and
// persists it after a quiet period with no edits.
//
// Saves are serialized: while a create is in flight a second save waits for it
// and then updates the note it created, so one draft never produces two
// notes. Edits made during an in-flight save keep the draft dirty, and the
// next debounce cycle persists the latest content.
type AutosaveController struct {
	notes adapter.NotesAdapter
	delay time.Duration
	// ctx is used by timer-driven saves.
	ctx    context.Context
	logger *logger.Logger

	// saveMu is held for the whole persistence call.
	saveMu sync.Mutex

	// mu guards the fields below and is never held across I/O.
	mu       sync.Mutex
	draft    models.Draft
	dirty    bool
	revision uint64
	status   models.SaveStatus
	lastErr  error
	timer    *time.Timer
	timerGen uint64
	closed   bool
}

// NewAutosaveController starts an editing session. note is the note being
// edited, or nil for a new one. ctx bounds the saves fired by the debounce
// timer.
func NewAutosaveController(ctx context.Context, notes adapter.NotesAdapter, delay time.Duration, logger *logger.Logger, note *models.Note) *AutosaveController {
	c := &AutosaveController{
		notes:  notes,
		delay:  delay,
		ctx:    ctx,
		logger: logger,
		status: models.SaveStatusIdle,
	}
	if note != nil {
		c.draft = models.Draft{ID: note.ID, Title: note.Title, Content: note.Content}
	}

	return c
}

// OnFieldChange applies an edit to the draft and restarts the debounce timer.
func (c *AutosaveController) OnFieldChange(field models.DraftField, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	switch field {
	case models.FieldTitle:
		c.draft.Title = value
	case models.FieldContent:
		c.draft.Content = value
	default:
		c.logger.Warn().Str("func", "AutosaveController.OnFieldChange").Str("field", string(field)).Msg("unknown draft field")
		return
	}

	c.dirty = true
	c.revision++
	c.status = models.SaveStatusIdle
	c.scheduleSaveLocked()
}

// scheduleSaveLocked (re)starts the debounce timer. c.mu must be held.
func (c *AutosaveController) scheduleSaveLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}

	c.timerGen++
	gen := c.timerGen
	c.timer = time.AfterFunc(c.delay, func() { c.fire(gen) })
}

func (c *AutosaveController) fire(gen uint64) {
	c.mu.Lock()
	// a newer edit or Close superseded this timer
	if c.closed || gen != c.timerGen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	err := c.save(c.ctx, true)
	switch {
	case err == nil:
	case c.ctx.Err() != nil:
		c.logger.Debug().Err(err).Str("func", "AutosaveController.fire").Str("note_id", c.NoteID()).Msg("autosave interrupted by shutdown")
	default:
		c.logger.Err(err).Str("func", "AutosaveController.fire").Str("note_id", c.NoteID()).Msg("autosave failed")
	}
}

// Save persists the draft if it is dirty. A new draft is created and receives
// its ID; a draft with an ID is updated. A new draft with empty title and
// content is never saved.
func (c *AutosaveController) Save(ctx context.Context) error {
	return c.save(ctx, false)
}

// save runs one persistence call. A timer save that waited for saveMu
// while the session was closed or its context cancelled does nothing.
func (c *AutosaveController) save(ctx context.Context, fromTimer bool) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	c.mu.Lock()
	if fromTimer && (c.closed || ctx.Err() != nil) {
		c.mu.Unlock()
		return nil
	}
	if !c.dirty || (c.draft.IsNew() && c.draft.IsEmpty()) {
		c.mu.Unlock()
		return nil
	}
	snapshot := c.draft
	revision := c.revision
	c.status = models.SaveStatusSaving
	c.mu.Unlock()

	var (
		note models.Note
		err  error
	)
	if snapshot.IsNew() {
		note, err = c.notes.CreateNote(ctx, snapshot.Input())
		if err == nil && note.ID == "" {
			err = errors.New("backend returned no note id")
		}
	} else {
		note, err = c.notes.UpdateNote(ctx, snapshot.ID, snapshot.Input())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	edited := c.revision != revision

	if err != nil {
		c.lastErr = mapAdapterError(err)
		if edited {
			c.status = models.SaveStatusIdle
		} else {
			c.status = models.SaveStatusError
		}
		return fmt.Errorf("save note: %w", c.lastErr)
	}

	if c.draft.IsNew() {
		c.draft.ID = note.ID
		c.logger.Debug().Str("func", "AutosaveController.Save").Str("note_id", note.ID).Msg("note created")
	}
	c.lastErr = nil

	if edited {
		c.status = models.SaveStatusIdle
		return nil
	}

	c.dirty = false
	c.status = models.SaveStatusSaved
	return nil
}

// Flush cancels the pending debounce timer and saves immediately.
func (c *AutosaveController) Flush(ctx context.Context) error {
	c.mu.Lock()
	c.stopTimerLocked()
	c.mu.Unlock()

	return c.Save(ctx)
}

// Close ends the editing session: the pending debounce timer is cancelled and
// no later edit or timer fire saves, including a timer save queued behind an
// in-flight save. A save already in flight completes.
func (c *AutosaveController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.stopTimerLocked()
}

func (c *AutosaveController) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerGen++
}

// Status returns the save status and the error of the last failed save.
func (c *AutosaveController) Status() (models.SaveStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, c.lastErr
}

// Draft returns a copy of the current draft.
func (c *AutosaveController) Draft() models.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// NoteID returns the ID of the note, or "" while it has never been saved.
func (c *AutosaveController) NoteID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.ID
}

// Dirty reports whether the draft has edits that are not persisted yet.
func (c *AutosaveController) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}
