// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/mock"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDelay = 30 * time.Millisecond

// newTestAutosave — хелпер: контроллер с коротким debounce и моком NotesAdapter
func newTestAutosave(t *testing.T, note *models.Note) (*AutosaveController, *mock.MockNotesAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesAdapter(ctrl)

	c := NewAutosaveController(context.Background(), notes, testDelay, logger.Nop(), note)
	t.Cleanup(c.Close)
	return c, notes
}

func waitStatus(t *testing.T, c *AutosaveController, want models.SaveStatus) {
	t.Helper()
	require.Eventually(t, func() bool {
		st, _ := c.Status()
		return st == want
	}, 2*time.Second, 5*time.Millisecond, "status never became %s", want)
}

// ── Empty drafts ────────────────────────────────────────────────────────────

func TestAutosave_EmptyNewDraftNeverSaves(t *testing.T) {
	c, _ := newTestAutosave(t, nil) // без EXPECT: любой вызов адаптера провалит тест

	c.OnFieldChange(models.FieldTitle, "a")
	c.OnFieldChange(models.FieldTitle, "")
	time.Sleep(4 * testDelay)

	require.NoError(t, c.Flush(context.Background()))
	assert.True(t, c.Draft().IsNew())
	st, _ := c.Status()
	assert.Equal(t, models.SaveStatusIdle, st)
}

// ── Create then update ──────────────────────────────────────────────────────

func TestAutosave_FirstEditCreatesThenUpdates(t *testing.T) {
	c, notes := newTestAutosave(t, nil)

	gomock.InOrder(
		notes.EXPECT().CreateNote(gomock.Any(), models.NoteInput{Title: "Groceries"}).
			Return(models.Note{ID: "n1", Title: "Groceries"}, nil),
		notes.EXPECT().UpdateNote(gomock.Any(), "n1", models.NoteInput{Title: "Groceries", Content: "<p>milk</p>"}).
			Return(models.Note{ID: "n1"}, nil),
	)

	c.OnFieldChange(models.FieldTitle, "Groceries")
	waitStatus(t, c, models.SaveStatusSaved)
	assert.Equal(t, "n1", c.NoteID())

	c.OnFieldChange(models.FieldContent, "<p>milk</p>")
	assert.True(t, c.Dirty())
	waitStatus(t, c, models.SaveStatusSaved)
	assert.False(t, c.Dirty())
	assert.Equal(t, "n1", c.NoteID())
}

func TestAutosave_RapidEditsProduceOneSave(t *testing.T) {
	c, notes := newTestAutosave(t, &models.Note{ID: "n1", Title: "t"})

	notes.EXPECT().UpdateNote(gomock.Any(), "n1", models.NoteInput{Title: "t", Content: "hello"}).
		Return(models.Note{ID: "n1"}, nil).Times(1)

	for _, v := range []string{"h", "he", "hel", "hell", "hello"} {
		c.OnFieldChange(models.FieldContent, v)
		time.Sleep(testDelay / 5)
	}

	waitStatus(t, c, models.SaveStatusSaved)
	time.Sleep(3 * testDelay)
}

func TestAutosave_ExistingNoteNotDirtyDoesNotSave(t *testing.T) {
	c, _ := newTestAutosave(t, &models.Note{ID: "n1", Title: "t", Content: "c"})

	require.NoError(t, c.Flush(context.Background()))
	assert.Equal(t, models.Draft{ID: "n1", Title: "t", Content: "c"}, c.Draft())
}

// ── Serialization ───────────────────────────────────────────────────────────

func TestAutosave_EditDuringCreateIsNotLost(t *testing.T) {
	c, notes := newTestAutosave(t, nil)

	release := make(chan struct{})
	started := make(chan struct{})

	notes.EXPECT().CreateNote(gomock.Any(), models.NoteInput{Title: "v1"}).
		DoAndReturn(func(context.Context, models.NoteInput) (models.Note, error) {
			close(started)
			<-release
			return models.Note{ID: "n1"}, nil
		}).Times(1)
	notes.EXPECT().UpdateNote(gomock.Any(), "n1", models.NoteInput{Title: "v2"}).
		Return(models.Note{ID: "n1"}, nil).Times(1)

	c.OnFieldChange(models.FieldTitle, "v1")
	<-started

	// правка во время create: статус idle, черновик остаётся dirty
	c.OnFieldChange(models.FieldTitle, "v2")
	st, _ := c.Status()
	assert.Equal(t, models.SaveStatusIdle, st)

	// дадим таймеру второй правки сработать и упереться в saveMu
	time.Sleep(2 * testDelay)
	close(release)

	waitStatus(t, c, models.SaveStatusSaved)
	assert.Equal(t, models.Draft{ID: "n1", Title: "v2"}, c.Draft())
	assert.False(t, c.Dirty())
}

func TestAutosave_ConcurrentTriggersCreateOnce(t *testing.T) {
	c, notes := newTestAutosave(t, nil)

	var creates atomic.Int32
	notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.NoteInput) (models.Note, error) {
			creates.Add(1)
			time.Sleep(2 * testDelay)
			return models.Note{ID: "n1"}, nil
		}).Times(1)

	c.OnFieldChange(models.FieldTitle, "x")

	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		go func() { errs <- c.Save(context.Background()) }()
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, <-errs)
	}

	time.Sleep(2 * testDelay)
	assert.Equal(t, int32(1), creates.Load())
	assert.Equal(t, "n1", c.NoteID())
}

// ── Failures ────────────────────────────────────────────────────────────────

func TestAutosave_FailedSaveKeepsDraftDirty(t *testing.T) {
	c, notes := newTestAutosave(t, &models.Note{ID: "n1"})

	gomock.InOrder(
		notes.EXPECT().UpdateNote(gomock.Any(), "n1", gomock.Any()).Return(models.Note{}, errors.New("connection reset")),
		notes.EXPECT().UpdateNote(gomock.Any(), "n1", models.NoteInput{Title: "ab"}).Return(models.Note{ID: "n1"}, nil),
	)

	c.OnFieldChange(models.FieldTitle, "a")
	waitStatus(t, c, models.SaveStatusError)
	_, err := c.Status()
	require.Error(t, err)
	assert.True(t, c.Dirty())

	// следующая правка повторяет сохранение
	c.OnFieldChange(models.FieldTitle, "ab")
	waitStatus(t, c, models.SaveStatusSaved)
	_, err = c.Status()
	assert.NoError(t, err)
}

func TestAutosave_CreateWithoutIDIsAnError(t *testing.T) {
	c, notes := newTestAutosave(t, nil)
	notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, nil)

	c.OnFieldChange(models.FieldContent, "x")
	err := c.Flush(context.Background())
	require.Error(t, err)
	assert.True(t, c.Draft().IsNew())
}

// ── Flush & Close ───────────────────────────────────────────────────────────

func TestAutosave_FlushSavesImmediately(t *testing.T) {
	c, notes := newTestAutosave(t, &models.Note{ID: "n1"})
	notes.EXPECT().UpdateNote(gomock.Any(), "n1", models.NoteInput{Content: "now"}).
		Return(models.Note{ID: "n1"}, nil).Times(1)

	c.OnFieldChange(models.FieldContent, "now")
	require.NoError(t, c.Flush(context.Background()))

	st, _ := c.Status()
	assert.Equal(t, models.SaveStatusSaved, st)

	// отменённый таймер не должен сохранить второй раз
	time.Sleep(3 * testDelay)
}

func TestAutosave_CloseCancelsPendingSave(t *testing.T) {
	c, _ := newTestAutosave(t, &models.Note{ID: "n1"})

	c.OnFieldChange(models.FieldTitle, "unsaved")
	c.Close()
	c.OnFieldChange(models.FieldTitle, "after close")
	time.Sleep(4 * testDelay)

	assert.Equal(t, "unsaved", c.Draft().Title)
}

func TestAutosave_CloseDropsSaveQueuedBehindFlush(t *testing.T) {
	c, notes := newTestAutosave(t, nil)

	release := make(chan struct{})
	started := make(chan struct{})

	// без EXPECT для UpdateNote: сохранение после Close провалит тест
	notes.EXPECT().CreateNote(gomock.Any(), models.NoteInput{Title: "v1"}).
		DoAndReturn(func(context.Context, models.NoteInput) (models.Note, error) {
			close(started)
			<-release
			return models.Note{ID: "n1"}, nil
		}).Times(1)

	c.OnFieldChange(models.FieldTitle, "v1")
	flushed := make(chan error, 1)
	go func() { flushed <- c.Flush(context.Background()) }()
	<-started

	// таймер правки срабатывает и ждёт saveMu за create
	c.OnFieldChange(models.FieldTitle, "v2")
	time.Sleep(2 * testDelay)

	c.Close()
	close(release)
	require.NoError(t, <-flushed)

	time.Sleep(3 * testDelay)
	assert.Equal(t, "n1", c.NoteID())
	assert.True(t, c.Dirty())
}

func TestAutosave_TimerSaveSkippedAfterContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesAdapter(ctrl) // без EXPECT

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewAutosaveController(ctx, notes, testDelay, logger.Nop(), &models.Note{ID: "n1"})
	t.Cleanup(c.Close)

	c.OnFieldChange(models.FieldTitle, "late")
	time.Sleep(4 * testDelay)

	st, err := c.Status()
	assert.Equal(t, models.SaveStatusIdle, st)
	assert.NoError(t, err)
	assert.True(t, c.Dirty())
}

func TestAutosave_UnknownFieldIgnored(t *testing.T) {
	c, _ := newTestAutosave(t, nil)

	c.OnFieldChange(models.DraftField("tags"), "x")
	assert.False(t, c.Dirty())
}
