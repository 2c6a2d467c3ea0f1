package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActionsFor(t *testing.T) {
	assert.Equal(t, NoteActions{Open: true, Edit: true, Delete: true, Share: true}, ActionsFor(ScopeOwn))
	assert.Equal(t, NoteActions{Open: true, Edit: true}, ActionsFor(ScopeShared))
	assert.Equal(t, NoteActions{HardDelete: true, Restore: true}, ActionsFor(ScopeTrash))
	assert.Equal(t, NoteActions{}, ActionsFor("unknown"))
}

func TestNoteActions_ForNote(t *testing.T) {
	shared := ActionsFor(ScopeShared)

	assert.False(t, shared.ForNote(Note{Permission: PermissionRead}).Edit)
	assert.True(t, shared.ForNote(Note{Permission: PermissionRead}).Open)
	assert.True(t, shared.ForNote(Note{Permission: PermissionWrite}).Edit)
	// собственные заметки без уровня доступа не ограничиваются
	assert.True(t, ActionsFor(ScopeOwn).ForNote(Note{}).Edit)
}

func TestDraft(t *testing.T) {
	d := Draft{}
	assert.True(t, d.IsNew())
	assert.True(t, d.IsEmpty())

	d.Title = "t"
	assert.False(t, d.IsEmpty())
	assert.Equal(t, NoteInput{Title: "t"}, d.Input())

	d.ID = "n1"
	assert.False(t, d.IsNew())
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{}.Expired(now), "zero expiry never expires")
	assert.False(t, Session{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, Session{ExpiresAt: now}.Expired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Second)}.Expired(now))
}

func TestNotesPage_Pages(t *testing.T) {
	assert.Equal(t, 1, NotesPage{}.Pages())
	assert.Equal(t, 1, NotesPage{Total: 20, Limit: 20}.Pages())
	assert.Equal(t, 2, NotesPage{Total: 21, Limit: 20}.Pages())
	assert.Equal(t, 1, NotesPage{Total: 5, Limit: 0}.Pages())
}

func TestUploadStatus_Terminal(t *testing.T) {
	assert.False(t, UploadStatusUploading.Terminal())
	assert.True(t, UploadStatusSuccess.Terminal())
	assert.True(t, UploadStatusError.Terminal())
}

func TestPermission_Valid(t *testing.T) {
	assert.True(t, PermissionRead.Valid())
	assert.True(t, PermissionWrite.Valid())
	assert.False(t, Permission("").Valid())
	assert.False(t, Permission("admin").Valid())
}

func TestNote_InTrash(t *testing.T) {
	deleted := time.Now()
	assert.False(t, Note{}.InTrash())
	assert.True(t, Note{DeletedAt: &deleted}.InTrash())
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", " ")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
}
