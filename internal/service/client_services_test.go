package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/mock"
	"github.com/MKhiriev/vault-notes/internal/utils"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestEditorSession — хелпер: сессия новой заметки с моками адаптеров
func newTestEditorSession(t *testing.T) (*EditorSession, *mock.MockNotesAdapter, *mock.MockAttachmentsAdapter, *mock.MockObjectStorage) {
	t.Helper()
	autosave, notes := newTestAutosave(t, nil)

	ctrl := gomock.NewController(t)
	api := mock.NewMockAttachmentsAdapter(ctrl)
	storage := mock.NewMockObjectStorage(ctrl)

	cfg := testEditorConfig()
	cfg.UploadRefreshDelay = 0
	uploads := NewUploadCoordinator(autosave.NoteID, api, storage, utils.NewUUIDGenerator(), cfg, logger.Nop(), nil)

	return &EditorSession{Autosave: autosave, Uploads: uploads}, notes, api, storage
}

func TestAttachFiles_OversizedBatchDoesNotCreateNote(t *testing.T) {
	session, _, _, _ := newTestEditorSession(t) // без EXPECT: ни create, ни загрузок

	session.Autosave.OnFieldChange(models.FieldTitle, "черновик")

	tasks, err := session.AttachFiles(context.Background(), []models.LocalFile{
		{Name: "ok.txt", Size: 1},
		{Name: "huge.iso", Size: 11 * mib},
	})
	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, tasks)
	assert.True(t, session.Autosave.Draft().IsNew())
}

func TestAttachFiles_NewNoteIsSavedBeforeUpload(t *testing.T) {
	session, notes, api, storage := newTestEditorSession(t)
	file := writeTempFile(t, "a.txt", 0, []byte("alpha"))

	gomock.InOrder(
		notes.EXPECT().CreateNote(gomock.Any(), models.NoteInput{Title: "с файлом"}).Return(models.Note{ID: "n7"}, nil),
		api.EXPECT().RequestUploadURL(gomock.Any(), "n7", gomock.Any()).Return(models.UploadURL{URL: "u"}, nil),
	)
	storage.EXPECT().PutObject(gomock.Any(), "u", gomock.Any(), gomock.Any(), int64(5), gomock.Any()).DoAndReturn(drainingPut)
	api.EXPECT().ListAttachments(gomock.Any(), "n7").Return(nil, nil)

	session.Autosave.OnFieldChange(models.FieldTitle, "с файлом")

	tasks, err := session.AttachFiles(context.Background(), []models.LocalFile{file})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "n7", session.Autosave.NoteID())

	session.Uploads.Wait()
}

func TestAttachFiles_EmptyNewNoteIsRefused(t *testing.T) {
	session, _, _, _ := newTestEditorSession(t)

	_, err := session.AttachFiles(context.Background(), []models.LocalFile{{Name: "a.txt", Size: 1}})
	assert.ErrorIs(t, err, ErrNoteNotSaved)
}
