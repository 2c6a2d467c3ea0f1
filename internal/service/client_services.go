package service

import (
	"context"

	"github.com/MKhiriev/vault-notes/internal/adapter"
	"github.com/MKhiriev/vault-notes/internal/config"
	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/store"
	"github.com/MKhiriev/vault-notes/internal/utils"
	"github.com/MKhiriev/vault-notes/models"
)

// ClientServices groups the client services and builds the per-session
// editor components.
type ClientServices struct {
	AuthService    ClientAuthService
	NoteService    ClientNoteService
	ProfileService ClientProfileService

	serverAdapter adapter.ServerAdapter
	storage       adapter.ObjectStorage
	editor        config.ClientEditor
	ids           IDGenerator
	logger        *logger.Logger
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	objectStorage adapter.ObjectStorage,
	editor config.ClientEditor,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, storages.Sessions, logger),
		NoteService:    NewClientNoteService(serverAdapter, serverAdapter, logger),
		ProfileService: NewClientProfileService(serverAdapter, editor.MaxAvatarSize, logger),
		serverAdapter:  serverAdapter,
		storage:        objectStorage,
		editor:         editor,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// EditorSession is the autosave controller and upload coordinator of one
// opened note.
type EditorSession struct {
	Autosave *AutosaveController
	Uploads  *UploadCoordinator
}

// Close ends the editing session. Pending autosaves are dropped; uploads
// already running finish in the background.
func (e *EditorSession) Close() {
	e.Autosave.Close()
}

// AttachFiles uploads files to the edited note. A new note is saved first so
// that it has an ID; a batch rejected by the size check saves nothing.
func (e *EditorSession) AttachFiles(ctx context.Context, files []models.LocalFile) ([]models.UploadTask, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if err := e.Uploads.CheckSizes(files); err != nil {
		return nil, err
	}

	if e.Autosave.NoteID() == "" {
		if err := e.Autosave.Flush(ctx); err != nil {
			return nil, err
		}
	}

	return e.Uploads.AcceptFiles(ctx, files)
}

// NewEditorSession opens an editing session for note, or for a new note when
// note is nil.
func (s *ClientServices) NewEditorSession(ctx context.Context, note *models.Note) *EditorSession {
	log := s.logger.GetChildLogger()
	if note != nil {
		log = &logger.Logger{Logger: log.With().Str("note_id", note.ID).Logger()}
	}

	autosave := NewAutosaveController(ctx, s.serverAdapter, s.editor.AutosaveDelay, log, note)

	var attachments []models.Attachment
	if note != nil {
		attachments = note.Attachments
	}
	uploads := NewUploadCoordinator(autosave.NoteID, s.serverAdapter, s.storage, s.ids, s.editor, log, attachments)

	return &EditorSession{Autosave: autosave, Uploads: uploads}
}
