package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vault-notes/internal/adapter"
	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/validators"
	"github.com/MKhiriev/vault-notes/models"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

type clientNoteService struct {
	notes     adapter.NotesAdapter
	shares    adapter.SharesAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientNoteService(notes adapter.NotesAdapter, shares adapter.SharesAdapter, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		notes:     notes,
		shares:    shares,
		validator: validators.NewClientInputValidator(),
		logger:    logger,
	}
}

func (s *clientNoteService) List(ctx context.Context, filter models.ListFilter) (models.NotesPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Scope == "" {
		filter.Scope = models.ScopeOwn
	}
	filter.Search = strings.TrimSpace(filter.Search)
	if err := s.validator.Validate(ctx, filter); err != nil {
		return models.NotesPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	page, err := s.notes.ListNotes(ctx, filter)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientNoteService.List").
			Str("scope", string(filter.Scope)).
			Int("page", filter.Page).
			Msg("failed to list notes")
		return models.NotesPage{}, mapAdapterError(err)
	}

	if page.Page == 0 {
		page.Page = filter.Page
	}
	if page.Limit == 0 {
		page.Limit = filter.Limit
	}
	return page, nil
}

func (s *clientNoteService) Get(ctx context.Context, noteID string) (models.Note, error) {
	if noteID == "" {
		return models.Note{}, ErrNoteNotSaved
	}

	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Get").Str("note_id", noteID).Msg("failed to get note")
		return models.Note{}, mapAdapterError(err)
	}
	return note, nil
}

func (s *clientNoteService) Delete(ctx context.Context, noteID string, hard bool) error {
	if err := s.notes.DeleteNote(ctx, noteID, hard); err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Delete").Str("note_id", noteID).Bool("hard", hard).Msg("failed to delete note")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientNoteService) Restore(ctx context.Context, noteID string) error {
	if err := s.notes.RestoreNote(ctx, noteID); err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Restore").Str("note_id", noteID).Msg("failed to restore note")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientNoteService) Share(ctx context.Context, noteID, recipient string, permission models.Permission) error {
	request := models.ShareRequest{Recipient: strings.TrimSpace(recipient), Permission: permission}
	if err := s.validator.Validate(ctx, request); err != nil {
		return err
	}

	err := s.shares.ShareNote(ctx, noteID, request)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientNoteService.Share").
			Str("note_id", noteID).
			Str("permission", string(permission)).
			Msg("failed to share note")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientNoteService) RevokeShare(ctx context.Context, noteID, userID string) error {
	if err := s.shares.RevokeShare(ctx, noteID, userID); err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.RevokeShare").Str("note_id", noteID).Str("user_id", userID).Msg("failed to revoke share")
		return mapAdapterError(err)
	}
	return nil
}
