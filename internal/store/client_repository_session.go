package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionStore].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionStore {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	var (
		session   models.Session
		expiresAt sql.NullTime
	)

	err := s.DB.QueryRowContext(ctx, loadSession).Scan(
		&session.Token,
		&session.User.ID,
		&session.User.Email,
		&session.User.Name,
		&session.User.AvatarURL,
		&expiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Load").
			Msg("failed to read session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time
	}

	return session, nil
}

func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	var expiresAt sql.NullTime
	if !session.ExpiresAt.IsZero() {
		expiresAt = sql.NullTime{Time: session.ExpiresAt.UTC(), Valid: true}
	}

	_, err := s.DB.ExecContext(ctx, saveSession,
		session.Token,
		session.User.ID,
		session.User.Email,
		session.User.Name,
		session.User.AvatarURL,
		expiresAt,
		time.Now().UTC(),
	)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Str("user_id", session.User.ID).
			Msg("failed to upsert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, clearSession); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Clear").
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
