package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vault-notes/internal/adapter"
	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/store"
	"github.com/MKhiriev/vault-notes/internal/utils"
	"github.com/MKhiriev/vault-notes/internal/validators"
	"github.com/MKhiriev/vault-notes/models"
)

type clientAuthService struct {
	adapter  adapter.AuthAdapter
	sessions  store.SessionStore
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewClientAuthService returns the [ClientAuthService] that signs in through
// authAdapter and persists the session in sessions.
func NewClientAuthService(authAdapter adapter.AuthAdapter, sessions store.SessionStore, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   authAdapter,
		sessions:  sessions,
		validator: validators.NewClientInputValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	creds.Name = strings.TrimSpace(creds.Name)
	if err := a.validator.Validate(ctx, creds, validators.FieldEmail, validators.FieldPassword, validators.FieldName); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := a.adapter.Register(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Str("email", creds.Email).Msg("registration failed")
		return models.Session{}, mapAdapterError(err)
	}

	return a.startSession(ctx, resp)
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	creds.Name = ""

	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Str("email", creds.Email).Msg("login failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}
		return models.Session{}, mapAdapterError(err)
	}

	return a.startSession(ctx, resp)
}

func (a *clientAuthService) FederatedSignInURL(ctx context.Context, provider models.FederatedProvider) (models.FederatedSignIn, error) {
	if err := a.validator.Validate(ctx, provider); err != nil {
		return models.FederatedSignIn{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	signIn, err := a.adapter.FederatedSignInURL(ctx, provider)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.FederatedSignInURL").Str("provider", string(provider)).Msg("failed to get authorization url")
		return models.FederatedSignIn{}, mapAdapterError(err)
	}

	return signIn, nil
}

func (a *clientAuthService) CompleteFederatedSignIn(ctx context.Context, provider models.FederatedProvider, code, state string) (models.Session, error) {
	callback := models.FederatedCallback{Code: strings.TrimSpace(code), State: state}
	if err := a.validator.Validate(ctx, callback); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := a.adapter.CompleteFederatedSignIn(ctx, provider, callback)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.CompleteFederatedSignIn").Str("provider", string(provider)).Msg("federated sign-in failed")
		return models.Session{}, mapAdapterError(err)
	}

	return a.startSession(ctx, resp)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Load(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if session.Token == "" || session.Expired(a.now()) {
		a.logger.Info().Str("func", "clientAuthService.RestoreSession").Str("user_id", session.User.ID).Msg("stored session is expired")
		if clearErr := a.sessions.Clear(ctx); clearErr != nil {
			return models.Session{}, fmt.Errorf("clear expired session: %w", clearErr)
		}
		return models.Session{}, ErrSessionExpired
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Logout").Msg("failed to clear session")
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// startSession builds the session from a sign-in response, hands the token
// to the adapter and persists it.
func (a *clientAuthService) startSession(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	session := models.Session{Token: resp.Token, User: resp.User}

	// opaque tokens carry no claims; such sessions never expire client-side
	if claims, err := utils.ParseTokenClaims(resp.Token); err == nil {
		session.ExpiresAt = claims.ExpiresAt
		if session.User.ID == "" {
			session.User.ID = claims.Subject
		}
	}

	a.adapter.SetToken(session.Token)

	if err := a.sessions.Save(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.startSession").Str("user_id", session.User.ID).Msg("failed to persist session")
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	return session, nil
}
