package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/vault-notes/internal/config"
	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/utils"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [AuthAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}

	return h.handleAuthResponse(resp, "register")
}

// Login implements [AuthAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}

	return h.handleAuthResponse(resp, "login")
}

// FederatedSignInURL implements [AuthAdapter].
// GET /api/auth/oauth/{provider}/url.
func (h *httpServerAdapter) FederatedSignInURL(ctx context.Context, provider models.FederatedProvider) (models.FederatedSignIn, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("provider", string(provider)).
		Get("/api/auth/oauth/{provider}/url")
	if err != nil {
		return models.FederatedSignIn{}, fmt.Errorf("federated sign-in url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FederatedSignIn{}, err
	}

	var signIn models.FederatedSignIn
	if err = decode(resp, &signIn); err != nil {
		return models.FederatedSignIn{}, fmt.Errorf("decode federated sign-in url: %w", err)
	}
	return signIn, nil
}

// CompleteFederatedSignIn implements [AuthAdapter].
// POST /api/auth/oauth/{provider}/callback.
func (h *httpServerAdapter) CompleteFederatedSignIn(ctx context.Context, provider models.FederatedProvider, callback models.FederatedCallback) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("provider", string(provider)).
		SetHeader("Content-Type", "application/json").
		SetBody(callback).
		Post("/api/auth/oauth/{provider}/callback")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("federated callback request: %w", err)
	}

	return h.handleAuthResponse(resp, "federated sign-in")
}

// handleAuthResponse decodes a sign-in response. The token is taken from the
// body, or from the Authorization header when the body carries none.
func (h *httpServerAdapter) handleAuthResponse(resp *resty.Response, op string) (models.AuthResponse, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if len(resp.Body()) > 0 {
		if err := decode(resp, &auth); err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s decode response: %w", op, err)
		}
	}

	if auth.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s: %w", op, ErrMissingToken)
		}
		auth.Token = token
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// CreateNote implements [NotesAdapter]. POST /api/notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}

	return decodeNote(resp, "create note")
}

// UpdateNote implements [NotesAdapter]. PUT /api/notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, input models.NoteInput) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Put("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}

	return decodeNote(resp, "update note")
}

// GetNote implements [NotesAdapter]. GET /api/notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		Get("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}

	return decodeNote(resp, "get note")
}

// ListNotes implements [NotesAdapter]. GET /api/notes with page, limit,
// search and scope query parameters; empty values are omitted.
func (h *httpServerAdapter) ListNotes(ctx context.Context, filter models.ListFilter) (models.NotesPage, error) {
	params := map[string]string{}
	if filter.Page > 0 {
		params["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.Itoa(filter.Limit)
	}
	if filter.Search != "" {
		params["search"] = filter.Search
	}
	if filter.Scope != "" {
		params["scope"] = string(filter.Scope)
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		Get("/api/notes")
	if err != nil {
		return models.NotesPage{}, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NotesPage{}, err
	}

	var page models.NotesPage
	if err = decode(resp, &page); err != nil {
		return models.NotesPage{}, fmt.Errorf("decode notes page: %w", err)
	}
	return page, nil
}

// DeleteNote implements [NotesAdapter]. DELETE /api/notes/{id}?hard=.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string, hard bool) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		SetQueryParam("hard", strconv.FormatBool(hard)).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// RestoreNote implements [NotesAdapter]. POST /api/notes/{id}/restore.
func (h *httpServerAdapter) RestoreNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		Post("/api/notes/{id}/restore")
	if err != nil {
		return fmt.Errorf("restore note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeNote(resp *resty.Response, op string) (models.Note, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err := decode(resp, &note); err != nil {
		return models.Note{}, fmt.Errorf("%s decode response: %w", op, err)
	}
	return note, nil
}

func decode(resp *resty.Response, v any) error {
	return json.Unmarshal(resp.Body(), v)
}
