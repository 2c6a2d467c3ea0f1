// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/vault-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestNewClientInputValidator
// ---------------------------------------------------------------------------

func TestNewClientInputValidator(t *testing.T) {
	v := NewClientInputValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewClientInputValidator()
	ctx := context.Background()

	creds := models.Credentials{Email: "alice@example.com", Password: "secret"}
	assert.NoError(t, v.Validate(ctx, creds))
	assert.NoError(t, v.Validate(ctx, &creds))

	share := models.ShareRequest{Recipient: "bob@example.com", Permission: models.PermissionWrite}
	assert.NoError(t, v.Validate(ctx, share))
	assert.NoError(t, v.Validate(ctx, &share))

	assert.NoError(t, v.Validate(ctx, models.ProviderGitHub))
	assert.NoError(t, v.Validate(ctx, models.FederatedCallback{Code: "c"}))
	assert.NoError(t, v.Validate(ctx, models.ListFilter{Scope: models.ScopeTrash}))
	assert.NoError(t, v.Validate(ctx, &models.UploadURLRequest{Filename: "a.txt"}))

	// неподдерживаемый тип
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Note{}), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidate_Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewClientInputValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		creds  models.Credentials
		fields []string
		want   error
	}{
		{name: "valid login", creds: models.Credentials{Email: "a@b.c", Password: "p"}},
		{name: "empty email", creds: models.Credentials{Email: "  ", Password: "p"}, want: ErrEmptyEmail},
		{name: "not an email", creds: models.Credentials{Email: "alice", Password: "p"}, want: ErrInvalidEmail},
		{name: "display name form rejected", creds: models.Credentials{Email: "Alice <a@b.c>", Password: "p"}, want: ErrInvalidEmail},
		{name: "empty password", creds: models.Credentials{Email: "a@b.c"}, want: ErrEmptyPassword},
		// имя проверяется только при регистрации
		{name: "login ignores name", creds: models.Credentials{Email: "a@b.c", Password: "p"}},
		{
			name:   "register requires name",
			creds:  models.Credentials{Email: "a@b.c", Password: "p", Name: " "},
			fields: []string{FieldEmail, FieldPassword, FieldName},
			want:   ErrEmptyName,
		},
		{
			name:   "register valid",
			creds:  models.Credentials{Email: "a@b.c", Password: "p", Name: "Alice"},
			fields: []string{FieldEmail, FieldPassword, FieldName},
		},
		{name: "unknown field", creds: models.Credentials{}, fields: []string{"age"}, want: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_ShareRequest
// ---------------------------------------------------------------------------

func TestValidate_ShareRequest(t *testing.T) {
	v := NewClientInputValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ShareRequest{Recipient: " ", Permission: models.PermissionRead}), ErrEmptyRecipient)
	assert.ErrorIs(t, v.Validate(ctx, models.ShareRequest{Recipient: "bob", Permission: "admin"}), ErrInvalidPermission)

	// проверка только получателя
	assert.NoError(t, v.Validate(ctx, models.ShareRequest{Recipient: "bob", Permission: "admin"}, FieldRecipient))
}

// ---------------------------------------------------------------------------
// TestValidate_Other
// ---------------------------------------------------------------------------

func TestValidate_Other(t *testing.T) {
	v := NewClientInputValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.FederatedProvider("facebook")), ErrInvalidProvider)
	assert.ErrorIs(t, v.Validate(ctx, models.FederatedCallback{Code: " ", State: "s"}), ErrEmptyCode)
	assert.ErrorIs(t, v.Validate(ctx, models.ListFilter{Scope: "everything"}), ErrInvalidScope)
	assert.ErrorIs(t, v.Validate(ctx, models.ListFilter{}), ErrInvalidScope)
	assert.ErrorIs(t, v.Validate(ctx, models.UploadURLRequest{Filename: ""}), ErrEmptyFilename)
	assert.ErrorIs(t, v.Validate(ctx, models.UploadURLRequest{Filename: "a"}, "size"), ErrUnknownField)
}
