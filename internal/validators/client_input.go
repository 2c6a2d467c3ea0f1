package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/vault-notes/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the login e-mail of credentials.
	FieldEmail = "email"

	// FieldPassword targets the password of credentials.
	FieldPassword = "password"

	// FieldName targets the display name, required on registration only.
	FieldName = "name"

	// FieldCode targets the authorization code of a federated callback.
	FieldCode = "code"

	// FieldProvider targets the identity provider of a federated sign-in.
	FieldProvider = "provider"

	// FieldRecipient targets the recipient of a share request.
	FieldRecipient = "recipient"

	// FieldPermission targets the permission level of a share request.
	FieldPermission = "permission"

	// FieldScope targets the scope of a list filter.
	FieldScope = "scope"

	// FieldFilename targets the file name of an upload URL request.
	FieldFilename = "filename"
)

var allowedScopes = []models.ListScope{
	models.ScopeOwn,
	models.ScopeShared,
	models.ScopeTrash,
}

var allowedProviders = []models.FederatedProvider{
	models.ProviderGoogle,
	models.ProviderGitHub,
}

// ClientInputValidator implements the Validator interface for the requests
// the client sends to the backend: Credentials, FederatedCallback,
// FederatedProvider, ShareRequest, ListFilter and UploadURLRequest.
//
// Values and pointers are both accepted. Without field names the default
// field set of the type is checked; credentials default to the login set
// (email and password), registration passes FieldName explicitly.
type ClientInputValidator struct {
}

func NewClientInputValidator() Validator {
	return &ClientInputValidator{}
}

func (v *ClientInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.FederatedCallback:
		return v.validateFederatedCallback(ctx, value, fields...)
	case *models.FederatedCallback:
		return v.validateFederatedCallback(ctx, *value, fields...)

	case models.FederatedProvider:
		return v.validateProvider(value)

	case models.ShareRequest:
		return v.validateShareRequest(ctx, value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(ctx, *value, fields...)

	case models.ListFilter:
		return v.validateListFilter(ctx, value, fields...)
	case *models.ListFilter:
		return v.validateListFilter(ctx, *value, fields...)

	case models.UploadURLRequest:
		return v.validateUploadURLRequest(ctx, value, fields...)
	case *models.UploadURLRequest:
		return v.validateUploadURLRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClientInputValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(creds.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		case FieldName:
			if strings.TrimSpace(creds.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClientInputValidator) validateFederatedCallback(_ context.Context, callback models.FederatedCallback, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if strings.TrimSpace(callback.Code) == "" {
				return ErrEmptyCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClientInputValidator) validateProvider(provider models.FederatedProvider) error {
	for _, p := range allowedProviders {
		if provider == p {
			return nil
		}
	}
	return ErrInvalidProvider
}

func (v *ClientInputValidator) validateShareRequest(_ context.Context, request models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecipient, FieldPermission}
	}

	for _, f := range fields {
		switch f {
		case FieldRecipient:
			if strings.TrimSpace(request.Recipient) == "" {
				return ErrEmptyRecipient
			}
		case FieldPermission:
			if !request.Permission.Valid() {
				return ErrInvalidPermission
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClientInputValidator) validateListFilter(_ context.Context, filter models.ListFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldScope}
	}

	for _, f := range fields {
		switch f {
		case FieldScope:
			if !isAllowedScope(filter.Scope) {
				return ErrInvalidScope
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClientInputValidator) validateUploadURLRequest(_ context.Context, request models.UploadURLRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFilename}
	}

	for _, f := range fields {
		switch f {
		case FieldFilename:
			if strings.TrimSpace(request.Filename) == "" {
				return ErrEmptyFilename
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isAllowedScope(scope models.ListScope) bool {
	for _, s := range allowedScopes {
		if scope == s {
			return true
		}
	}
	return false
}
