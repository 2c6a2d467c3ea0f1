package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyName       = errors.New("name is required")
	ErrEmptyCode       = errors.New("authorization code is required")
	ErrInvalidProvider = errors.New("unknown identity provider")

	ErrEmptyRecipient    = errors.New("share recipient is empty")
	ErrInvalidPermission = errors.New("permission must be read or write")
	ErrInvalidScope      = errors.New("invalid list scope")
	ErrEmptyFilename     = errors.New("file name is required")
)
