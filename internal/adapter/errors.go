package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("payload too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrMissingToken is returned when a sign-in response carries no bearer
	// token in either the body or the Authorization header.
	ErrMissingToken = errors.New("no token in auth response")

	// ErrUploadFailed is returned when object storage rejects a PUT.
	ErrUploadFailed = errors.New("object storage upload failed")
)
