// Package utils provides general-purpose helpers used across the client:
// the HTTP client wrapper, identifier generation, bearer token inspection
// and HTML-to-text conversion for previews.
package utils
