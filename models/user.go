// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the public profile of an account as returned by the backend.
type User struct {
	// ID is the backend-assigned user identifier.
	ID string `json:"id"`

	// Email is the login e-mail of the account.
	Email string `json:"email"`

	// Name is the display name shown next to shared notes.
	Name string `json:"name"`

	// AvatarURL points at the profile picture, if one was uploaded.
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Credentials is the request body of password registration and login.
// Name is only sent on registration.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// AuthResponse is the body returned by every sign-in endpoint. Some backend
// deployments return the token in the Authorization header instead of the
// body; the adapter accepts both.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// FederatedProvider names an external identity provider.
type FederatedProvider string

const (
	ProviderGoogle FederatedProvider = "google"
	ProviderGitHub FederatedProvider = "github"
)

// FederatedSignIn is the authorization URL the user must visit to sign in
// with an external provider, together with the anti-forgery state that has to
// be echoed back on completion.
type FederatedSignIn struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// FederatedCallback is the request body that exchanges an authorization code
// for a session.
type FederatedCallback struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

// Session is the persisted authentication state of the client.
type Session struct {
	Token     string
	User      User
	ExpiresAt time.Time
}

// Expired reports whether the session token is past its expiry at now.
// A zero ExpiresAt means the token carries no expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
