// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// The sessions table holds at most one row (id = 1).
const (
	loadSession = `
		SELECT
			token,
			user_id,
			email,
			name,
			avatar_url,
			expires_at
		FROM sessions
		WHERE id = 1;`

	saveSession = `
		INSERT INTO sessions (
			id,
			token,
			user_id,
			email,
			name,
			avatar_url,
			expires_at,
			updated_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token      = excluded.token,
			user_id    = excluded.user_id,
			email      = excluded.email,
			name       = excluded.name,
			avatar_url = excluded.avatar_url,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at;`

	clearSession = `DELETE FROM sessions;`
)
