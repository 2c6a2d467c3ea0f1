// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address and transport timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Editor holds the note editor's autosave and upload settings.
	Editor Editor `envPrefix:"EDITOR_"`

	// Log holds the log file location and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the backend REST API
	// (e.g. "https://vault.example.com" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every REST call (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UploadTimeout bounds a single PUT of file bytes to a pre-signed URL.
	// Env: ADAPTER_UPLOAD_TIMEOUT
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the SQLite session database.
type DB struct {
	// DSN is the path of the SQLite database file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Editor holds the behaviour knobs of the note editor.
type Editor struct {
	// AutosaveDelay is the quiet period after the last edit before the draft
	// is persisted.
	// Env: EDITOR_AUTOSAVE_DELAY
	AutosaveDelay time.Duration `env:"AUTOSAVE_DELAY"`

	// UploadRefreshDelay is how long the editor waits after an upload batch
	// settles before re-fetching the attachment list.
	// Env: EDITOR_UPLOAD_REFRESH_DELAY
	UploadRefreshDelay time.Duration `env:"UPLOAD_REFRESH_DELAY"`

	// MaxAttachmentSize is the per-file ceiling of note attachments
	// (e.g. "10MB").
	// Env: EDITOR_MAX_ATTACHMENT_SIZE
	MaxAttachmentSize ByteSize `env:"MAX_ATTACHMENT_SIZE"`

	// MaxAvatarSize is the ceiling of profile avatar uploads (e.g. "5MB").
	// Env: EDITOR_MAX_AVATAR_SIZE
	MaxAvatarSize ByteSize `env:"MAX_AVATAR_SIZE"`

	// MaxConcurrentUploads bounds the number of files of one batch that are
	// uploaded at the same time. Zero starts every file at once.
	// Env: EDITOR_MAX_CONCURRENT_UPLOADS
	MaxConcurrentUploads int `env:"MAX_CONCURRENT_UPLOADS"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is where JSON log entries are appended.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// Level is the minimum zerolog level ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
