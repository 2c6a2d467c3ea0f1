// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults, merged last so that they only fill fields left empty by
// every other source.
const (
	DefaultHTTPAddress          = "http://localhost:8080"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultUploadTimeout        = 5 * time.Minute
	DefaultSessionDSN           = "vault-notes.db"
	DefaultAutosaveDelay        = 2 * time.Second
	DefaultUploadRefreshDelay   = 3 * time.Second
	DefaultMaxAttachmentSize    = 10 * MiB
	DefaultMaxAvatarSize        = 5 * MiB
	DefaultMaxConcurrentUploads = 0 // unbounded
	DefaultLogFile              = "vault-notes.log"
	DefaultLogLevel             = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			UploadTimeout:  DefaultUploadTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultSessionDSN}},
		Editor: Editor{
			AutosaveDelay:        DefaultAutosaveDelay,
			UploadRefreshDelay:   DefaultUploadRefreshDelay,
			MaxAttachmentSize:    DefaultMaxAttachmentSize,
			MaxAvatarSize:        DefaultMaxAvatarSize,
			MaxConcurrentUploads: DefaultMaxConcurrentUploads,
		},
		Log: Log{FilePath: DefaultLogFile, Level: DefaultLogLevel},
	}
}
