// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllVariables(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "https://vault.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "20s")
	t.Setenv("ADAPTER_UPLOAD_TIMEOUT", "10m")
	t.Setenv("STORAGE_DB_DSN", "/var/lib/vault-notes/session.db")
	t.Setenv("EDITOR_AUTOSAVE_DELAY", "3s")
	t.Setenv("EDITOR_UPLOAD_REFRESH_DELAY", "1s")
	t.Setenv("EDITOR_MAX_ATTACHMENT_SIZE", "10MiB")
	t.Setenv("EDITOR_MAX_AVATAR_SIZE", "5242880")
	t.Setenv("EDITOR_MAX_CONCURRENT_UPLOADS", "8")
	t.Setenv("LOG_FILE", "/var/log/vault-notes.log")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CONFIG", "/etc/vault-notes.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Adapter.UploadTimeout)
	assert.Equal(t, "/var/lib/vault-notes/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Editor.AutosaveDelay)
	assert.Equal(t, time.Second, cfg.Editor.UploadRefreshDelay)
	assert.Equal(t, 10*MiB, cfg.Editor.MaxAttachmentSize)
	assert.Equal(t, 5*MiB, cfg.Editor.MaxAvatarSize)
	assert.Equal(t, 8, cfg.Editor.MaxConcurrentUploads)
	assert.Equal(t, "/var/log/vault-notes.log", cfg.Log.FilePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/etc/vault-notes.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("EDITOR_AUTOSAVE_DELAY", "not-a-duration")

	var cfg StructuredConfig
	err := parseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidByteSize(t *testing.T) {
	t.Setenv("EDITOR_MAX_ATTACHMENT_SIZE", "huge")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}
