package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"http_address":    "https://vault.example.com",
			"request_timeout": "30s",
			"upload_timeout":  "2m",
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "session.db"}},
		"editor": map[string]any{
			"autosave_delay":         "2s",
			"upload_refresh_delay":   3000000000,
			"max_attachment_size":    10485760,
			"max_avatar_size":        "5MiB",
			"max_concurrent_uploads": 3,
		},
		"log": map[string]any{"file": "notes.log", "level": "debug"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.UploadTimeout)
	assert.Equal(t, "session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Editor.AutosaveDelay)
	assert.Equal(t, 3*time.Second, cfg.Editor.UploadRefreshDelay)
	assert.Equal(t, 10*MiB, cfg.Editor.MaxAttachmentSize)
	assert.Equal(t, 5*MiB, cfg.Editor.MaxAvatarSize)
	assert.Equal(t, 3, cfg.Editor.MaxConcurrentUploads)
	assert.Equal(t, "notes.log", cfg.Log.FilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_RoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func TestDuration_RejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte("true"), &d))
}

func TestByteSize_String(t *testing.T) {
	assert.Equal(t, "10 MiB", (10 * MiB).String())
}
