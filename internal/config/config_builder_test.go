package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroWins verifies the merge priority: a field set by an
// earlier source is not overwritten by a later one.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:8080"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:8080", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_DefaultsFillOnlyEmptyFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Editor: Editor{AutosaveDelay: 500 * time.Millisecond}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Editor.AutosaveDelay)
	assert.Equal(t, DefaultUploadRefreshDelay, cfg.Editor.UploadRefreshDelay)
	assert.Equal(t, DefaultMaxAttachmentSize, cfg.Editor.MaxAttachmentSize)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NotSpecified_Skips(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "https://vault.example.com"},
		"editor":  map[string]any{"max_attachment_size": "20MiB"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://vault.example.com", b.configs[1].Adapter.HTTPAddress)
	assert.Equal(t, 20*MiB, b.configs[1].Editor.MaxAttachmentSize)
}

func TestWithJSON_MissingFile_SetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()

	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "error reading a json file")
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_DefaultsAreValid(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAutosaveDelay, cfg.Editor.AutosaveDelay)
	assert.Equal(t, int64(10<<20), cfg.Editor.MaxAttachmentSize)
	assert.Equal(t, int64(5<<20), cfg.Editor.MaxAvatarSize)
	assert.Equal(t, DefaultSessionDSN, cfg.Storage.DB.DSN)
	// по умолчанию все файлы пачки загружаются одновременно
	assert.Equal(t, 0, cfg.Editor.MaxConcurrentUploads)
}

func TestGetClientConfig_NegativeUploadConcurrencyRejected(t *testing.T) {
	_, err := GetClientConfig([]string{"-upload-concurrency", "-1"})
	assert.ErrorIs(t, err, ErrInvalidEditorConfigs)
}

func TestGetClientConfig_EnvBeatsFlags(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://from-env:9000")

	cfg, err := GetClientConfig([]string{"-a", "http://from-flag:9000", "-autosave-delay", "1s"})
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Editor.AutosaveDelay)
}

func TestGetClientConfig_InMemoryDSNRejected(t *testing.T) {
	_, err := GetClientConfig([]string{"-d", ":memory:"})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	_, err := GetClientConfig([]string{"-unknown-flag"})
	require.Error(t, err)
}
