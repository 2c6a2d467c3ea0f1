package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the timeout of REST calls.
	RequestTimeout time.Duration
	// UploadTimeout is the timeout of a single pre-signed PUT.
	UploadTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientEditor contains the note editor's autosave and upload settings.
type ClientEditor struct {
	AutosaveDelay        time.Duration
	UploadRefreshDelay   time.Duration
	MaxAttachmentSize    int64
	MaxAvatarSize        int64
	MaxConcurrentUploads int
}

// ClientLog contains logging settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Editor  ClientEditor
	Log     ClientLog
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UploadTimeout:  cfg.Adapter.UploadTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Editor: ClientEditor{
			AutosaveDelay:        cfg.Editor.AutosaveDelay,
			UploadRefreshDelay:   cfg.Editor.UploadRefreshDelay,
			MaxAttachmentSize:    cfg.Editor.MaxAttachmentSize.Int64(),
			MaxAvatarSize:        cfg.Editor.MaxAvatarSize.Int64(),
			MaxConcurrentUploads: cfg.Editor.MaxConcurrentUploads,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}
}
