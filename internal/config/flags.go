package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command-line flags.
//
// Flags:
//
//	-a                      backend address (URL or host:port)
//	-request-timeout        REST call timeout (e.g. "15s")
//	-upload-timeout         pre-signed PUT timeout (e.g. "5m")
//	-d                      session database path
//	-autosave-delay         editor quiet period before saving (e.g. "2s")
//	-refresh-delay          delay before refreshing attachments after uploads
//	-max-attachment-size    attachment ceiling (e.g. "10MiB")
//	-max-avatar-size        avatar ceiling (e.g. "5MiB")
//	-upload-concurrency     concurrent uploads per batch
//	-log-file               log file path
//	-log-level              log level
//	-c/-config              json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("vault-notes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Backend address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&cfg.Adapter.UploadTimeout, "upload-timeout", 0, "Upload timeout (e.g., 5m)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Session database path")
	fs.DurationVar(&cfg.Editor.AutosaveDelay, "autosave-delay", 0, "Autosave quiet period (e.g., 2s)")
	fs.DurationVar(&cfg.Editor.UploadRefreshDelay, "refresh-delay", time.Duration(0), "Attachment refresh delay after uploads")
	fs.Var(&cfg.Editor.MaxAttachmentSize, "max-attachment-size", "Attachment size limit (e.g., 10MiB)")
	fs.Var(&cfg.Editor.MaxAvatarSize, "max-avatar-size", "Avatar size limit (e.g., 5MiB)")
	fs.IntVar(&cfg.Editor.MaxConcurrentUploads, "upload-concurrency", 0, "Concurrent uploads per batch (0: no limit)")
	fs.StringVar(&cfg.Log.FilePath, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}
