// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.UploadTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	e := cfg.Editor
	if e.AutosaveDelay <= 0 || e.UploadRefreshDelay < 0 ||
		e.MaxAttachmentSize <= 0 || e.MaxAvatarSize <= 0 || e.MaxConcurrentUploads < 0 {
		return ErrInvalidEditorConfigs
	}

	return nil
}
