// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadStatus is the state of one [UploadTask].
type UploadStatus string

const (
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusSuccess   UploadStatus = "success"
	UploadStatusError     UploadStatus = "error"
)

// Terminal reports whether s is a final state.
func (s UploadStatus) Terminal() bool {
	return s == UploadStatusSuccess || s == UploadStatusError
}

// UploadTask is one in-flight file upload.
type UploadTask struct {
	ID          string
	FileName    string
	Size        int64
	ContentType string
	Progress    int
	Status      UploadStatus
	Err         string
}

// LocalFile is a file picked by the user for upload. ContentType is the type
// declared for the file (by its extension) and may be empty.
type LocalFile struct {
	Path        string
	Name        string
	Size        int64
	ContentType string
}
