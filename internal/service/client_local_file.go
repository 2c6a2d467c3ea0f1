package service

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/vault-notes/models"
)

// NewLocalFile describes the regular file at path. The declared content type
// comes from the file extension and may be empty.
func NewLocalFile(path string) (models.LocalFile, error) {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.LocalFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return models.LocalFile{}, fmt.Errorf("%s is not a regular file", path)
	}

	return models.LocalFile{
		Path:        path,
		Name:        filepath.Base(path),
		Size:        info.Size(),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
	}, nil
}

// NewLocalFiles describes every path, failing on the first bad one.
func NewLocalFiles(paths []string) ([]models.LocalFile, error) {
	files := make([]models.LocalFile, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		f, err := NewLocalFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
