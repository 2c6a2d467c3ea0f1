package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/vault-notes/internal/adapter"
	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/gabriel-vasile/mimetype"
)

type clientProfileService struct {
	adapter adapter.ProfileAdapter
	maxSize int64

	logger *logger.Logger
}

func NewClientProfileService(profileAdapter adapter.ProfileAdapter, maxAvatarSize int64, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{adapter: profileAdapter, maxSize: maxAvatarSize, logger: logger}
}

func (s *clientProfileService) Get(ctx context.Context) (models.User, error) {
	user, err := s.adapter.GetProfile(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientProfileService.Get").Msg("failed to get profile")
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (s *clientProfileService) UploadAvatar(ctx context.Context, path string) (models.User, error) {
	file, err := NewLocalFile(path)
	if err != nil {
		return models.User{}, err
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		return models.User{}, fmt.Errorf("%w: %s (%s): maximum size is %s", ErrFileTooLarge, file.Name, formatSize(file.Size), formatSize(s.maxSize))
	}

	mt, err := mimetype.DetectFile(file.Path)
	if err != nil {
		return models.User{}, fmt.Errorf("detect avatar type: %w", err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return models.User{}, fmt.Errorf("%w: %s is %s", ErrNotAnImage, file.Name, mt.String())
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return models.User{}, fmt.Errorf("open avatar: %w", err)
	}
	defer f.Close()

	user, err := s.adapter.UploadAvatar(ctx, file.Name, mt.String(), f)
	if err != nil {
		s.logger.Err(err).Str("func", "clientProfileService.UploadAvatar").Str("file", file.Name).Msg("failed to upload avatar")
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}
