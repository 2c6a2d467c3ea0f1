package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/mock"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\xff\xff\xff\x00\x00\x00!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

func TestClientProfileService_UploadAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	profile := mock.NewMockProfileAdapter(ctrl)
	svc := NewClientProfileService(profile, 5*mib, logger.Nop())

	path := filepath.Join(t.TempDir(), "me.gif")
	require.NoError(t, os.WriteFile(path, gifBytes, 0o600))

	profile.EXPECT().UploadAvatar(gomock.Any(), "me.gif", "image/gif", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, body io.Reader) (models.User, error) {
			b, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, gifBytes, b)
			return models.User{ID: "u1", AvatarURL: "https://cdn/me.gif"}, nil
		})

	user, err := svc.UploadAvatar(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/me.gif", user.AvatarURL)
}

func TestClientProfileService_UploadAvatarRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientProfileService(mock.NewMockProfileAdapter(ctrl), 5*mib, logger.Nop())
	dir := t.TempDir()

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("just text"), 0o600))
	_, err := svc.UploadAvatar(context.Background(), text)
	assert.ErrorIs(t, err, ErrNotAnImage)

	big := filepath.Join(dir, "huge.gif")
	f, err := os.Create(big)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(6*mib))
	require.NoError(t, f.Close())
	_, err = svc.UploadAvatar(context.Background(), big)
	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.Contains(t, err.Error(), "5 MB")

	_, err = svc.UploadAvatar(context.Background(), filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestClientProfileService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	profile := mock.NewMockProfileAdapter(ctrl)
	svc := NewClientProfileService(profile, 5*mib, logger.Nop())

	profile.EXPECT().GetProfile(gomock.Any()).Return(models.User{ID: "u1", Name: "Alice"}, nil)
	user, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestNewLocalFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	files, err := NewLocalFiles([]string{path, "  "})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.txt", files[0].Name)
	assert.Equal(t, int64(3), files[0].Size)
	assert.Contains(t, files[0].ContentType, "text/plain")

	_, err = NewLocalFiles([]string{dir})
	assert.Error(t, err)
}
