package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/service"
	"github.com/MKhiriev/vault-notes/internal/store"
	"github.com/MKhiriev/vault-notes/internal/tui"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	service.ClientAuthService

	restore []error
	session models.Session
	logouts int
}

func (f *fakeAuth) RestoreSession(context.Context) (models.Session, error) {
	err := f.restore[0]
	f.restore = f.restore[1:]
	if err != nil {
		return models.Session{}, err
	}
	return f.session, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return nil
}

type fakeUI struct {
	signIns  int
	signInFn func() (models.Session, error)
	loops    []bool
	sessions []models.Session
}

func (f *fakeUI) SignInFlow(context.Context) (models.Session, error) {
	f.signIns++
	return f.signInFn()
}

func (f *fakeUI) MainLoop(_ context.Context, session models.Session) (bool, error) {
	f.sessions = append(f.sessions, session)
	logout := f.loops[0]
	f.loops = f.loops[1:]
	return logout, nil
}

func newTestApp(t *testing.T, auth *fakeAuth, ui *fakeUI) *App {
	t.Helper()
	app, err := NewApp(context.Background(), &service.ClientServices{AuthService: auth}, ui, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestApp_RestoredSessionSkipsSignIn(t *testing.T) {
	session := models.Session{Token: "tok", User: models.User{ID: "u1"}}
	auth := &fakeAuth{restore: []error{nil}, session: session}
	ui := &fakeUI{loops: []bool{false}}

	require.NoError(t, newTestApp(t, auth, ui).Run())
	assert.Zero(t, ui.signIns)
	assert.Equal(t, []models.Session{session}, ui.sessions)
}

func TestApp_SignInWhenNoSessionOrExpired(t *testing.T) {
	for _, restoreErr := range []error{store.ErrSessionNotFound, service.ErrSessionExpired} {
		signed := models.Session{Token: "new"}
		auth := &fakeAuth{restore: []error{restoreErr}}
		ui := &fakeUI{
			loops:    []bool{false},
			signInFn: func() (models.Session, error) { return signed, nil },
		}

		require.NoError(t, newTestApp(t, auth, ui).Run())
		assert.Equal(t, 1, ui.signIns)
		assert.Equal(t, []models.Session{signed}, ui.sessions)
	}
}

func TestApp_LogoutStartsOver(t *testing.T) {
	session := models.Session{Token: "tok"}
	auth := &fakeAuth{restore: []error{nil, store.ErrSessionNotFound}, session: session}
	ui := &fakeUI{
		loops:    []bool{true, false},
		signInFn: func() (models.Session, error) { return models.Session{Token: "again"}, nil },
	}

	require.NoError(t, newTestApp(t, auth, ui).Run())
	assert.Equal(t, 1, auth.logouts)
	assert.Equal(t, 1, ui.signIns)
	assert.Len(t, ui.sessions, 2)
}

func TestApp_QuitOnSignInIsNotAnError(t *testing.T) {
	auth := &fakeAuth{restore: []error{store.ErrSessionNotFound}}
	ui := &fakeUI{signInFn: func() (models.Session, error) { return models.Session{}, tui.ErrUserQuit }}

	assert.NoError(t, newTestApp(t, auth, ui).Run())
}

func TestApp_RestoreFailure(t *testing.T) {
	auth := &fakeAuth{restore: []error{errors.New("disk error")}}
	ui := &fakeUI{}

	err := newTestApp(t, auth, ui).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restore session")
}
