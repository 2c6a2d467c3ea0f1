package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/service"
	"github.com/MKhiriev/vault-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// SignInFlow runs the sign-in screens until the user signs in or quits.
func (t *TUI) SignInFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageSignIn: NewSignInModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageSignIn, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session.Token == "" {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the note list, editor and profile screens for session.
// logout is true when the user asked to sign out.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	editor := NewEditorModel(ctx, t.services)
	pages := map[string]tea.Model{
		pageNotes:   NewNotesModel(ctx, t.services.NoteService, session.User),
		pageEditor:  editor,
		pageProfile: NewProfileModel(ctx, t.services.ProfileService),
	}

	root := NewRootModel(pages, pageNotes, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	editor.close()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.logout {
		t.logger.Info().Str("user_id", session.User.ID).Msg("user signed out")
	}
	return result.logout, nil
}
