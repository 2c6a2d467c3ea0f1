package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/vault-notes/internal/service"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileModel shows the signed-in user and uploads a new avatar from a
// local image path.
type ProfileModel struct {
	ctx     context.Context
	profile service.ClientProfileService

	user       models.User
	loading    bool
	submitting bool
	pathInput  textinput.Model
	status     string
	errMsg     string
}

func NewProfileModel(ctx context.Context, profile service.ClientProfileService) *ProfileModel {
	path := textinput.New()
	path.Placeholder = "~/avatar.png"
	path.CharLimit = 4096
	path.Width = 50

	return &ProfileModel{
		ctx:       ctx,
		profile:   profile,
		pathInput: path,
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	return nil
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openProfileMsg:
		m.loading = true
		m.status = ""
		m.errMsg = ""
		m.pathInput.SetValue("")
		return m, tea.Batch(m.cmdLoad(), m.pathInput.Focus())
	case profileLoadedMsg:
		m.loading = false
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.status = msg.status
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.pathInput.Blur()
			return m, func() tea.Msg { return NavigateTo{Page: pageNotes, Payload: reloadNotesMsg{}} }
		case key.Matches(msg, keys.enter):
			path := strings.TrimSpace(m.pathInput.Value())
			if m.submitting || path == "" {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			m.status = ""
			return m, m.cmdUploadAvatar(path)
		}
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *ProfileModel) View() string {
	var b strings.Builder
	if m.loading {
		b.WriteString("Загрузка...\n")
	} else {
		b.WriteString("Поле    │ Значение\n")
		b.WriteString("────────┼────────────────────────────────────────────\n")
		b.WriteString("Имя     │ " + valueOrDash(m.user.Name) + "\n")
		b.WriteString("E-mail  │ " + valueOrDash(m.user.Email) + "\n")
		b.WriteString("Аватар  │ " + valueOrDash(m.user.AvatarURL) + "\n")
	}

	b.WriteString("\nНовый аватар │ [")
	b.WriteString(m.pathInput.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\nЗагрузка аватара...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "enter: загрузить аватар │ esc: назад")
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		user, err := profile.Get(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdUploadAvatar(path string) tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		user, err := profile.UploadAvatar(ctx, path)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		return profileLoadedMsg{user: user, status: "Аватар обновлён"}
	}
}
