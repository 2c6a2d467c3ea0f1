// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

const (
	inputEmail = iota
	inputPassword
	inputName
)

// SignInModel is the Bubble Tea model for the sign-in screen. It covers
// password login, registration (toggled with ctrl+r, adds the name field) and
// federated sign-in: the provider's URL is copied to the clipboard and the
// authorization code is pasted back into the form.
// Every flow ends with a [SignInResult] handled by [RootModel].
type SignInModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	register   bool
	submitting bool
	errMsg     string
	status     string

	provider  models.FederatedProvider
	federated models.FederatedSignIn
	codeInput textinput.Model
}

// NewSignInModel creates a [SignInModel] with e-mail, password and name
// inputs. The e-mail field receives focus immediately; the password field
// uses masked echo.
func NewSignInModel(ctx context.Context, auth service.ClientAuthService) *SignInModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	nameInput := textinput.New()
	nameInput.Placeholder = "имя"
	nameInput.CharLimit = 100
	nameInput.Width = 40

	codeInput := textinput.New()
	codeInput.Placeholder = "код авторизации"
	codeInput.CharLimit = 2048
	codeInput.Width = 40

	return &SignInModel{
		ctx:       ctx,
		auth:      auth,
		inputs:    []textinput.Model{emailInput, passwordInput, nameInput},
		codeInput: codeInput,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *SignInModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [SignInResult]    — clears submitting state; on error, populates errMsg.
//   - federatedURLMsg   — switches the form to code entry and copies the URL.
//   - ctrl+r            — toggles registration mode.
//   - ctrl+g / ctrl+b   — starts Google / GitHub sign-in.
//   - tab, shift+tab    — move focus between inputs.
//   - enter             — validates inputs and dispatches the async command.
//
// All other key events are forwarded to the focused input widget.
func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignInResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil
	case federatedURLMsg:
		m.submitting = false
		if msg.err != nil {
			m.provider = ""
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.federated = msg.signIn
		m.codeInput.SetValue("")
		m.codeInput.Focus()
		return m, cmdCopyToClipboard(msg.signIn.URL, "Ссылка для входа")
	case copiedMsg:
		if msg.err != nil {
			m.status = "Не удалось скопировать ссылку, откройте её вручную"
			return m, nil
		}
		m.status = msg.what + " скопирована в буфер обмена"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	if m.provider != "" {
		return m.updateFederated(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.register):
		m.register = !m.register
		m.errMsg = ""
		if !m.register && m.focus == inputName {
			m.setFocus(inputEmail)
		}
		return m, nil
	case key.Matches(keyMsg, keys.google):
		return m.startFederated(models.ProviderGoogle)
	case key.Matches(keyMsg, keys.github):
		return m.startFederated(models.ProviderGitHub)
	case key.Matches(keyMsg, keys.tab):
		m.setFocus((m.focus + 1) % m.visibleInputs())
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.setFocus((m.focus - 1 + m.visibleInputs()) % m.visibleInputs())
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}

		creds := models.Credentials{
			Email:    strings.TrimSpace(m.inputs[inputEmail].Value()),
			Password: m.inputs[inputPassword].Value(),
		}
		if creds.Email == "" || creds.Password == "" {
			m.errMsg = "E-mail и пароль обязательны"
			return m, nil
		}
		if m.register {
			creds.Name = strings.TrimSpace(m.inputs[inputName].Value())
			if creds.Name == "" {
				m.errMsg = "Имя обязательно"
				return m, nil
			}
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSignIn(creds, m.register)
	}

	return m, m.updateFocused(msg)
}

func (m *SignInModel) updateFederated(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.provider = ""
		m.federated = models.FederatedSignIn{}
		m.status = ""
		m.errMsg = ""
		m.submitting = false
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.submitting || m.federated.URL == "" {
			return m, nil
		}
		code := strings.TrimSpace(m.codeInput.Value())
		if code == "" {
			m.errMsg = "Вставьте код авторизации"
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdCompleteFederated(m.provider, code, m.federated.State)
	}

	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(keyMsg)
	return m, cmd
}

// View implements [tea.Model]. Renders the sign-in form as a two-column table,
// or the code entry form while a federated sign-in is in progress.
func (m *SignInModel) View() string {
	if m.provider != "" {
		return m.viewFederated()
	}

	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("E-mail  │ [")
	b.WriteString(m.inputs[inputEmail].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[inputPassword].View())
	b.WriteString("]\n")
	if m.register {
		b.WriteString("Имя     │ [")
		b.WriteString(m.inputs[inputName].View())
		b.WriteString("]\n")
	}

	action := "Войти"
	if m.register {
		action = "Зарегистрироваться"
	}
	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "ВХОД"
	toggle := "ctrl+r: регистрация"
	if m.register {
		title = "РЕГИСТРАЦИЯ"
		toggle = "ctrl+r: вход"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: след. поле │ enter: подтвердить │ "+toggle+" │ ctrl+g: Google │ ctrl+b: GitHub │ f1: о программе")
}

func (m *SignInModel) viewFederated() string {
	var b strings.Builder
	b.WriteString("Провайдер: ")
	b.WriteString(string(m.provider))
	b.WriteString("\n\n")

	if m.federated.URL == "" {
		b.WriteString("Получение ссылки...\n")
	} else {
		b.WriteString("Откройте ссылку в браузере:\n")
		b.WriteString(m.federated.URL)
		b.WriteString("\n\nКод     │ [")
		b.WriteString(m.codeInput.View())
		b.WriteString("]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВХОД ЧЕРЕЗ "+strings.ToUpper(string(m.provider)), strings.TrimRight(b.String(), "\n"),
		"esc: назад │ enter: подтвердить")
}

func (m *SignInModel) startFederated(provider models.FederatedProvider) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.provider = provider
	m.federated = models.FederatedSignIn{}
	m.status = ""
	m.errMsg = ""
	m.submitting = true
	return m, m.cmdFederatedURL(provider)
}

func (m *SignInModel) cmdSignIn(creds models.Credentials, register bool) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		var (
			session models.Session
			err     error
		)
		if register {
			session, err = auth.Register(ctx, creds)
		} else {
			session, err = auth.Login(ctx, creds)
		}
		return SignInResult{Session: session, Err: err}
	}
}

func (m *SignInModel) cmdFederatedURL(provider models.FederatedProvider) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		signIn, err := auth.FederatedSignInURL(ctx, provider)
		return federatedURLMsg{provider: provider, signIn: signIn, err: err}
	}
}

func (m *SignInModel) cmdCompleteFederated(provider models.FederatedProvider, code, state string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.CompleteFederatedSignIn(ctx, provider, code, state)
		return SignInResult{Session: session, Err: err}
	}
}

func (m *SignInModel) visibleInputs() int {
	if m.register {
		return len(m.inputs)
	}
	return inputName
}

func (m *SignInModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *SignInModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.provider != "" {
		m.codeInput, cmd = m.codeInput.Update(msg)
		return cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}
