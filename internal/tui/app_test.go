package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/vault-notes/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPage struct {
	name string
	got  []tea.Msg
}

func (p *stubPage) Init() tea.Cmd { return nil }

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *stubPage) View() string { return p.name }

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	a := &stubPage{name: "a"}
	b := &stubPage{name: "b"}
	root := NewRootModel(map[string]tea.Model{"a": a, "b": b}, "a", models.NewAppBuildInfo("1.0.0", "", ""))

	updated, cmd := root.Update(NavigateTo{Page: "b", Payload: reloadNotesMsg{}})
	root = updated.(RootModel)
	assert.Equal(t, "b", root.View())
	require.NotNil(t, cmd)

	updated, _ = root.Update(cmd())
	root = updated.(RootModel)
	require.Len(t, b.got, 1)
	assert.IsType(t, reloadNotesMsg{}, b.got[0])

	// неизвестная страница игнорируется
	updated, _ = root.Update(NavigateTo{Page: "missing"})
	assert.Equal(t, "b", updated.View())
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{"a": &stubPage{name: "a"}}, "a", models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc"))

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyF1})
	view := updated.View()
	assert.Contains(t, view, "ИНФОРМАЦИЯ О ПРОГРАММЕ")
	assert.Contains(t, view, "1.2.3")

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "a", updated.View())
}

func TestRootModel_SignInResult(t *testing.T) {
	page := &stubPage{name: "signin"}
	root := NewRootModel(map[string]tea.Model{pageSignIn: page}, pageSignIn, models.AppBuildInfo{})

	// ошибка входа передаётся странице
	updated, cmd := root.Update(SignInResult{Err: errors.New("bad")})
	assert.Nil(t, cmd)
	require.Len(t, page.got, 1)

	session := models.Session{Token: "tok", User: models.User{ID: "u1"}}
	updated, cmd = updated.Update(SignInResult{Session: session})
	require.NotNil(t, cmd)
	assert.Equal(t, session, updated.(RootModel).session)
}

func TestRootModel_LogoutAndQuit(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{"a": &stubPage{name: "a"}}, "a", models.AppBuildInfo{})

	updated, cmd := root.Update(logoutMsg{})
	require.NotNil(t, cmd)
	assert.True(t, updated.(RootModel).logout)

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestSignInModel_Validation(t *testing.T) {
	m := NewSignInModel(context.Background(), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "E-mail и пароль обязательны", m.errMsg)

	m.inputs[inputEmail].SetValue("a@b.c")
	m.inputs[inputPassword].SetValue("secret")

	// в режиме регистрации требуется имя
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.True(t, m.register)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Имя обязательно", m.errMsg)
	assert.Contains(t, m.View(), "РЕГИСТРАЦИЯ")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, m.register)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, m.submitting)
}

func TestSignInModel_TabSkipsHiddenName(t *testing.T) {
	m := NewSignInModel(context.Background(), nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, inputPassword, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, inputEmail, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, inputName, m.focus)
}
