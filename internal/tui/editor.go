// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vault-notes/internal/service"
	"github.com/MKhiriev/vault-notes/internal/utils"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const editorRefreshInterval = 200 * time.Millisecond

const (
	focusTitle = iota
	focusContent
	focusAttachments
	focusCount
)

// EditorModel is the note editor page. Every change of the title or the
// content is handed to the autosave controller of the current
// [service.EditorSession]; the status line and the attachments pane poll the
// session on a short tick. Leaving the page closes the session.
type EditorModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  *service.EditorSession

	readOnly bool
	title    textinput.Model
	content  textarea.Model
	focus    int
	attIdx   int
	tickGen  int

	askingPath bool
	pathInput  textinput.Model

	status  string
	overlay *errorOverlayModel
}

func NewEditorModel(ctx context.Context, services *service.ClientServices) *EditorModel {
	title := textinput.New()
	title.Placeholder = "Заголовок"
	title.CharLimit = 200
	title.Width = 60

	content := textarea.New()
	content.Placeholder = "Текст заметки"
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetWidth(70)
	content.SetHeight(12)

	path := textinput.New()
	path.Placeholder = "~/docs/report.pdf; ~/photo.png"
	path.CharLimit = 4096
	path.Width = 60

	return &EditorModel{
		ctx:       ctx,
		services:  services,
		title:     title,
		content:   content,
		pathInput: path,
	}
}

func (m *EditorModel) Init() tea.Cmd {
	return nil
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openEditorMsg:
		return m, m.open(msg.note, msg.readOnly)
	case editorTickMsg:
		if m.session == nil || msg.gen != m.tickGen {
			return m, nil
		}
		return m, cmdEditorTick(m.tickGen)
	case savedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		}
		return m, nil
	case uploadsStartedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = fmt.Sprintf("Загружается файлов: %d", len(msg.tasks))
		return m, cmdClearStatus()
	case attachmentsMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = msg.status
		if m.session != nil && m.attIdx >= len(m.session.Uploads.Attachments()) {
			m.attIdx = max(len(m.session.Uploads.Attachments())-1, 0)
		}
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = msg.what + " скопирована в буфер обмена"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.session == nil {
			return m, nil
		}
		return m.updateKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *EditorModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.askingPath {
		switch {
		case key.Matches(msg, keys.esc):
			m.askingPath = false
			m.pathInput.Blur()
			return m, nil
		case key.Matches(msg, keys.enter):
			paths := splitPaths(m.pathInput.Value())
			if len(paths) == 0 {
				return m, nil
			}
			m.askingPath = false
			m.pathInput.Blur()
			m.pathInput.SetValue("")
			return m, m.cmdUpload(paths)
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.close()
		return m, func() tea.Msg { return NavigateTo{Page: pageNotes, Payload: reloadNotesMsg{}} }
	case key.Matches(msg, keys.save):
		if !m.readOnly {
			return m, m.cmdFlush()
		}
		return m, nil
	case key.Matches(msg, keys.upload):
		if !m.readOnly {
			m.askingPath = true
			return m, m.pathInput.Focus()
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, keys.backtab):
		return m, m.setFocus((m.focus - 1 + focusCount) % focusCount)
	}

	if m.focus == focusAttachments {
		return m.updateAttachments(msg)
	}
	if m.readOnly {
		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m *EditorModel) updateAttachments(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	attachments := m.session.Uploads.Attachments()
	if len(attachments) == 0 {
		return m, nil
	}
	m.attIdx = min(m.attIdx, len(attachments)-1)
	selected := attachments[m.attIdx]

	switch {
	case key.Matches(msg, keys.up):
		if m.attIdx > 0 {
			m.attIdx--
		}
	case key.Matches(msg, keys.down):
		if m.attIdx < len(attachments)-1 {
			m.attIdx++
		}
	case key.Matches(msg, keys.copy, keys.enter):
		return m, m.cmdCopyDownloadURL(selected.ID)
	case key.Matches(msg, keys.delete):
		if !m.readOnly {
			return m, m.cmdDeleteAttachment(selected.ID)
		}
	}
	return m, nil
}

// updateFocused forwards msg to the focused input and reports changed
// values to the autosave controller.
func (m *EditorModel) updateFocused(msg tea.Msg) tea.Cmd {
	if m.session == nil {
		return nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		before := m.title.Value()
		m.title, cmd = m.title.Update(msg)
		if after := m.title.Value(); after != before && !m.readOnly {
			m.session.Autosave.OnFieldChange(models.FieldTitle, after)
		}
	case focusContent:
		before := m.content.Value()
		m.content, cmd = m.content.Update(msg)
		if after := m.content.Value(); after != before && !m.readOnly {
			m.session.Autosave.OnFieldChange(models.FieldContent, utils.TextToHTML(after))
		}
	}
	return cmd
}

func (m *EditorModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.session == nil {
		return renderPage("ЗАМЕТКА", "", "esc: назад")
	}

	var b strings.Builder
	b.WriteString("Заголовок │ [")
	b.WriteString(m.title.View())
	b.WriteString("]\n\n")
	b.WriteString(m.content.View())
	b.WriteString("\n\n")

	status, err := m.session.Autosave.Status()
	if line := saveStatusText(status, err, m.session.Autosave.Dirty()); line != "" {
		if status == models.SaveStatusError {
			line = errorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\nВложения:\n")
	attachments := m.session.Uploads.Attachments()
	if len(attachments) == 0 {
		b.WriteString("  нет\n")
	}
	for i, a := range attachments {
		line := attachmentLine(a)
		if m.focus == focusAttachments && i == m.attIdx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	for _, task := range m.session.Uploads.Tasks() {
		b.WriteString("  ")
		b.WriteString(uploadTaskLine(task))
		b.WriteString("\n")
	}

	if m.askingPath {
		b.WriteString("\nФайлы     │ [")
		b.WriteString(m.pathInput.View())
		b.WriteString("]\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(m.pageTitle(), strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *EditorModel) pageTitle() string {
	switch {
	case m.readOnly:
		return "ЗАМЕТКА (только чтение)"
	case m.session.Autosave.NoteID() == "":
		return "НОВАЯ ЗАМЕТКА"
	default:
		return "ЗАМЕТКА"
	}
}

func (m *EditorModel) hotKeys() string {
	if m.askingPath {
		return "enter: загрузить (пути через ;) │ esc: отмена"
	}
	hints := []string{"esc: назад", "tab: след. поле"}
	if !m.readOnly {
		hints = append(hints, "ctrl+s: сохранить", "ctrl+u: прикрепить файлы")
	}
	if m.focus == focusAttachments {
		hints = append(hints, "c: ссылка на файл")
		if !m.readOnly {
			hints = append(hints, "d: удалить файл")
		}
	}
	return strings.Join(hints, " │ ")
}

// open starts a new editing session for note (nil for a new note) and
// closes the previous one.
func (m *EditorModel) open(note *models.Note, readOnly bool) tea.Cmd {
	m.close()

	m.session = m.services.NewEditorSession(m.ctx, note)
	m.tickGen++
	m.readOnly = readOnly
	m.attIdx = 0
	m.status = ""
	m.overlay = nil
	m.askingPath = false

	m.title.SetValue("")
	m.content.SetValue("")
	if note != nil {
		m.title.SetValue(note.Title)
		m.content.SetValue(utils.HTMLToText(note.Content))
	}

	cmds := []tea.Cmd{m.setFocus(focusTitle), cmdEditorTick(m.tickGen)}
	if note != nil {
		cmds = append(cmds, m.cmdRefreshAttachments())
	}
	return tea.Batch(cmds...)
}

// close ends the current editing session. Safe to call without one.
func (m *EditorModel) close() {
	if m.session == nil {
		return
	}
	m.session.Close()
	m.session = nil
}

func (m *EditorModel) setFocus(i int) tea.Cmd {
	m.focus = i
	m.title.Blur()
	m.content.Blur()

	switch i {
	case focusTitle:
		return m.title.Focus()
	case focusContent:
		return m.content.Focus()
	}
	return nil
}

func (m *EditorModel) cmdFlush() tea.Cmd {
	ctx := m.ctx
	autosave := m.session.Autosave

	return func() tea.Msg {
		return savedMsg{err: autosave.Flush(ctx)}
	}
}

func (m *EditorModel) cmdUpload(paths []string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		files, err := service.NewLocalFiles(paths)
		if err != nil {
			return uploadsStartedMsg{err: err}
		}

		tasks, err := session.AttachFiles(ctx, files)
		return uploadsStartedMsg{tasks: tasks, err: err}
	}
}

func (m *EditorModel) cmdRefreshAttachments() tea.Cmd {
	ctx := m.ctx
	uploads := m.session.Uploads

	return func() tea.Msg {
		return attachmentsMsg{err: uploads.RefreshAttachments(ctx)}
	}
}

func (m *EditorModel) cmdDeleteAttachment(id string) tea.Cmd {
	ctx := m.ctx
	uploads := m.session.Uploads

	return func() tea.Msg {
		if err := uploads.DeleteAttachment(ctx, id); err != nil {
			return attachmentsMsg{err: err}
		}
		return attachmentsMsg{status: "Файл удалён"}
	}
}

func (m *EditorModel) cmdCopyDownloadURL(id string) tea.Cmd {
	ctx := m.ctx
	uploads := m.session.Uploads

	return func() tea.Msg {
		url, err := uploads.DownloadURL(ctx, id)
		if err != nil {
			return copiedMsg{err: err}
		}
		return cmdCopyToClipboard(url, "Ссылка на файл")()
	}
}

func cmdEditorTick(gen int) tea.Cmd {
	return tea.Tick(editorRefreshInterval, func(time.Time) tea.Msg {
		return editorTickMsg{gen: gen}
	})
}

func splitPaths(v string) []string {
	var paths []string
	for _, p := range strings.Split(v, ";") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
