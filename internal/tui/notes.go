package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vault-notes/internal/service"
	"github.com/MKhiriev/vault-notes/internal/utils"
	"github.com/MKhiriev/vault-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var scopes = []models.ListScope{models.ScopeOwn, models.ScopeShared, models.ScopeTrash}

const previewWidth = 60

// NotesModel is the note list page: scope tabs, search, paging and the
// per-note actions of the active scope.
type NotesModel struct {
	ctx   context.Context
	notes service.ClientNoteService
	user  models.User

	scopeIdx int
	page     int
	search   string
	items    []models.Note
	total    int
	pages    int
	idx      int

	loading bool
	spinner spinner.Model
	status  string

	searching   bool
	searchInput textinput.Model

	confirm *confirmModel
	pending models.Note
	overlay *errorOverlayModel

	share *shareDialog
}

type shareDialog struct {
	note       models.Note
	recipient  textinput.Model
	permission models.Permission
	idx        int
	submitting bool
}

func NewNotesModel(ctx context.Context, notes service.ClientNoteService, user models.User) *NotesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "поиск"
	search.CharLimit = 200
	search.Width = 40

	return &NotesModel{
		ctx:         ctx,
		notes:       notes,
		user:        user,
		page:        1,
		pages:       1,
		loading:     true,
		spinner:     s,
		searchInput: search,
	}
}

func (m *NotesModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m *NotesModel) scope() models.ListScope {
	return scopes[m.scopeIdx]
}

func (m *NotesModel) current() (models.Note, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m *NotesModel) actions() models.NoteActions {
	note, ok := m.current()
	if !ok {
		return models.NoteActions{}
	}
	return models.ActionsFor(m.scope()).ForNote(note)
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case reloadNotesMsg:
		return m, m.Init()
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.items = msg.page.Notes
		m.total = msg.page.Total
		m.pages = msg.page.Pages()
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil
	case noteActionMsg:
		if m.share != nil {
			m.share.submitting = false
		}
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.share = nil
		m.status = msg.status
		if msg.removedID != "" {
			m.remove(msg.removedID)
		}
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())
	case noteLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		note := msg.note
		return m, func() tea.Msg {
			return NavigateTo{Page: pageEditor, Payload: openEditorMsg{note: &note, readOnly: msg.readOnly}}
		}
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *NotesModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			hard := m.confirm.hard
			m.confirm = nil
			return m, m.cmdDelete(m.pending, hard)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.share != nil {
		return m.updateShare(msg)
	}

	if m.searching {
		switch {
		case key.Matches(msg, keys.enter):
			m.searching = false
			m.searchInput.Blur()
			m.search = strings.TrimSpace(m.searchInput.Value())
			m.page, m.idx = 1, 0
			return m, m.Init()
		case key.Matches(msg, keys.esc):
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue(m.search)
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	actions := m.actions()
	note, hasNote := m.current()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		return m, func() tea.Msg { return logoutMsg{} }
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.tab):
		m.switchScope(1)
		return m, m.Init()
	case key.Matches(msg, keys.backtab):
		m.switchScope(-1)
		return m, m.Init()
	case key.Matches(msg, keys.prevPage):
		if m.page > 1 {
			m.page--
			m.idx = 0
			return m, m.Init()
		}
	case key.Matches(msg, keys.nextPage):
		if m.page < m.pages {
			m.page++
			m.idx = 0
			return m, m.Init()
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		m.searchInput.SetValue(m.search)
		return m, m.searchInput.Focus()
	case key.Matches(msg, keys.esc):
		if m.search != "" {
			m.search = ""
			m.searchInput.SetValue("")
			m.page, m.idx = 1, 0
			return m, m.Init()
		}
	case key.Matches(msg, keys.newItem):
		if m.scope() == models.ScopeOwn {
			return m, func() tea.Msg { return NavigateTo{Page: pageEditor, Payload: openEditorMsg{}} }
		}
	case key.Matches(msg, keys.profile):
		return m, func() tea.Msg { return NavigateTo{Page: pageProfile, Payload: openProfileMsg{}} }
	case key.Matches(msg, keys.enter):
		if hasNote && actions.Open {
			m.loading = true
			return m, tea.Batch(m.cmdGet(note.ID, !actions.Edit), m.spinner.Tick)
		}
	case key.Matches(msg, keys.delete):
		if hasNote && (actions.Delete || actions.HardDelete) {
			m.pending = note
			m.confirm = &confirmModel{message: noteTitle(note), hard: actions.HardDelete}
		}
	case key.Matches(msg, keys.restore):
		if hasNote && actions.Restore {
			return m, m.cmdRestore(note)
		}
	case key.Matches(msg, keys.share):
		if hasNote && actions.Share {
			m.openShare(note)
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m *NotesModel) updateShare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.share
	switch {
	case key.Matches(msg, keys.esc):
		m.share = nil
		return m, nil
	case key.Matches(msg, keys.permission):
		if d.permission == models.PermissionRead {
			d.permission = models.PermissionWrite
		} else {
			d.permission = models.PermissionRead
		}
		return m, nil
	case msg.Type == tea.KeyUp:
		if d.idx > 0 {
			d.idx--
		}
		return m, nil
	case msg.Type == tea.KeyDown:
		if d.idx < len(d.note.Shares)-1 {
			d.idx++
		}
		return m, nil
	case key.Matches(msg, keys.revoke):
		if d.submitting || d.idx >= len(d.note.Shares) {
			return m, nil
		}
		d.submitting = true
		return m, m.cmdRevoke(d.note, d.note.Shares[d.idx])
	case key.Matches(msg, keys.enter):
		if d.submitting {
			return m, nil
		}
		d.submitting = true
		return m, m.cmdShare(d.note, d.recipient.Value(), d.permission)
	}

	var cmd tea.Cmd
	d.recipient, cmd = d.recipient.Update(msg)
	return m, cmd
}

func (m *NotesModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}
	if m.share != nil {
		return m.viewShare()
	}

	var b strings.Builder
	for i, scope := range scopes {
		title := scopeTitle(scope)
		if i == m.scopeIdx {
			title = tabActiveStyle.Render(title)
		}
		if i > 0 {
			b.WriteString("  │  ")
		}
		b.WriteString(title)
	}
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Поиск: [")
		b.WriteString(m.searchInput.View())
		b.WriteString("]\n")
	} else if m.search != "" {
		b.WriteString("Поиск: \"" + m.search + "\"\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	case len(m.items) == 0:
		b.WriteString("Нет заметок\n")
	default:
		for i, note := range m.items {
			line := fmt.Sprintf("%-32s %s", fitText(noteTitle(note), 32), noteMeta(note, m.scope()))
			if i == m.idx {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
			if preview := utils.Preview(note.Content, previewWidth); preview != "" {
				b.WriteString("    ")
				b.WriteString(helpStyle.Render(preview))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString(fmt.Sprintf("\nСтраница %d из %d │ всего: %d", m.page, m.pages, m.total))
	if m.loading && len(m.items) > 0 {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	title := "VAULT"
	if m.user.Email != "" {
		title += " │ " + m.user.Email
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *NotesModel) hotKeys() string {
	actions := m.actions()
	hints := []string{"tab: раздел", "←/→: страница", "/: поиск"}
	if m.scope() == models.ScopeOwn {
		hints = append(hints, "n: новая")
	}
	if actions.Open {
		hints = append(hints, "enter: открыть")
	}
	if actions.Delete {
		hints = append(hints, "d: в корзину")
	}
	if actions.HardDelete {
		hints = append(hints, "d: удалить")
	}
	if actions.Restore {
		hints = append(hints, "r: восстановить")
	}
	if actions.Share {
		hints = append(hints, "s: поделиться")
	}
	hints = append(hints, "p: профиль", "L: выйти из аккаунта", "q: выход")
	return strings.Join(hints, " │ ")
}

func (m *NotesModel) viewShare() string {
	d := m.share
	var b strings.Builder
	b.WriteString("Заметка: " + noteTitle(d.note) + "\n\n")
	b.WriteString("Получатель │ [")
	b.WriteString(d.recipient.View())
	b.WriteString("]\n")
	b.WriteString("Доступ     │ " + permissionTitle(d.permission) + "\n")

	if len(d.note.Shares) > 0 {
		b.WriteString("\nУже есть доступ:\n")
		for i, share := range d.note.Shares {
			who := share.Email
			if who == "" {
				who = share.UserID
			}
			line := fmt.Sprintf("%-32s %s", fitText(who, 32), permissionTitle(share.Permission))
			if i == d.idx {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}
	if d.submitting {
		b.WriteString("\nОтправка...\n")
	}

	return renderPage("ПОДЕЛИТЬСЯ", strings.TrimRight(b.String(), "\n"),
		"enter: открыть доступ │ ctrl+p: чтение/запись │ ↑/↓ + ctrl+r: отозвать │ esc: назад")
}

func (m *NotesModel) switchScope(step int) {
	m.scopeIdx = (m.scopeIdx + step + len(scopes)) % len(scopes)
	m.page, m.idx = 1, 0
	m.items = nil
	m.total = 0
}

func (m *NotesModel) openShare(note models.Note) {
	recipient := textinput.New()
	recipient.Placeholder = "e-mail или id пользователя"
	recipient.CharLimit = 254
	recipient.Width = 40
	recipient.Focus()

	m.share = &shareDialog{
		note:       note,
		recipient:  recipient,
		permission: models.PermissionRead,
	}
}

func (m *NotesModel) remove(id string) {
	for i, note := range m.items {
		if note.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.total = max(m.total-1, 0)
			break
		}
	}
	if m.idx >= len(m.items) {
		m.idx = max(len(m.items)-1, 0)
	}
}

func (m *NotesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	filter := models.ListFilter{Page: m.page, Search: m.search, Scope: m.scope()}

	return func() tea.Msg {
		page, err := notes.List(ctx, filter)
		return notesLoadedMsg{page: page, err: err}
	}
}

func (m *NotesModel) cmdGet(id string, readOnly bool) tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		note, err := notes.Get(ctx, id)
		return noteLoadedMsg{note: note, readOnly: readOnly, err: err}
	}
}

func (m *NotesModel) cmdDelete(note models.Note, hard bool) tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		if err := notes.Delete(ctx, note.ID, hard); err != nil {
			return noteActionMsg{err: err}
		}
		status := "Заметка перемещена в корзину"
		if hard {
			status = "Заметка удалена"
		}
		return noteActionMsg{status: status, removedID: note.ID}
	}
}

func (m *NotesModel) cmdRestore(note models.Note) tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		if err := notes.Restore(ctx, note.ID); err != nil {
			return noteActionMsg{err: err}
		}
		return noteActionMsg{status: "Заметка восстановлена", removedID: note.ID}
	}
}

func (m *NotesModel) cmdShare(note models.Note, recipient string, permission models.Permission) tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		if err := notes.Share(ctx, note.ID, recipient, permission); err != nil {
			return noteActionMsg{err: err}
		}
		return noteActionMsg{status: "Доступ открыт: " + strings.TrimSpace(recipient)}
	}
}

func (m *NotesModel) cmdRevoke(note models.Note, share models.Share) tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		if err := notes.RevokeShare(ctx, note.ID, share.UserID); err != nil {
			return noteActionMsg{err: err}
		}
		return noteActionMsg{status: "Доступ отозван"}
	}
}

func noteTitle(note models.Note) string {
	if strings.TrimSpace(note.Title) == "" {
		return "Без названия"
	}
	return note.Title
}

func noteMeta(note models.Note, scope models.ListScope) string {
	switch scope {
	case models.ScopeShared:
		author := note.AuthorID
		if note.Author != nil {
			author = valueOrDash(note.Author.Name)
		}
		return fmt.Sprintf("%s │ %s", author, permissionTitle(note.Permission))
	case models.ScopeTrash:
		if note.DeletedAt != nil {
			return "удалена " + note.DeletedAt.Local().Format("02.01.2006 15:04")
		}
	}
	return note.UpdatedAt.Local().Format("02.01.2006 15:04")
}

func permissionTitle(p models.Permission) string {
	switch p {
	case models.PermissionWrite:
		return "чтение и запись"
	case models.PermissionRead:
		return "только чтение"
	default:
		return "-"
	}
}
