package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vault-notes/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: выход"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// progressBar renders percent (0..100) as a fixed-width bar.
func progressBar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func scopeTitle(scope models.ListScope) string {
	switch scope {
	case models.ScopeOwn:
		return "Мои заметки"
	case models.ScopeShared:
		return "Доступные мне"
	case models.ScopeTrash:
		return "Корзина"
	default:
		return string(scope)
	}
}

func saveStatusText(status models.SaveStatus, err error, dirty bool) string {
	switch status {
	case models.SaveStatusSaving:
		return "Сохранение..."
	case models.SaveStatusSaved:
		return "Сохранено"
	case models.SaveStatusError:
		if err != nil {
			return "Ошибка сохранения: " + humanizeServerUnavailableError(err)
		}
		return "Ошибка сохранения"
	default:
		if dirty {
			return "Есть несохранённые изменения"
		}
		return ""
	}
}

func uploadTaskLine(t models.UploadTask) string {
	name := fitText(t.FileName, 28)
	switch t.Status {
	case models.UploadStatusSuccess:
		return fmt.Sprintf("%-28s %s готово", name, progressBar(100, 20))
	case models.UploadStatusError:
		return fmt.Sprintf("%-28s ошибка: %s", name, t.Err)
	default:
		return fmt.Sprintf("%-28s %s %3d%%", name, progressBar(t.Progress, 20), t.Progress)
	}
}

func attachmentLine(a models.Attachment) string {
	return fmt.Sprintf("%-28s %10s  %s", fitText(a.Filename, 28), humanize.IBytes(uint64(max(a.Size, 0))), valueOrDash(a.MimeType))
}

func cmdCopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{what: what, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
