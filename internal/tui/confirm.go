package tui

type confirmModel struct {
	message string
	hard    bool
}

func (m confirmModel) View() string {
	content := "Переместить в корзину \"" + m.message + "\"?\n\n"
	if m.hard {
		content = "Удалить навсегда \"" + m.message + "\"?\nЭто действие нельзя отменить.\n\n"
	}
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
