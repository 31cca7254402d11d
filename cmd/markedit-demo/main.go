package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markedit/editor"
)

const sample = `# markedit demo

Markdown editing with live markup continuation.

1. Press Enter at the end of this item
2. The list keeps numbering itself
3. Press Enter on an empty item to drop a level

* [ ] Task items continue unchecked
* [x] Backspace on a marker keeps alignment

> Blockquotes continue too.

Ctrl+B bold, Ctrl+K link, Ctrl+L bullet list, Ctrl+Q quote.
Ctrl+C quits.
`

type model struct {
	editor editor.Model
}

func newModel() model {
	cfg := editor.Config{
		Text:         sample,
		ShowLineNums: true,
	}
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
