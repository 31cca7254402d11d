package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markedit/commands"
	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.moveHorizontal(-1, false)
	case key.Matches(msg, km.Right):
		m.moveHorizontal(1, false)
	case key.Matches(msg, km.Up):
		m.moveVertical(-1, false)
	case key.Matches(msg, km.Down):
		m.moveVertical(1, false)

	case key.Matches(msg, km.ShiftLeft):
		m.moveHorizontal(-1, true)
	case key.Matches(msg, km.ShiftRight):
		m.moveHorizontal(1, true)
	case key.Matches(msg, km.ShiftUp):
		m.moveVertical(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveVertical(1, true)

	case key.Matches(msg, km.Home):
		m.setCursor(m.doc.LineAt(m.head).From)
	case key.Matches(msg, km.End):
		m.setCursor(m.doc.LineAt(m.head).To)

	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			if !m.run(commands.InsertNewlineContinueMarkup) {
				m.insertText("\n")
			}
		}
	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			if !m.run(commands.DeleteMarkupBackward) {
				m.deleteBackward()
			}
		}

	case key.Matches(msg, km.Bold):
		m.toggle(commands.ToggleStrong)
	case key.Matches(msg, km.Italic):
		m.toggle(commands.ToggleEmphasis)
	case key.Matches(msg, km.Strikethrough):
		m.toggle(commands.ToggleStrikethrough)
	case key.Matches(msg, km.Footnote):
		m.toggle(commands.ToggleFootnote)
	case key.Matches(msg, km.Link):
		m.toggle(commands.ToggleLink)

	case key.Matches(msg, km.BulletList):
		m.toggle(commands.ToggleListUnordered)
	case key.Matches(msg, km.OrderedList):
		m.toggle(commands.ToggleListOrdered)
	case key.Matches(msg, km.TaskList):
		m.toggle(commands.ToggleListTask)

	case key.Matches(msg, km.Quote):
		m.toggle(commands.ToggleBlockQuote)
	case key.Matches(msg, km.CodeBlock):
		m.toggle(commands.InsertCodeBlock)
	case key.Matches(msg, km.Table):
		m.toggle(commands.InsertTable)

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.insertText("\t")
			}
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.insertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// run offers the state to a structural command. A false return means the
// command did not apply and the caller should fall back to plain editing.
func (m *Model) run(cmd commands.Command) bool {
	tx, ok := cmd(m.State())
	if !ok {
		return false
	}
	m.applyTransaction(tx)
	return true
}

// toggle runs a command that handles every selection itself (the toggles).
func (m *Model) toggle(cmd commands.Command) {
	if m.cfg.ReadOnly {
		return
	}
	m.run(cmd)
}

func (m *Model) insertText(s string) {
	r := m.sel.Main()
	m.applyTransaction(edit.Transaction{
		Changes:        []edit.Change{{From: r.From, To: r.To, Insert: s}},
		Selection:      edit.SingleCursor(r.From + len(s)),
		ScrollIntoView: true,
		Event:          edit.EventInput,
	})
}

func (m *Model) deleteBackward() {
	r := m.sel.Main()
	from, to := r.From, r.To
	if r.Empty() {
		if from == 0 {
			return
		}
		line := m.doc.LineAt(from)
		if from == line.From {
			from-- // the newline separating this line from the previous one
		} else {
			from = line.From + grapheme.PrevBoundary(line.Text, from-line.From)
		}
	}
	m.applyTransaction(edit.Transaction{
		Changes:        []edit.Change{{From: from, To: to}},
		Selection:      edit.SingleCursor(from),
		ScrollIntoView: true,
		Event:          edit.EventDelete,
	})
}

// moveHorizontal steps the head by one grapheme cluster so combining
// sequences and emoji act as a single position.
func (m *Model) moveHorizontal(dir int, extend bool) {
	pos := m.head
	if !extend && !m.sel.Main().Empty() {
		// Collapse to the matching edge first.
		r := m.sel.Main()
		if dir < 0 {
			m.setCursor(r.From)
		} else {
			m.setCursor(r.To)
		}
		return
	}
	line := m.doc.LineAt(pos)
	if dir < 0 {
		if pos == line.From {
			if pos > 0 {
				pos--
			}
		} else {
			pos = line.From + grapheme.PrevBoundary(line.Text, pos-line.From)
		}
	}
	if dir > 0 {
		if pos == line.To {
			if pos < m.doc.Len() {
				pos++
			}
		} else {
			pos = line.From + grapheme.NextBoundary(line.Text, pos-line.From)
		}
	}
	m.moveHead(pos, extend)
}

func (m *Model) moveVertical(dir int, extend bool) {
	line := m.doc.LineAt(m.head)
	target := line.Number + dir
	if target < 0 || target >= m.doc.Lines() {
		// Past the edge rows the cursor snaps to the document boundary.
		if dir < 0 {
			m.moveHead(0, extend)
		} else {
			m.moveHead(m.doc.Len(), extend)
		}
		return
	}
	col := grapheme.Count(m.doc.Slice(line.From, m.head))
	m.moveHead(posAtColumn(m.doc.Line(target), col), extend)
}

// posAtColumn returns the byte offset of cluster column col on line, clamped
// to the line end.
func posAtColumn(line edit.Line, col int) int {
	pos := line.From
	for i := 0; i < col && pos < line.To; i++ {
		pos = line.From + grapheme.NextBoundary(line.Text, pos-line.From)
	}
	return pos
}

func (m *Model) setCursor(pos int) {
	m.anchor, m.head = pos, pos
	m.sel = edit.SingleCursor(pos)
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) moveHead(pos int, extend bool) {
	if !extend {
		m.setCursor(pos)
		return
	}
	m.head = pos
	from, to := m.anchor, m.head
	if from > to {
		from, to = to, from
	}
	m.sel = edit.Selection{{From: from, To: to}}
	m.rebuildContent()
	m.followCursor()
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
