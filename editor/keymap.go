package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals; the toggle shortcuts stick to
// plain ctrl/alt chords for that reason.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	Home, End                                 key.Binding

	Backspace key.Binding
	Enter     key.Binding

	Bold, Italic, Strikethrough, Footnote key.Binding
	Link                                  key.Binding
	BulletList, OrderedList, TaskList     key.Binding
	Quote, CodeBlock, Table               key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Bold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:        key.NewBinding(key.WithKeys("ctrl+underscore"), key.WithHelp("ctrl+_", "italic")),
		Strikethrough: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "strikethrough")),
		Footnote:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "footnote")),
		Link:          key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "link")),

		BulletList:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "bullet list")),
		OrderedList: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "ordered list")),
		TaskList:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "task list")),

		Quote:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "blockquote")),
		CodeBlock: key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code block")),
		Table:     key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "table")),
	}
}
