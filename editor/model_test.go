package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markedit/edit"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func runes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_DefaultsZeroConfig(t *testing.T) {
	m := New(Config{Text: "hello"})

	if got, want := m.cfg.IndentUnit, "    "; got != want {
		t.Fatalf("indent unit = %q, want %q", got, want)
	}
	if len(m.cfg.KeyMap.Enter.Keys()) == 0 {
		t.Fatalf("keymap should be defaulted from zero value")
	}
	if got, want := m.Text(), "hello"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := m.Selection().Main(), edit.Cursor(0); got != want {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestUpdate_RunesInsertAtCursor(t *testing.T) {
	m := New(Config{Text: "ac"})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, runes("b"))

	if got, want := m.Text(), "abc"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := m.Selection().Main(), edit.Cursor(2); got != want {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestUpdate_EnterContinuesListMarker(t *testing.T) {
	m := New(Config{Text: "1. item"})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyEnter})

	if got, want := m.Text(), "1. item\n2. "; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := m.Selection().Main(), edit.Cursor(11); got != want {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestUpdate_EnterFallsBackToPlainNewline(t *testing.T) {
	m := New(Config{Text: "plain"})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyEnter})

	if got, want := m.Text(), "plain\n"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestUpdate_BackspaceDeletesListMarker(t *testing.T) {
	m := New(Config{Text: "* a"})
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)

	if got, want := m.Text(), "a"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := m.Selection().Main(), edit.Cursor(0); got != want {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestUpdate_BackspaceFallsBackToClusterDelete(t *testing.T) {
	m := New(Config{Text: "héllo"})
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)

	if got, want := m.Text(), "hllo"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := m.Selection().Main(), edit.Cursor(1); got != want {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestUpdate_ArrowStepsGraphemeCluster(t *testing.T) {
	// e + combining acute is one cluster of three bytes.
	m := New(Config{Text: "éx"})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if got, want := m.Selection().Main(), edit.Cursor(3); got != want {
		t.Fatalf("selection after right = %v, want %v", got, want)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Text(), "x"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := m.Selection().Main(), edit.Cursor(0); got != want {
		t.Fatalf("selection after backspace = %v, want %v", got, want)
	}
}

func TestUpdate_ShiftRightExtendsSelection(t *testing.T) {
	m := New(Config{Text: "bold"})
	shift := tea.KeyMsg{Type: tea.KeyShiftRight}
	m = press(t, m, shift, shift, shift, shift)

	if got, want := m.Selection().Main(), (edit.Range{From: 0, To: 4}); got != want {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestUpdate_CtrlBWrapsSelection(t *testing.T) {
	m := New(Config{Text: "bold"})
	shift := tea.KeyMsg{Type: tea.KeyShiftRight}
	m = press(t, m, shift, shift, shift, shift, tea.KeyMsg{Type: tea.KeyCtrlB})

	if got, want := m.Text(), "**bold**"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got, want := m.Selection().Main(), (edit.Range{From: 2, To: 6}); got != want {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestUpdate_DownMovesToNextLine(t *testing.T) {
	m := New(Config{Text: "ab\ncd"})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})

	if got, want := m.Selection().Main(), edit.Cursor(4); got != want {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestUpdate_UpPastFirstLineSnapsToStart(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyUp})

	if got, want := m.Selection().Main(), edit.Cursor(0); got != want {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestUpdate_ReadOnlyBlocksEditing(t *testing.T) {
	m := New(Config{Text: "fixed", ReadOnly: true})
	m = press(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlB})

	if got, want := m.Text(), "fixed"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestUpdate_OnChangeReportsTransaction(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "a",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd}, runes("b"), tea.KeyMsg{Type: tea.KeyBackspace})

	if got, want := len(events), 2; got != want {
		t.Fatalf("events = %d, want %d", got, want)
	}
	if got, want := events[0].Text, "ab"; got != want {
		t.Fatalf("first event text = %q, want %q", got, want)
	}
	if got, want := events[0].Event, edit.EventInput; got != want {
		t.Fatalf("first event kind = %v, want %v", got, want)
	}
	if got, want := events[1].Event, edit.EventDelete; got != want {
		t.Fatalf("second event kind = %v, want %v", got, want)
	}
	if got, want := m.Text(), "a"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestUpdate_BlurStopsKeyHandling(t *testing.T) {
	m := New(Config{Text: "a"})
	m = m.Blur()
	m = press(t, m, runes("b"))

	if got, want := m.Text(), "a"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	m = m.Focus()
	m = press(t, m, runes("b"))
	if got, want := m.Text(), "ba"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}
