package commands

import (
	"testing"

	"github.com/iw2rmb/markedit/edit"
)

func TestBackspace_DeletesExtraAlignmentSpaces(t *testing.T) {
	st := newState("* item\n*    x", edit.Cursor(12))

	text, sel := run(t, DeleteMarkupBackward, st)
	if want := "* item\n* x"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantCursor(t, sel, 9)
}

func TestBackspace_ReplacesMarkerWithPadding(t *testing.T) {
	st := newState("* a\n* b", edit.Cursor(6))

	text, sel := run(t, DeleteMarkupBackward, st)
	if want := "* a\n  b"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	// The cursor stays put; only the marker text changed under it.
	wantCursor(t, sel, 6)
}

func TestBackspace_SecondPressDeletesPadding(t *testing.T) {
	st := newState("* a\n  b", edit.Cursor(6))

	text, sel := run(t, DeleteMarkupBackward, st)
	if want := "* a\nb"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantCursor(t, sel, 4)
}

func TestBackspace_FirstItemMarkerDeletedOutright(t *testing.T) {
	st := newState("* item", edit.Cursor(2))

	text, sel := run(t, DeleteMarkupBackward, st)
	if want := "item"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantCursor(t, sel, 0)
}

func TestBackspace_NestedQuoteDropsOneLevelPerPress(t *testing.T) {
	st := newState("> > a\n> > ", edit.Cursor(10))

	text, sel := run(t, DeleteMarkupBackward, st)
	if want := "> > a\n>   "; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantCursor(t, sel, 10)

	st = newState(text, edit.Cursor(10))
	text, sel = run(t, DeleteMarkupBackward, st)
	if want := "> > a\n> "; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantCursor(t, sel, 8)
}

func TestBackspace_PassesThroughMidWord(t *testing.T) {
	st := newState("* item", edit.Cursor(4))
	if _, ok := DeleteMarkupBackward(st); ok {
		t.Fatalf("expected pass-through mid-word")
	}
}

func TestBackspace_PassesThroughWithoutContext(t *testing.T) {
	st := newState("plain", edit.Cursor(3))
	if _, ok := DeleteMarkupBackward(st); ok {
		t.Fatalf("expected pass-through outside markup")
	}
}

func TestBackspace_PassesThroughOnSelection(t *testing.T) {
	st := newState("* item", edit.Range{From: 2, To: 4})
	if _, ok := DeleteMarkupBackward(st); ok {
		t.Fatalf("expected pass-through for a non-empty range")
	}
}
