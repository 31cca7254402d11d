package commands

import (
	"strings"
	"testing"

	"github.com/iw2rmb/markedit/edit"
)

func TestToggleBlockQuote_PrefixesLines(t *testing.T) {
	st := newState("a\nb", edit.Range{From: 0, To: 3})

	text, sel := run(t, ToggleBlockQuote, st)
	if want := "> a\n> b"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantRange(t, sel, 2, 7)
}

func TestToggleBlockQuote_StripsQuoteMarkup(t *testing.T) {
	st := newState("> a\n> b", edit.Range{From: 0, To: 7})

	text, sel := run(t, ToggleBlockQuote, st)
	if want := "a\nb"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantRange(t, sel, 0, 3)
}

func TestToggleBlockQuote_CursorStripsWholeQuote(t *testing.T) {
	st := newState("> a\n> b", edit.Cursor(2))

	text, _ := run(t, ToggleBlockQuote, st)
	if want := "a\nb"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
}

func TestToggleBlockQuote_SelectionLimitsContinuationStripping(t *testing.T) {
	st := newState("> a\n> b\n> c", edit.Range{From: 2, To: 3})

	text, _ := run(t, ToggleBlockQuote, st)
	if want := "a\n> b\n> c"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
}

func TestInsertCodeBlock_WrapsSelection(t *testing.T) {
	st := newState("code here", edit.Range{From: 0, To: 9})

	text, sel := run(t, InsertCodeBlock, st)
	if want := "```\ncode here\n```"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantRange(t, sel, 4, 13)
}

func TestInsertCodeBlock_EmptyCursorOpensBlock(t *testing.T) {
	st := newState("", edit.Cursor(0))

	text, sel := run(t, InsertCodeBlock, st)
	if want := "```\n\n```"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantCursor(t, sel, 4)
}

func TestInsertCodeBlock_InsideFenceInsertsAnother(t *testing.T) {
	st := newState("```\nx\n```", edit.Cursor(5))

	text, _ := run(t, InsertCodeBlock, st)
	if got := strings.Count(text, "```"); got != 4 {
		t.Fatalf("fence markers=%d, want 4", got)
	}
}

func TestInsertTable_AppendsTemplateAfterLine(t *testing.T) {
	st := newState("para", edit.Cursor(2))

	text, sel := run(t, InsertTable, st)
	want := "para\n| Column1 | Column2 | Column3 |\n| ------- | ------- | ------- |\n| Text | Text | Text |\n"
	if text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	wantRange(t, sel, 7, 14)
	if got := text[7:14]; got != "Column1" {
		t.Fatalf("selected=%q, want %q", got, "Column1")
	}
}
