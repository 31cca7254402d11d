package commands

import (
	"testing"

	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/tree"
)

func newState(src string, sel ...edit.Range) *edit.State {
	return &edit.State{
		Doc:        edit.NewDoc(src),
		Tree:       tree.Parse(src),
		Selection:  sel,
		IndentUnit: "    ",
	}
}

// run executes cmd, requires it to handle the state, and returns the new
// document text plus the transaction's selection.
func run(t *testing.T, cmd Command, st *edit.State) (string, edit.Selection) {
	t.Helper()
	tx, ok := cmd(st)
	if !ok {
		t.Fatalf("command not handled")
	}
	doc, err := tx.Apply(st.Doc)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	return doc.Text(), tx.Selection
}

func wantCursor(t *testing.T, sel edit.Selection, pos int) {
	t.Helper()
	if len(sel) != 1 || sel[0] != edit.Cursor(pos) {
		t.Fatalf("selection=%v, want cursor %d", sel, pos)
	}
}

func wantRange(t *testing.T, sel edit.Selection, from, to int) {
	t.Helper()
	if len(sel) != 1 || sel[0] != (edit.Range{From: from, To: to}) {
		t.Fatalf("selection=%v, want [%d,%d)", sel, from, to)
	}
}
