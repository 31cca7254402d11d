package edit

import "github.com/iw2rmb/markedit/tree"

// Range is a half-open selection span [From, To). A cursor is an empty range.
type Range struct {
	From int
	To   int
}

// Cursor returns an empty range at pos.
func Cursor(pos int) Range { return Range{From: pos, To: pos} }

func (r Range) Empty() bool { return r.From == r.To }

func (r Range) Len() int { return r.To - r.From }

// Selection is a non-empty ordered set of disjoint ranges.
type Selection []Range

// Main returns the primary range (the first one).
func (s Selection) Main() Range {
	if len(s) == 0 {
		return Range{}
	}
	return s[0]
}

// SingleCursor builds a selection holding one cursor.
func SingleCursor(pos int) Selection { return Selection{Cursor(pos)} }

// Change replaces [From, To) with Insert. To == From is a pure insertion,
// an empty Insert a pure deletion.
type Change struct {
	From   int
	To     int
	Insert string
}

// Event identifies the user gesture a transaction models.
type Event uint8

const (
	EventInput Event = iota
	EventDelete
)

func (e Event) String() string {
	if e == EventDelete {
		return "delete"
	}
	return "input"
}

// Transaction is one atomic batch of changes plus the resulting selection.
// Change offsets refer to the document the transaction was computed against;
// the selection is expressed in post-apply coordinates.
type Transaction struct {
	Changes        []Change
	Selection      Selection
	ScrollIntoView bool
	Event          Event
}

// State is the full input contract of the engine: an immutable document, a
// read-only syntax tree consistent with it, the current selection, and the
// host's indent unit ("\t" re-expresses continuation indent in tabs; anything
// else keeps spaces).
type State struct {
	Doc        *Doc
	Tree       *tree.Node
	Selection  Selection
	IndentUnit string
}
