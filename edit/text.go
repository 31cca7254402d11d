package edit

import "sort"

// Line is one logical line of a Doc. [From, To) excludes the terminating
// newline. Number is 0-based.
type Line struct {
	Number int
	From   int
	To     int
	Text   string
}

// Doc is an immutable text snapshot with a line index.
type Doc struct {
	text       string
	lineStarts []int
}

// NewDoc builds a snapshot of text. A Doc always has at least one line.
func NewDoc(text string) *Doc {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Doc{text: text, lineStarts: starts}
}

func (d *Doc) Len() int { return len(d.text) }

func (d *Doc) Text() string { return d.text }

// Lines returns the number of logical lines.
func (d *Doc) Lines() int { return len(d.lineStarts) }

// Slice returns the text in [from, to), clamped into document bounds.
func (d *Doc) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(d.text) {
		to = len(d.text)
	}
	if from >= to {
		return ""
	}
	return d.text[from:to]
}

// Line returns line n (0-based), clamped into document bounds.
func (d *Doc) Line(n int) Line {
	if n < 0 {
		n = 0
	}
	if n >= len(d.lineStarts) {
		n = len(d.lineStarts) - 1
	}
	from := d.lineStarts[n]
	to := len(d.text)
	if n+1 < len(d.lineStarts) {
		to = d.lineStarts[n+1] - 1
	}
	return Line{Number: n, From: from, To: to, Text: d.text[from:to]}
}

// LineAt returns the line containing byte offset pos.
func (d *Doc) LineAt(pos int) Line {
	if pos < 0 {
		pos = 0
	}
	if pos > len(d.text) {
		pos = len(d.text)
	}
	n := sort.Search(len(d.lineStarts), func(i int) bool { return d.lineStarts[i] > pos }) - 1
	return d.Line(n)
}

func (d *Doc) String() string { return d.text }
