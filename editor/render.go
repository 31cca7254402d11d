package editor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/markedit/internal/grapheme"
)

func (m *Model) renderContent() string {
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(m.doc.Lines())
	}
	width := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if digits > 0 {
		width -= digits + 1
	}

	cursorRow := m.doc.LineAt(m.head).Number

	out := make([]string, 0, m.doc.Lines())
	for n := 0; n < m.doc.Lines(); n++ {
		line := m.doc.Line(n)

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && n == cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, n+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(line.From, line.Text, width))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine styles one line of text. Offsets inside the line are relative
// byte positions; the selection and cursor are mapped in and clipped to what
// survives truncation.
func (m *Model) renderLine(lineFrom int, text string, width int) string {
	if width > 0 {
		text = runewidth.Truncate(text, width, "")
	}
	limit := len(text)
	st := m.cfg.Style

	r := m.sel.Main()
	selFrom := clamp(r.From-lineFrom, 0, limit)
	selTo := clamp(r.To-lineFrom, 0, limit)

	// The cursor covers one grapheme cluster; at end of line it becomes a
	// placeholder cell.
	cur := m.head - lineFrom
	hasCursor := m.focused && cur >= 0 && m.head <= lineFrom+limit
	curEnd := cur
	if hasCursor && cur < limit {
		curEnd = grapheme.NextBoundary(text, cur)
	}

	bounds := []int{0, limit, selFrom, selTo}
	if hasCursor {
		bounds = append(bounds, cur, curEnd)
	}
	sort.Ints(bounds)

	var sb strings.Builder
	for i := 0; i+1 < len(bounds); i++ {
		from, to := bounds[i], bounds[i+1]
		if from >= to || from < 0 || to > limit {
			continue
		}
		style := st.Text
		switch {
		case hasCursor && from >= cur && to <= curEnd:
			style = st.Cursor
		case from >= selFrom && to <= selTo:
			style = st.Selection
		}
		sb.WriteString(style.Render(text[from:to]))
	}
	if hasCursor && cur >= limit {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func gutterDigits(lines int) int {
	d := 1
	for lines >= 10 {
		lines /= 10
		d++
	}
	return d
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
