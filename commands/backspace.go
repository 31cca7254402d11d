package commands

import (
	"strings"

	"github.com/iw2rmb/markedit/edit"
	"github.com/iw2rmb/markedit/tree"
)

// DeleteMarkupBackward strips one level of enclosing list or blockquote
// markup per press. A marker that other lines still align against is first
// replaced by blank padding of the same width; pure padding and extra
// alignment spaces are deleted outright. Reports false when a range is
// non-empty or no markup precedes the cursor.
func DeleteMarkupBackward(st *edit.State) (edit.Transaction, bool) {
	if st.Tree == nil || len(st.Selection) == 0 {
		return edit.Transaction{}, false
	}
	doc := st.Doc
	var results []rangeResult
	for _, r := range st.Selection {
		if !r.Empty() {
			return edit.Transaction{}, false
		}
		pos := r.From
		line := doc.LineAt(pos)
		context := resolveContext(doc, contextNodeForDelete(st.Tree, pos))
		if len(context) == 0 {
			return edit.Transaction{}, false
		}
		inner := &context[len(context)-1]
		spaceEnd := inner.to - len(inner.spaceAfter)
		if inner.spaceAfter != "" {
			spaceEnd++
		}
		posCol := pos - line.From

		// Trailing alignment spaces past the required spacing go first.
		if posCol > spaceEnd && spaceEnd <= len(line.Text) && blankString(line.Text[spaceEnd:posCol]) {
			results = append(results, rangeResult{
				orig:    r,
				rang:    edit.Cursor(line.From + spaceEnd),
				changes: []edit.Change{{From: line.From + spaceEnd, To: pos}},
			})
			continue
		}

		if posCol == spaceEnd &&
			(inner.item == nil || line.From <= inner.item.From ||
				blankString(line.Text[:min(inner.to, len(line.Text))])) {
			start := line.From + inner.from

			// A still-textual marker that later lines align against turns
			// into padding of the same width, keeping those lines intact.
			keepsAlignment := false
			if inner.item != nil {
				keepsAlignment = inner.node.From < inner.item.From
			} else if inner.node.Kind == tree.KindBlockQuote {
				keepsAlignment = inner.node.From < start
			}
			if keepsAlignment && inner.to <= len(line.Text) && !blankString(line.Text[inner.from:inner.to]) {
				pad := inner.spaceBefore + strings.Repeat(" ", inner.to-inner.from-len(inner.spaceBefore))
				results = append(results, rangeResult{
					orig:    r,
					rang:    r,
					changes: []edit.Change{{From: start, To: line.From + inner.to, Insert: pad}},
				})
				continue
			}
			if start < pos {
				results = append(results, rangeResult{
					orig:    r,
					rang:    edit.Cursor(start),
					changes: []edit.Change{{From: start, To: pos}},
				})
				continue
			}
		}
		return edit.Transaction{}, false
	}
	return mergeResults(results, edit.EventDelete), true
}

// contextNodeForDelete picks the node whose context describes the markup
// immediately before pos rather than the enclosing block: marker nodes
// redirect to their parent, and preceding sibling lists are entered through
// their last item.
func contextNodeForDelete(root *tree.Node, pos int) *tree.Node {
	node := root.Resolve(pos, -1)
	scan := pos
	if node.Kind.IsBlockMark() {
		scan = node.From
		node = node.Parent
	}
	for {
		prev := node.ChildBefore(scan)
		if prev == nil {
			break
		}
		switch {
		case prev.Kind.IsBlockMark():
			scan = prev.From
		case prev.Kind == tree.KindListOrdered || prev.Kind == tree.KindListUnordered:
			last := prev.LastChild()
			if last == nil {
				return node
			}
			node = last
			scan = node.To
		default:
			return node
		}
	}
	return node
}
