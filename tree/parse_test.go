package tree

import "testing"

func findKind(t *testing.T, root *Node, kind Kind, nth int) *Node {
	t.Helper()
	var found *Node
	root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Kind == kind {
			if nth == 0 {
				found = n
				return false
			}
			nth--
		}
		return true
	})
	if found == nil {
		t.Fatalf("no %v node in tree", kind)
	}
	return found
}

func TestParse_OrderedList(t *testing.T) {
	root := Parse("1. foo\n2. bar")

	list := findKind(t, root, KindListOrdered, 0)
	if list.From != 0 || list.To != 13 {
		t.Fatalf("list=[%d,%d), want [0,13)", list.From, list.To)
	}
	item := findKind(t, root, KindListItem, 1)
	if item.From != 7 || item.To != 13 {
		t.Fatalf("item=[%d,%d), want [7,13)", item.From, item.To)
	}
	mark := item.NthChildOfKind(KindListMark, 0)
	if mark == nil || mark.From != 7 || mark.To != 9 {
		t.Fatalf("mark=%+v, want [7,9)", mark)
	}
}

func TestParse_EmptyItemEndsAfterMarker(t *testing.T) {
	root := Parse("* a\n* ")

	item := findKind(t, root, KindListItem, 1)
	if item.From != 4 || item.To != 6 {
		t.Fatalf("item=[%d,%d), want [4,6)", item.From, item.To)
	}
	if got := root.Resolve(6, -1); got != item {
		t.Fatalf("resolve(6)=%v [%d,%d), want the empty item", got.Kind, got.From, got.To)
	}
}

func TestParse_NestedListInsideItem(t *testing.T) {
	root := Parse("1. foo\n   * bar")

	bullets := findKind(t, root, KindListUnordered, 0)
	if bullets.From != 10 {
		t.Fatalf("bullet list from=%d, want 10", bullets.From)
	}
	outer := findKind(t, root, KindListItem, 0)
	if bullets.Parent != outer {
		t.Fatalf("bullet list parent=%v, want the outer item", bullets.Parent.Kind)
	}
}

func TestParse_TaskMarker(t *testing.T) {
	root := Parse("* [x] done")

	item := findKind(t, root, KindListItem, 0)
	task := item.NthChildOfKind(KindTaskMarker, 0)
	if task == nil || task.From != 2 || task.To != 5 {
		t.Fatalf("task=%+v, want [2,5)", task)
	}
}

func TestParse_BlockQuoteMarksEveryLine(t *testing.T) {
	root := Parse("> a\n> b")

	quote := findKind(t, root, KindBlockQuote, 0)
	if quote.From != 0 || quote.To != 7 {
		t.Fatalf("quote=[%d,%d), want [0,7)", quote.From, quote.To)
	}
	first := quote.NthChildOfKind(KindQuoteMark, 0)
	second := quote.NthChildOfKind(KindQuoteMark, 1)
	if first == nil || second == nil || first.From != 0 || second.From != 4 {
		t.Fatalf("quote marks=%+v/%+v, want at 0 and 4", first, second)
	}
}

func TestParse_TrailingEmptyQuoteLineExtendsQuote(t *testing.T) {
	root := Parse("> a\n> ")

	quote := findKind(t, root, KindBlockQuote, 0)
	if quote.To != 6 {
		t.Fatalf("quote end=%d, want 6", quote.To)
	}
}

func TestParse_NestedQuote(t *testing.T) {
	root := Parse("> > a")

	outer := findKind(t, root, KindBlockQuote, 0)
	inner := findKind(t, root, KindBlockQuote, 1)
	if inner.Parent != outer {
		t.Fatalf("inner quote parent=%v, want outer quote", inner.Parent.Kind)
	}
	if inner.From != 2 {
		t.Fatalf("inner quote from=%d, want 2", inner.From)
	}
}

func TestParse_FencedCode(t *testing.T) {
	root := Parse("```\ncode\n```\nafter")

	fence := findKind(t, root, KindCodeFenced, 0)
	if fence.From != 0 || fence.To != 12 {
		t.Fatalf("fence=[%d,%d), want [0,12)", fence.From, fence.To)
	}
	if got := fence.NthChildOfKind(KindCodeMark, 1); got == nil || got.From != 9 {
		t.Fatalf("closing mark=%+v, want from 9", got)
	}
}

func TestParse_FenceSwallowsMarkers(t *testing.T) {
	root := Parse("```\n* not a list\n> not a quote\n```")

	root.Walk(func(n *Node) bool {
		if n.Kind == KindListUnordered || n.Kind == KindBlockQuote {
			t.Fatalf("unexpected %v inside fence", n.Kind)
		}
		return true
	})
}

func TestParse_InlineStrongEmphasis(t *testing.T) {
	root := Parse("a **b** _c_")

	strong := findKind(t, root, KindStrong, 0)
	if strong.From != 2 || strong.To != 7 {
		t.Fatalf("strong=[%d,%d), want [2,7)", strong.From, strong.To)
	}
	marks := 0
	for _, c := range strong.Children {
		if c.Kind == KindEmphasisMark {
			marks++
		}
	}
	if marks != 2 {
		t.Fatalf("strong marks=%d, want 2", marks)
	}
	em := findKind(t, root, KindEmphasis, 0)
	if em.From != 8 || em.To != 11 {
		t.Fatalf("emphasis=[%d,%d), want [8,11)", em.From, em.To)
	}
}

func TestParse_InlineStrikethroughAndFootnote(t *testing.T) {
	root := Parse("~~gone~~ and ^[note]")

	st := findKind(t, root, KindStrikethrough, 0)
	if st.From != 0 || st.To != 8 {
		t.Fatalf("strikethrough=[%d,%d), want [0,8)", st.From, st.To)
	}
	fn := findKind(t, root, KindInlineFootnote, 0)
	if fn.From != 13 || fn.To != 20 {
		t.Fatalf("footnote=[%d,%d), want [13,20)", fn.From, fn.To)
	}
	open := fn.NthChildOfKind(KindFootnoteMark, 0)
	shut := fn.NthChildOfKind(KindFootnoteMark, 1)
	if open == nil || open.To-open.From != 2 || shut == nil || shut.To-shut.From != 1 {
		t.Fatalf("footnote marks=%+v/%+v", open, shut)
	}
}

func TestParse_Link(t *testing.T) {
	root := Parse("see [label](https://x)")

	link := findKind(t, root, KindLink, 0)
	if link.From != 4 || link.To != 22 {
		t.Fatalf("link=[%d,%d), want [4,22)", link.From, link.To)
	}
	url := link.NthChildOfKind(KindLinkURL, 0)
	if url == nil || url.From != 12 || url.To != 21 {
		t.Fatalf("url=%+v, want [12,21)", url)
	}
}

func TestParse_InlineInsideListItem(t *testing.T) {
	root := Parse("* some **bold** text")

	strong := findKind(t, root, KindStrong, 0)
	if strong.From != 7 || strong.To != 15 {
		t.Fatalf("strong=[%d,%d), want [7,15)", strong.From, strong.To)
	}
	// The strong node must hang below the item, not the document.
	for n := strong.Parent; ; n = n.Parent {
		if n == nil {
			t.Fatalf("strong not attached under the list item")
		}
		if n.Kind == KindListItem {
			break
		}
	}
}

func TestResolve_Sides(t *testing.T) {
	root := Parse("**b**")

	strong := findKind(t, root, KindStrong, 0)
	if got := root.Resolve(5, -1); got.Parent != strong && got != strong {
		t.Fatalf("resolve(5,-1)=%v, want inside strong", got.Kind)
	}
	if got := root.Resolve(0, 1); got == root {
		t.Fatalf("resolve(0,1)=document, want a child")
	}
	if got := root.Resolve(5, 1); got != root {
		t.Fatalf("resolve(5,1)=%v, want document", got.Kind)
	}
}

func TestChildBefore(t *testing.T) {
	root := Parse("1. a\n2. b")

	list := findKind(t, root, KindListOrdered, 0)
	second := findKind(t, root, KindListItem, 1)
	if got := list.ChildBefore(9); got != second {
		t.Fatalf("childBefore(9)=%+v, want second item", got)
	}
	if got := list.ChildBefore(3); got != nil {
		t.Fatalf("childBefore(3)=%+v, want nil", got)
	}
}

func TestParse_ThematicBreakIsNotAList(t *testing.T) {
	hasList := func(src string) bool {
		found := false
		Parse(src).Walk(func(n *Node) bool {
			if n.Kind == KindListUnordered {
				found = true
				return false
			}
			return true
		})
		return found
	}

	for _, src := range []string{"- - -", "***", "* * *", "___", "  _ _ _ _ "} {
		if hasList(src) {
			t.Fatalf("%q parsed as a list, want thematic break", src)
		}
	}
	// Mixed marker characters are not a break, so the leading bullet counts.
	if !hasList("- * -") {
		t.Fatalf("%q should open a bullet list", "- * -")
	}
}
