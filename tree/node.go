// Package tree provides the read-only Markdown syntax tree the editing
// engine consumes.
//
// Nodes are typed byte-offset regions [From, To) forming a tree rooted at a
// Document node. Parse builds a tree for a source string: block structure
// comes from a line scanner over the same marker grammar the engine's
// context resolver uses, inline structure from goldmark. Hosts with their
// own incremental parser can construct Node values directly.
package tree

import "sort"

// Kind enumerates the node types of the supported Markdown grammar.
type Kind uint8

const (
	KindDocument Kind = iota
	KindParagraph
	KindHeading
	KindBlockQuote
	KindListOrdered
	KindListUnordered
	KindListItem
	KindCodeFenced
	KindTable

	KindStrong
	KindEmphasis
	KindStrikethrough
	KindInlineFootnote
	KindLink

	KindQuoteMark
	KindListMark
	KindTaskMarker
	KindEmphasisMark
	KindFootnoteMark
	KindLinkMark
	KindLinkURL
	KindCodeMark
)

var kindNames = [...]string{
	"document", "paragraph", "heading", "blockQuote", "listOrdered",
	"listUnordered", "listItem", "codeFenced", "table",
	"strong", "emphasis", "strikethrough", "inlineFootnote", "link",
	"quoteMark", "listMark", "taskMarker", "emphasisMark", "footnoteMark",
	"linkMark", "linkURL", "codeMark",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsBlockMark reports whether k is a block marker/prefix kind.
func (k Kind) IsBlockMark() bool {
	return k == KindQuoteMark || k == KindListMark || k == KindTaskMarker
}

// Node is a typed region of the source. Nodes are read-only snapshots; a new
// parse produces new nodes.
type Node struct {
	Kind     Kind
	From     int
	To       int
	Parent   *Node
	Children []*Node

	index int
}

// NewNode builds a detached node.
func NewNode(kind Kind, from, to int) *Node {
	return &Node{Kind: kind, From: from, To: to, index: -1}
}

// Append attaches child as the last child of n.
func (n *Node) Append(child *Node) *Node {
	child.Parent = n
	child.index = len(n.Children)
	n.Children = append(n.Children, child)
	return child
}

func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

func (n *Node) NextSibling() *Node {
	if n.Parent == nil || n.index+1 >= len(n.Parent.Children) {
		return nil
	}
	return n.Parent.Children[n.index+1]
}

func (n *Node) PrevSibling() *Node {
	if n.Parent == nil || n.index <= 0 {
		return nil
	}
	return n.Parent.Children[n.index-1]
}

// ChildBefore returns the last child ending at or before pos.
func (n *Node) ChildBefore(pos int) *Node {
	var found *Node
	for _, c := range n.Children {
		if c.To > pos {
			break
		}
		found = c
	}
	return found
}

// NthChildOfKind returns the n-th (0-based) direct child of the given kind.
func (n *Node) NthChildOfKind(kind Kind, nth int) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			if nth == 0 {
				return c
			}
			nth--
		}
	}
	return nil
}

// Resolve returns the innermost node containing pos. A negative side enters
// nodes ending exactly at pos, a positive side nodes starting exactly at pos,
// side zero only nodes strictly around pos.
func (n *Node) Resolve(pos, side int) *Node {
	cur := n
descend:
	for {
		for _, c := range cur.Children {
			var in bool
			switch {
			case side < 0:
				in = c.From < pos && pos <= c.To
			case side > 0:
				in = c.From <= pos && pos < c.To
			default:
				in = c.From < pos && pos < c.To
			}
			if in {
				cur = c
				continue descend
			}
		}
		return cur
	}
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// IterateRange visits every node whose span intersects (including touches)
// [from, to]. Returning false from fn skips the node's children.
func (n *Node) IterateRange(from, to int, fn func(*Node) bool) {
	n.Walk(func(c *Node) bool {
		if c.From > to || c.To < from {
			return false
		}
		return fn(c)
	})
}

// sortChildren restores document order after out-of-order inline attachment.
func (n *Node) sortChildren() {
	sort.SliceStable(n.Children, func(i, j int) bool {
		if n.Children[i].From == n.Children[j].From {
			return n.Children[i].To > n.Children[j].To
		}
		return n.Children[i].From < n.Children[j].From
	})
	for i, c := range n.Children {
		c.index = i
	}
}
