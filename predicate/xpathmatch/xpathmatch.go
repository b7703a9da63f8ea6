// Package xpathmatch adapts github.com/antchfx/xpath into an
// ElementPredicateFactory, letting callers select elements with an XPath
// expression instead of a Go predicate function.
package xpathmatch

import (
	"github.com/antchfx/xpath"

	ml "github.com/markuplift/markuplift"
)

// Matches compiles expr once at factory-construction time (stage 1) and
// returns an ElementPredicateFactory whose per-node closure (stage 2)
// evaluates the compiled expression with the candidate element as the
// context node, converting the result to a boolean the way XPath's own
// boolean() conversion would: non-empty node-set, non-zero number, or
// non-empty string are all true.
func Matches(expr string) (ml.ElementPredicateFactory, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, err
	}
	return func(root *ml.Node) ml.ElementPredicate {
		return func(n *ml.Node) bool {
			if n.Type != ml.ElementNode {
				return false
			}
			nav := &nodeNavigator{root: root, cur: n, attrIdx: -1}
			return toBool(compiled.Evaluate(nav))
		}
	}, nil
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case *xpath.NodeIterator:
		return t.MoveNext()
	default:
		return false
	}
}

// nodeNavigator implements xpath.NodeNavigator over *markuplift.Node. It
// does not synthesize text() pseudo-nodes — element text is exposed only
// via Value() on the element itself.
type nodeNavigator struct {
	root    *ml.Node
	cur     *ml.Node
	attrIdx int
}

func (n *nodeNavigator) NodeType() xpath.NodeType {
	if n.attrIdx >= 0 {
		return xpath.AttributeNode
	}
	switch n.cur.Type {
	case ml.DocumentNode:
		return xpath.RootNode
	case ml.CommentNode:
		return xpath.CommentNode
	case ml.ProcessingInstructionNode:
		return xpath.ElementNode
	default:
		return xpath.ElementNode
	}
}

func (n *nodeNavigator) LocalName() string {
	if n.attrIdx >= 0 {
		return n.cur.Attrs[n.attrIdx].Name.Local
	}
	if n.cur.Type == ml.ElementNode {
		return n.cur.Tag.Local
	}
	return ""
}

func (n *nodeNavigator) Prefix() string { return "" }

func (n *nodeNavigator) Value() string {
	if n.attrIdx >= 0 {
		return n.cur.Attrs[n.attrIdx].Value
	}
	switch n.cur.Type {
	case ml.CommentNode, ml.ProcessingInstructionNode:
		return n.cur.TextContent.Data
	default:
		return n.cur.TextContent.Data
	}
}

func (n *nodeNavigator) Copy() xpath.NodeNavigator {
	c := *n
	return &c
}

func (n *nodeNavigator) MoveToRoot() {
	n.cur = n.root
	n.attrIdx = -1
}

func (n *nodeNavigator) MoveToParent() bool {
	if n.attrIdx >= 0 {
		n.attrIdx = -1
		return true
	}
	if n.cur.Parent == nil {
		return false
	}
	n.cur = n.cur.Parent
	return true
}

func (n *nodeNavigator) MoveToNextAttribute() bool {
	if n.cur.Type != ml.ElementNode {
		return false
	}
	if n.attrIdx+1 < len(n.cur.Attrs) {
		n.attrIdx++
		return true
	}
	return false
}

func (n *nodeNavigator) MoveToChild() bool {
	if n.attrIdx >= 0 || len(n.cur.Children) == 0 {
		return false
	}
	n.cur = n.cur.Children[0]
	return true
}

func (n *nodeNavigator) MoveToFirst() bool {
	if n.attrIdx >= 0 || n.cur.Parent == nil || len(n.cur.Parent.Children) == 0 {
		return false
	}
	n.cur = n.cur.Parent.Children[0]
	return true
}

func (n *nodeNavigator) MoveToNext() bool {
	if n.attrIdx >= 0 || n.cur.Parent == nil {
		return false
	}
	idx := siblingIndex(n.cur)
	siblings := n.cur.Parent.Children
	if idx == -1 || idx+1 >= len(siblings) {
		return false
	}
	n.cur = siblings[idx+1]
	return true
}

func (n *nodeNavigator) MoveToPrevious() bool {
	if n.attrIdx >= 0 || n.cur.Parent == nil {
		return false
	}
	idx := siblingIndex(n.cur)
	if idx <= 0 {
		return false
	}
	n.cur = n.cur.Parent.Children[idx-1]
	return true
}

func (n *nodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*nodeNavigator)
	if !ok {
		return false
	}
	n.cur = o.cur
	n.attrIdx = o.attrIdx
	return true
}

func siblingIndex(n *ml.Node) int {
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}
