package markuplift

import "strings"

// NodeType identifies which variant of the tagged-union node model a Node
// represents. Only the fields relevant to Type are meaningful; the rest are
// left at their zero values.
type NodeType int

const (
	ElementNode NodeType = iota
	CommentNode
	ProcessingInstructionNode
	DocumentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case CommentNode:
		return "comment"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}

// xmlNamespaceURI is the reserved namespace bound to the xml: prefix. It is
// never declared via an xmlns attribute (see serializeQName).
const xmlNamespaceURI = "http://www.w3.org/XML/1998/namespace"

// QName is a qualified name in Clark notation: an optional namespace URI
// plus a local name. The zero value is "no namespace".
type QName struct {
	Namespace string
	Local     string
}

// NewQName builds an unqualified name.
func NewQName(local string) QName { return QName{Local: local} }

// NewQualifiedName builds a namespaced name.
func NewQualifiedName(namespace, local string) QName {
	return QName{Namespace: namespace, Local: local}
}

// Clark renders the name in {uri}local notation, or bare local if there is
// no namespace.
func (q QName) Clark() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

func (q QName) String() string { return q.Clark() }

// ParseClark parses a {uri}local or bare local string into a QName.
func ParseClark(s string) QName {
	if len(s) > 0 && s[0] == '{' {
		if i := strings.IndexByte(s, '}'); i > 0 {
			return QName{Namespace: s[1:i], Local: s[i+1:]}
		}
	}
	return QName{Local: s}
}

// Attribute is one name/value pair in an element's ordered attribute list.
type Attribute struct {
	Name QName

	// Literal, when non-empty, is the attribute's original "prefix:local"
	// (or "xmlns", "xmlns:prefix") spelling. When set, the serializer
	// passes Literal through unchanged instead of resolving Name against
	// the element's namespace map — this is how xmlns declarations and
	// HTML-parser-preserved literal prefixes are round-tripped without
	// QName processing.
	Literal string

	Value string
}

// Content is an element or comment's character content, tagged so CDATA
// input can round-trip through the formatter instead of becoming escaped
// text the moment it is read.
type Content struct {
	Data  string
	CDATA bool
}

// Text wraps a plain-text content string.
func Text(s string) Content { return Content{Data: s} }

// CData wraps a content string that must be rendered (or re-rendered) as a
// CDATA section.
func CData(s string) Content { return Content{Data: s, CDATA: true} }

// IsEmpty reports whether the content carries no characters.
func (c Content) IsEmpty() bool { return c.Data == "" }

// Node is a tagged-variant tree node covering all four variants the data
// model supports: Element, Comment, ProcessingInstruction, and Document.
type Node struct {
	Type NodeType

	// Element only.
	Tag   QName
	Attrs []Attribute
	// NSMap holds namespace declarations in scope starting at this element:
	// prefix ("" = default namespace) -> URI. Inherited prefixes are present
	// here too, already resolved; newDeclarations compares against the
	// parent to find what this element itself introduces.
	NSMap map[string]string

	// ProcessingInstruction only.
	Target string

	// Document only.
	Doctype string

	// Element and Comment and ProcessingInstruction: character content
	// between the open tag and the first child (or data payload for PIs
	// and comments), and the tail between this node's close and the next
	// sibling's open tag.
	TextContent Content
	Tail        string

	Children []*Node
	Parent   *Node
}

// NewElement creates a detached element node with an empty namespace map.
func NewElement(tag QName) *Node {
	return &Node{Type: ElementNode, Tag: tag, NSMap: map[string]string{}}
}

// NewComment creates a detached comment node.
func NewComment(text string) *Node {
	return &Node{Type: CommentNode, TextContent: Text(text)}
}

// NewProcessingInstruction creates a detached processing-instruction node.
func NewProcessingInstruction(target, data string) *Node {
	return &Node{Type: ProcessingInstructionNode, Target: target, TextContent: Text(data)}
}

// NewDocument creates a document node with no children.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// AppendChild adds c as the last child of n. It panics if c already has a
// parent: a Node may belong to only one tree at a time.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil {
		panic("markuplift: AppendChild called for an already-attached Node")
	}
	c.Parent = n
	n.Children = append(n.Children, c)
}

// InsertChildBefore inserts newChild immediately before oldChild in n's
// children. If oldChild is nil, newChild is appended. It panics if newChild
// is already attached, or if oldChild is non-nil and not a child of n.
func (n *Node) InsertChildBefore(newChild, oldChild *Node) {
	if newChild.Parent != nil {
		panic("markuplift: InsertChildBefore called for an already-attached Node")
	}
	if oldChild == nil {
		n.AppendChild(newChild)
		return
	}
	idx := -1
	for i, c := range n.Children {
		if c == oldChild {
			idx = i
			break
		}
	}
	if idx == -1 {
		panic("markuplift: InsertChildBefore called with oldChild not a child of n")
	}
	newChild.Parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[idx+1:], n.Children[idx:])
	n.Children[idx] = newChild
}

// RemoveChild detaches c from n. It panics if c is not a child of n.
func (n *Node) RemoveChild(c *Node) {
	for i, ch := range n.Children {
		if ch == c {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			c.Parent = nil
			return
		}
	}
	panic("markuplift: RemoveChild called for a non-child Node")
}

// IsWhitespace reports whether the node's text content is entirely
// whitespace (including empty).
func (c Content) IsWhitespace() bool {
	return strings.TrimSpace(c.Data) == ""
}

// Root returns the document's root element, or nil if it has none yet.
func (n *Node) Root() *Node {
	if n.Type != DocumentNode {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if n.Children[i].Type == ElementNode {
			return n.Children[i]
		}
	}
	return nil
}

// HasSignificantText reports whether s (a text or tail string) contains any
// non-whitespace character.
func HasSignificantText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// isEmptyElement reports whether n, after its text transforms have run, has
// neither children nor non-empty text — the condition the empty-element
// strategy is consulted for.
func (n *Node) isEmptyElement(text Content) bool {
	return len(n.Children) == 0 && text.Data == ""
}
