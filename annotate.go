package markuplift

// ElementType is the layout role an element is annotated with: whether it
// triggers newlines and indentation (block) or stays inline with its
// surrounding content.
type ElementType int

const (
	// TypeUnset means the element has not yet been classified.
	TypeUnset ElementType = iota
	TypeBlock
	TypeInline
)

func (t ElementType) String() string {
	switch t {
	case TypeBlock:
		return "block"
	case TypeInline:
		return "inline"
	default:
		return "unset"
	}
}

// Whitespace is the whitespace discipline an element is annotated with.
type Whitespace int

const (
	WSUnset Whitespace = iota
	WSPreserve
	WSNormalize
	WSStrip
	WSStrict
)

func (w Whitespace) String() string {
	switch w {
	case WSPreserve:
		return "preserve"
	case WSNormalize:
		return "normalize"
	case WSStrip:
		return "strip"
	case WSStrict:
		return "strict"
	default:
		return "unset"
	}
}

// TextTransform maps one text or tail Content to another at serialization
// time. Transforms are computed during annotation, when every element's
// logical/physical level is already known, so any level-dependent behavior
// (e.g. how far to indent) is closed over at construction time rather than
// threaded through as a call argument.
type TextTransform func(c Content) Content

// annotation is the per-node side-table entry. It is never attached to the
// Node itself: the table that owns it is scoped to a single format call, so
// it can be dropped (or, in a GC'd runtime, simply become unreachable) the
// moment serialization finishes.
type annotation struct {
	typ           ElementType
	typeExplicit  bool
	ws            Whitespace
	logicalLevel  int
	physicalLevel int

	textTransforms []TextTransform
	tailTransforms []TextTransform
}

// annotationStore is the side-table mapping node -> annotation. It never
// mutates the tree.
type annotationStore struct {
	m map[*Node]*annotation
}

func newAnnotationStore() *annotationStore {
	return &annotationStore{m: make(map[*Node]*annotation)}
}

func (s *annotationStore) get(n *Node) *annotation {
	a, ok := s.m[n]
	if !ok {
		a = &annotation{}
		s.m[n] = a
	}
	return a
}

// Type returns the annotated layout role of n, or TypeUnset if n has not
// been annotated (e.g. it is outside the formatted subtree).
func (s *annotationStore) Type(n *Node) ElementType { return s.get(n).typ }

// Whitespace returns the annotated whitespace discipline of n.
func (s *annotationStore) Whitespace(n *Node) Whitespace { return s.get(n).ws }

// LogicalLevel returns the annotated tree depth of n.
func (s *annotationStore) LogicalLevel(n *Node) int { return s.get(n).logicalLevel }

// PhysicalLevel returns the annotated indentation level of n.
func (s *annotationStore) PhysicalLevel(n *Node) int { return s.get(n).physicalLevel }

// annotate runs the ordered annotation passes over root (an Element node)
// and returns the resulting side-table. root is the top of the subtree
// being formatted: for a whole-document format call it is doc.Root(); for
// Formatter.FormatElement it is the subtree element itself.
func annotate(root *Node, cfg *Config, f *Formatter) (*annotationStore, error) {
	store := newAnnotationStore()

	if err := annotateExplicitType(root, cfg.BlockWhen, TypeBlock, store); err != nil {
		return nil, err
	}
	if err := annotateExplicitType(root, cfg.InlineWhen, TypeInline, store); err != nil {
		return nil, err
	}
	annotateMixedContentInline(root, store)
	annotateInlineInheritance(root, store, store.get(root).typ == TypeInline)
	annotateBlockSubtreeInheritance(root, store)

	if cfg.PreserveWhitespaceWhen != nil {
		annotateExplicitWhitespace(root, cfg.PreserveWhitespaceWhen, WSPreserve, store)
	}
	annotatePreserveInheritance(root, store, store.get(root).ws == WSPreserve)
	if cfg.NormalizeWhitespaceWhen != nil {
		annotateExplicitWhitespace(root, cfg.NormalizeWhitespaceWhen, WSNormalize, store)
	}
	if cfg.StripWhitespaceWhen != nil {
		annotateExplicitWhitespace(root, cfg.StripWhitespaceWhen, WSStrip, store)
	}
	annotateXMLSpace(root, store, false)

	annotateDefaultType(root, cfg.DefaultType, store)
	annotateLogicalLevel(root, store, 0)
	annotatePhysicalLevel(root, store, 0)

	annotateTextTransforms(root, store, cfg, f)
	annotateTailTransforms(root, store, cfg, f)

	return store, nil
}

// walkElements calls fn for n and every descendant Element node, in
// document (pre-)order.
func walkElements(n *Node, fn func(*Node)) {
	if n.Type == ElementNode {
		fn(n)
	}
	for _, c := range n.Children {
		walkElements(c, fn)
	}
}

func forEachElementChild(n *Node, fn func(*Node)) {
	for _, c := range n.Children {
		if c.Type == ElementNode {
			fn(c)
		}
	}
}
