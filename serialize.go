package markuplift

import "strings"

// serializer holds the per-call state a single format invocation needs: the
// annotation side-table, the resolved strategies and rules, and the output
// buffer. It is discarded at the end of the call.
type serializer struct {
	root  *Node
	store *annotationStore
	cfg   *Config
	f     *Formatter
	buf   strings.Builder

	wrapAttrs  ElementPredicate
	reformAttr []resolvedAttrRule
	reorder    []resolvedReorderRule
}

type resolvedAttrRule struct {
	pred  AttributePredicate
	apply AttributeValueFormatter
}

type resolvedReorderRule struct {
	pred    ElementPredicate
	reorder AttributeReorderer
}

func newSerializer(root *Node, store *annotationStore, cfg *Config, f *Formatter) *serializer {
	s := &serializer{root: root, store: store, cfg: cfg, f: f}
	if cfg.WrapAttributesWhen != nil {
		s.wrapAttrs = cfg.WrapAttributesWhen(root)
	}
	for _, r := range cfg.ReformatAttributeWhen {
		s.reformAttr = append(s.reformAttr, resolvedAttrRule{pred: r.When(root), apply: r.Transform})
	}
	for _, r := range cfg.ReorderAttributesWhen {
		s.reorder = append(s.reorder, resolvedReorderRule{pred: r.When(root), reorder: r.Reorder})
	}
	return s
}

// run walks n (and its siblings' tails, via the caller) emitting its
// serialized form into s.buf.
func (s *serializer) run(n *Node) error {
	switch n.Type {
	case ElementNode:
		return s.writeElement(n)
	case CommentNode:
		s.writeComment(n)
		return nil
	case ProcessingInstructionNode:
		s.writePI(n)
		return nil
	case DocumentNode:
		for _, c := range n.Children {
			if err := s.run(c); err != nil {
				return err
			}
		}
		return nil
	default:
		return &UnsupportedContentError{Variant: n.Type.String()}
	}
}

func (s *serializer) writeComment(n *Node) {
	text := s.f.escaping.EscapeComment(n.TextContent.Data)
	s.buf.WriteString("<!--")
	if strings.HasPrefix(text, "-") {
		s.buf.WriteByte(' ')
	}
	s.buf.WriteString(text)
	if strings.HasSuffix(text, "-") {
		s.buf.WriteByte(' ')
	}
	s.buf.WriteString("-->")
	s.buf.WriteString(n.Tail)
}

func (s *serializer) writePI(n *Node) {
	s.buf.WriteString("<?")
	s.buf.WriteString(n.Target)
	if n.TextContent.Data != "" {
		s.buf.WriteByte(' ')
		s.buf.WriteString(n.TextContent.Data)
	}
	s.buf.WriteString("?>")
	s.buf.WriteString(n.Tail)
}

func (s *serializer) writeElement(n *Node) error {
	a := s.store.get(n)

	s.buf.WriteByte('<')
	s.buf.WriteString(serializeTagName(n))

	names, err := s.resolveAttrOrder(n)
	if err != nil {
		return err
	}

	wrap := s.wrapAttrs != nil && s.wrapAttrs(n)
	attrLevel := a.physicalLevel
	if wrap {
		attrLevel++
	}

	byName := make(map[string]Attribute, len(n.Attrs))
	for _, attr := range n.Attrs {
		byName[serializeAttrName(n, attr)] = attr
	}

	decls := s.pendingNSDecls(n, byName)

	if len(names) > 0 || len(decls) > 0 {
		for _, name := range names {
			attr := byName[name]
			if err := s.writeAttr(n, attr, wrap, attrLevel); err != nil {
				return err
			}
		}
		for _, d := range decls {
			s.writeLiteralAttr(d.xmlnsAttrName(), d.uri, wrap, attrLevel)
		}
	}

	text := ApplyTransforms(n.TextContent, a.textTransforms)
	tail := ApplyTransforms(Content{Data: n.Tail}, a.tailTransforms).Data
	empty := n.isEmptyElement(text)

	if empty {
		switch s.f.emptyElement.Mode(n) {
		case EmptyVoid:
			s.buf.WriteByte('>')
			s.buf.WriteString(tail)
			return nil
		case EmptySelfClosing:
			if wrap {
				s.buf.WriteString("\n")
				s.buf.WriteString(indentString(s.cfg.IndentSize, a.physicalLevel))
				s.buf.WriteString("/>")
			} else {
				s.buf.WriteString(" />")
			}
			s.buf.WriteString(tail)
			return nil
		default: // EmptyExplicit
			s.buf.WriteByte('>')
			s.buf.WriteString("</")
			s.buf.WriteString(serializeTagName(n))
			s.buf.WriteByte('>')
			s.buf.WriteString(tail)
			return nil
		}
	}

	s.buf.WriteByte('>')
	s.writeContent(n, text)

	for _, c := range n.Children {
		if err := s.run(c); err != nil {
			return err
		}
	}

	s.buf.WriteString("</")
	s.buf.WriteString(serializeTagName(n))
	s.buf.WriteByte('>')
	s.buf.WriteString(tail)
	return nil
}

func (s *serializer) writeContent(n *Node, c Content) {
	if c.CDATA {
		s.buf.WriteString(renderCDATA(c.Data))
		return
	}
	s.buf.WriteString(s.f.escaping.EscapeText(n, c.Data))
}

// resolveAttrOrder applies a matching reorderer (if any) to n's attribute
// names and validates the result is a permutation.
func (s *serializer) resolveAttrOrder(n *Node) (names []string, err error) {
	names = make([]string, len(n.Attrs))
	for i, attr := range n.Attrs {
		names[i] = serializeAttrName(n, attr)
	}
	for _, r := range s.reorder {
		if !r.pred(n) {
			continue
		}
		out := r.reorder(names)
		if verr := validatePermutation(n.Tag.Local, names, out); verr != nil {
			return nil, verr
		}
		return out, nil
	}
	return names, nil
}

// pendingNSDecls returns the new namespace declarations for n, skipping any
// whose literal xmlns attribute name is already present among n's own
// attributes, so an xmlns already carried through literally is never
// declared a second time.
func (s *serializer) pendingNSDecls(n *Node, byName map[string]Attribute) []nsDecl {
	all := newDeclarations(n)
	out := all[:0:0]
	for _, d := range all {
		if _, already := byName[d.xmlnsAttrName()]; already {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (s *serializer) writeAttr(n *Node, attr Attribute, wrap bool, level int) error {
	name := serializeAttrName(n, attr)
	s.writeAttrPrefix(wrap, level)
	s.buf.WriteString(name)

	var userFmt AttributeValueFormatter
	for _, r := range s.reformAttr {
		if r.pred(n, attr.Name, attr.Value) {
			userFmt = r.apply
			break
		}
	}
	value, minimize := s.f.attrFormatting.Format(n, attr, s.f, level, userFmt)
	if minimize {
		return nil
	}
	s.buf.WriteByte('=')
	s.buf.WriteString(s.f.escaping.QuoteAttribute(value))
	return nil
}

func (s *serializer) writeLiteralAttr(name, value string, wrap bool, level int) {
	s.writeAttrPrefix(wrap, level)
	s.buf.WriteString(name)
	s.buf.WriteByte('=')
	s.buf.WriteString(s.f.escaping.QuoteAttribute(value))
}

func (s *serializer) writeAttrPrefix(wrap bool, level int) {
	if wrap {
		s.buf.WriteByte('\n')
		s.buf.WriteString(indentString(s.cfg.IndentSize, level))
	} else {
		s.buf.WriteByte(' ')
	}
}
