package markuplift

import "strings"

// toQName normalizes a tag argument, which may be a QName value or a string
// in Clark ({uri}local) or bare-local notation, into a QName.
func toQName(v any) (QName, error) {
	switch t := v.(type) {
	case QName:
		return t, nil
	case string:
		return ParseClark(t), nil
	default:
		return QName{}, ErrInvalidMatcher
	}
}

// TagEquals matches elements whose qualified name equals tag exactly.
func TagEquals(tag any) (ElementPredicateFactory, error) {
	q, err := toQName(tag)
	if err != nil {
		return nil, err
	}
	if q.Local == "" {
		return nil, ErrEmptyTagName
	}
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool { return n.Type == ElementNode && n.Tag == q }
	}, nil
}

// TagIn matches elements whose qualified name is any of tags.
func TagIn(tags ...any) (ElementPredicateFactory, error) {
	if len(tags) == 0 {
		return nil, ErrEmptyTagName
	}
	set := make(map[QName]struct{}, len(tags))
	for _, t := range tags {
		q, err := toQName(t)
		if err != nil {
			return nil, err
		}
		if q.Local == "" {
			return nil, ErrEmptyTagName
		}
		set[q] = struct{}{}
	}
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool {
			if n.Type != ElementNode {
				return false
			}
			_, ok := set[n.Tag]
			return ok
		}
	}, nil
}

// HasAttribute matches elements carrying an attribute whose name satisfies
// nameMatcher.
func HasAttribute(name any) (ElementPredicateFactory, error) {
	m, err := NewMatcher(name)
	if err != nil {
		return nil, err
	}
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool {
			if n.Type != ElementNode {
				return false
			}
			for _, a := range n.Attrs {
				if m(a.Name.Local) || m(a.Name.Clark()) {
					return true
				}
			}
			return false
		}
	}, nil
}

// AttributeEquals matches elements carrying an attribute whose name and
// value both satisfy their matchers.
func AttributeEquals(name, value any) (ElementPredicateFactory, error) {
	nm, err := NewMatcher(name)
	if err != nil {
		return nil, err
	}
	vm, err := NewMatcher(value)
	if err != nil {
		return nil, err
	}
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool {
			if n.Type != ElementNode {
				return false
			}
			for _, a := range n.Attrs {
				if (nm(a.Name.Local) || nm(a.Name.Clark())) && vm(a.Value) {
					return true
				}
			}
			return false
		}
	}, nil
}

// AttributeCountMin matches elements with at least min attributes.
func AttributeCountMin(min int) (ElementPredicateFactory, error) {
	if min < 0 {
		return nil, &CountRangeError{Min: min, Max: -1}
	}
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool { return n.Type == ElementNode && len(n.Attrs) >= min }
	}, nil
}

// AttributeCountMax matches elements with at most max attributes.
func AttributeCountMax(max int) (ElementPredicateFactory, error) {
	if max < 0 {
		return nil, &CountRangeError{Min: -1, Max: max}
	}
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool { return n.Type == ElementNode && len(n.Attrs) <= max }
	}, nil
}

// AttributeCountBetween matches elements with between min and max
// (inclusive) attributes.
func AttributeCountBetween(min, max int) (ElementPredicateFactory, error) {
	if min < 0 || max < 0 || min > max {
		return nil, &CountRangeError{Min: min, Max: max}
	}
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool {
			return n.Type == ElementNode && len(n.Attrs) >= min && len(n.Attrs) <= max
		}
	}, nil
}

// HasCSSClass matches elements whose "class" attribute contains class as one
// of its space-separated tokens.
func HasCSSClass(class string) (ElementPredicateFactory, error) {
	if class == "" {
		return nil, ErrEmptyAttributeName
	}
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool {
			if n.Type != ElementNode {
				return false
			}
			for _, a := range n.Attrs {
				if a.Name.Local != "class" {
					continue
				}
				for _, c := range strings.Fields(a.Value) {
					if c == class {
						return true
					}
				}
			}
			return false
		}
	}, nil
}

// HasSignificantContent matches elements whose own text (not a descendant's)
// contains a non-whitespace character.
func HasSignificantContent() ElementPredicateFactory {
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool {
			return n.Type == ElementNode && HasSignificantText(n.TextContent.Data)
		}
	}
}

// IsInMixedContent matches elements whose parent carries significant text
// adjacent to them.
func IsInMixedContent() ElementPredicateFactory {
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool { return n.Type == ElementNode && elementInMixedContent(n) }
	}
}

// IsComment matches comment nodes.
func IsComment() ElementPredicateFactory {
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool { return n.Type == CommentNode }
	}
}

// IsProcessingInstruction matches processing-instruction nodes.
func IsProcessingInstruction() ElementPredicateFactory {
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool { return n.Type == ProcessingInstructionNode }
	}
}

// IsElement matches element nodes.
func IsElement() ElementPredicateFactory {
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool { return n.Type == ElementNode }
	}
}

// WhitespaceSignificantElements matches elements carrying an explicit
// xml:space="preserve" attribute — the XML-side counterpart of
// HTMLWhitespaceSignificantElements's fixed tag list.
func WhitespaceSignificantElements() ElementPredicateFactory {
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool {
			if n.Type != ElementNode {
				return false
			}
			v, ok := xmlSpaceAttr(n)
			return ok && v == "preserve"
		}
	}
}
