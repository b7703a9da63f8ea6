package markuplift

import "strings"

// TextTransformer is a user-supplied content reformatter, as configured via
// Config.ReformatTextWhen. It receives the current content (plain or CDATA),
// the formatter driving the call (so a formatter can be re-entered for
// nested formatting), and the element's physical indentation level.
type TextTransformer func(content Content, f *Formatter, physicalLevel int) Content

// TextFormatterRule pairs an element predicate factory with the transformer
// to apply when it matches. Config.ReformatTextWhen is a slice rather than a
// map because predicate factories are funcs, which Go disallows as map
// keys; the first matching rule wins.
type TextFormatterRule struct {
	When      ElementPredicateFactory
	Transform TextTransformer
}

// AttributeValueFormatter is a user-supplied attribute value reformatter, as
// configured via Config.ReformatAttributeWhen.
type AttributeValueFormatter func(value string, f *Formatter, physicalLevel int) string

// AttributeFormatterRule pairs an attribute predicate factory with the
// value formatter to apply when it matches.
type AttributeFormatterRule struct {
	When      AttributePredicateFactory
	Transform AttributeValueFormatter
}

// AttributeReorderer permutes an element's attribute name list. It must
// return a permutation of its input; violations are reported at
// serialization time as a ReordererViolationError.
type AttributeReorderer func(names []string) []string

// ReordererRule pairs an element predicate factory with the reorderer to
// apply when it matches.
type ReordererRule struct {
	When    ElementPredicateFactory
	Reorder AttributeReorderer
}

// normalizeWS collapses any run of whitespace to a single space.
func normalizeWS(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v' {
			if !inWS {
				b.WriteByte(' ')
				inWS = true
			}
			continue
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}

func indentString(indentSize, level int) string {
	if indentSize <= 0 || level <= 0 {
		return ""
	}
	return strings.Repeat(" ", indentSize*level)
}

// Pass 14: text transforms. Computes, per element, the ordered list of
// transforms applied to element.text at serialization time.
func annotateTextTransforms(root *Node, store *annotationStore, cfg *Config, f *Formatter) {
	walkElements(root, func(n *Node) {
		a := store.get(n)
		var transforms []TextTransform

		switch a.ws {
		case WSPreserve, WSStrict:
			// Emitted verbatim, modulo escaping: no transforms.
		default:
			if a.ws == WSNormalize {
				transforms = append(transforms, func(c Content) Content {
					if c.CDATA {
						return c
					}
					c.Data = normalizeWS(c.Data)
					return c
				})
			}
			if a.ws == WSStrip {
				transforms = append(transforms, func(c Content) Content {
					if c.CDATA {
						return c
					}
					c.Data = strings.TrimLeft(c.Data, " \t\n\r\f\v")
					return c
				})
			}

			if firstBlockChild := firstElementChildBlock(n, store); firstBlockChild != nil {
				childLevel := store.get(firstBlockChild).physicalLevel
				indent := indentString(cfg.IndentSize, childLevel)
				transforms = append(transforms, func(c Content) Content {
					if c.CDATA {
						return c
					}
					c.Data = strings.TrimRight(c.Data, " \t\n\r\f\v") + "\n" + indent
					return c
				})
			}

			if len(n.Children) == 0 && a.ws == WSStrip {
				transforms = append(transforms, func(c Content) Content {
					if c.CDATA {
						return c
					}
					c.Data = strings.TrimRight(c.Data, " \t\n\r\f\v")
					return c
				})
			}
		}

		if rule := matchTextRule(cfg.ReformatTextWhen, root, n); rule != nil {
			level := a.physicalLevel
			transform := rule.Transform
			transforms = append(transforms, func(c Content) Content {
				return transform(c, f, level)
			})
		}

		a.textTransforms = transforms
	})
}

func firstElementChildBlock(n *Node, store *annotationStore) *Node {
	for _, c := range n.Children {
		if c.Type == ElementNode {
			if store.get(c).typ == TypeBlock {
				return c
			}
			return nil
		}
		// A leading Comment/PI child does not count as "the first child"
		// for indent-before-block-child purposes only if it precedes the
		// first Element; keep scanning past non-element leading siblings.
		continue
	}
	return nil
}

// Pass 15: tail transforms. Computes, per element, the ordered list of
// transforms applied to element.tail at serialization time. Depends on the
// *parent's* whitespace annotation and the element's own type.
func annotateTailTransforms(root *Node, store *annotationStore, cfg *Config, f *Formatter) {
	walkElements(root, func(n *Node) {
		a := store.get(n)
		parent := n.Parent
		if parent == nil {
			a.tailTransforms = nil
			return
		}
		parentWS := store.get(parent).ws
		if parentWS == WSPreserve || parentWS == WSStrict {
			a.tailTransforms = nil
			return
		}

		var transforms []TextTransform
		isLastChild := isLastElementSibling(parent, n)
		next := nextElementSibling(parent, n)

		if parentWS == WSNormalize || parentWS == WSStrip {
			transforms = append(transforms, func(c Content) Content {
				if c.CDATA {
					return c
				}
				c.Data = normalizeWS(c.Data)
				return c
			})
		}
		if isLastChild && parentWS == WSStrip {
			transforms = append(transforms, func(c Content) Content {
				if c.CDATA {
					return c
				}
				c.Data = strings.TrimRight(c.Data, " \t\n\r\f\v")
				return c
			})
		}

		isRoot := parent.Type == DocumentNode
		selfIsBlock := a.typ == TypeBlock

		if selfIsBlock && next == nil && isRoot {
			transforms = append(transforms, func(c Content) Content {
				return Content{}
			})
		} else if selfIsBlock && (next == nil || store.get(next).typ == TypeBlock) {
			indent := indentString(cfg.IndentSize, store.get(parent).physicalLevel)
			transforms = append(transforms, func(c Content) Content {
				if c.CDATA {
					return c
				}
				c.Data = strings.TrimLeft(c.Data, " \t\n\r\f\v") + "\n" + indent
				return c
			})
		} else if selfIsBlock && next != nil && store.get(next).typ == TypeInline {
			transforms = append(transforms, func(c Content) Content {
				if c.CDATA || strings.ContainsRune(leadingWS(c.Data), '\n') {
					return c
				}
				c.Data = "\n" + c.Data
				return c
			})
		}

		if next != nil && store.get(next).typ == TypeBlock {
			nextLevel := store.get(next).physicalLevel
			indent := indentString(cfg.IndentSize, nextLevel)
			transforms = append(transforms, func(c Content) Content {
				if c.CDATA {
					return c
				}
				c.Data = strings.TrimRight(c.Data, " \t\n\r\f\v") + "\n" + indent
				return c
			})
		}

		a.tailTransforms = transforms
	})
}

func leadingWS(s string) string {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			i++
			continue
		}
		break
	}
	return s[:i]
}

func isLastElementSibling(parent, n *Node) bool {
	for i := len(parent.Children) - 1; i >= 0; i-- {
		c := parent.Children[i]
		if c.Type != ElementNode && c.Type != CommentNode && c.Type != ProcessingInstructionNode {
			continue
		}
		return c == n
	}
	return true
}

func nextElementSibling(parent, n *Node) *Node {
	found := false
	for _, c := range parent.Children {
		if found && c.Type == ElementNode {
			return c
		}
		if c == n {
			found = true
		}
	}
	return nil
}

func matchTextRule(rules []TextFormatterRule, root, n *Node) *TextFormatterRule {
	for i := range rules {
		pred := rules[i].When(root)
		if pred(n) {
			return &rules[i]
		}
	}
	return nil
}

// ApplyTransforms runs c through each transform in ts in order.
func ApplyTransforms(c Content, ts []TextTransform) Content {
	for _, t := range ts {
		c = t(c)
	}
	return c
}
