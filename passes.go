package markuplift

// Pass 1 / Pass 2: explicit block / explicit inline. Conflicting explicit
// annotations (an element the user's block predicate *and* inline predicate
// both match) are a configuration error reported as an AnnotationConflictError.
func annotateExplicitType(root *Node, when ElementPredicateFactory, want ElementType, store *annotationStore) error {
	if when == nil {
		return nil
	}
	pred := when(root)
	var firstErr error
	walkElements(root, func(n *Node) {
		if firstErr != nil {
			return
		}
		if !pred(n) {
			return
		}
		a := store.get(n)
		if a.typeExplicit && a.typ != want {
			firstErr = &AnnotationConflictError{
				Tag:      n.Tag.Local,
				Key:      "type",
				Previous: a.typ.String(),
				Next:     want.String(),
			}
			return
		}
		a.typ = want
		a.typeExplicit = true
	})
	return firstErr
}

// Pass 3: mixed-content inline. An element becomes inline when its parent
// carries significant text adjacent to it, unless it was already annotated.
func annotateMixedContentInline(root *Node, store *annotationStore) {
	walkElements(root, func(n *Node) {
		a := store.get(n)
		if a.typ != TypeUnset {
			return
		}
		if elementInMixedContent(n) {
			a.typ = TypeInline
		}
	})
}

// elementInMixedContent reports whether e's parent has non-whitespace text
// in its own .text or in any sibling's .tail.
func elementInMixedContent(e *Node) bool {
	p := e.Parent
	if p == nil {
		return false
	}
	if HasSignificantText(p.TextContent.Data) {
		return true
	}
	for _, sib := range p.Children {
		if sib == e {
			continue
		}
		if HasSignificantText(sib.Tail) {
			return true
		}
	}
	return false
}

// Pass 4: inline inheritance. Descendants of inline elements become inline
// unless already annotated; propagation does not cross a block boundary.
func annotateInlineInheritance(n *Node, store *annotationStore, inherited bool) {
	a := store.get(n)
	if a.typ == TypeUnset && inherited {
		a.typ = TypeInline
	}
	childInherited := inherited
	switch a.typ {
	case TypeBlock:
		childInherited = false
	case TypeInline:
		childInherited = true
	}
	forEachElementChild(n, func(c *Node) {
		annotateInlineInheritance(c, store, childInherited)
	})
}

// Pass 5: block-subtree inheritance. An unset element becomes block iff its
// parent is block, it is not itself in mixed content, and no sibling is
// annotated inline.
func annotateBlockSubtreeInheritance(n *Node, store *annotationStore) {
	parentType := store.get(n).typ
	forEachElementChild(n, func(c *Node) {
		a := store.get(c)
		if a.typ == TypeUnset && parentType == TypeBlock &&
			!elementInMixedContent(c) && !anySiblingInline(n, c, store) {
			a.typ = TypeBlock
		}
	})
	forEachElementChild(n, func(c *Node) {
		annotateBlockSubtreeInheritance(c, store)
	})
}

func anySiblingInline(parent, self *Node, store *annotationStore) bool {
	for _, sib := range parent.Children {
		if sib == self || sib.Type != ElementNode {
			continue
		}
		if store.get(sib).typ == TypeInline {
			return true
		}
	}
	return false
}

// Pass 6 / Pass 8 / Pass 9: explicit whitespace predicates. Every call
// overwrites the whitespace annotation of each matching element. Preserve
// runs first, so it only meets unset annotations (pass 7 propagates it);
// normalize and strip then overwrite anything earlier, including preserve.
func annotateExplicitWhitespace(root *Node, when ElementPredicateFactory, want Whitespace, store *annotationStore) {
	pred := when(root)
	walkElements(root, func(n *Node) {
		if !pred(n) {
			return
		}
		store.get(n).ws = want
	})
}

// Pass 7: preserve inheritance. Descendants of preserve elements become
// preserve unless already annotated; stops at the first descendant that
// already carries a (non-preserve) whitespace annotation of its own.
func annotatePreserveInheritance(n *Node, store *annotationStore, inherited bool) {
	a := store.get(n)
	if a.ws == WSUnset && inherited {
		a.ws = WSPreserve
	}
	childInherited := inherited
	if a.ws != WSUnset {
		childInherited = a.ws == WSPreserve
	}
	forEachElementChild(n, func(c *Node) {
		annotatePreserveInheritance(c, store, childInherited)
	})
}

// Pass 10: xml:space. Overwrites any other whitespace annotation. Descends
// from strict parents unless the element carries xml:space="default",
// which stops propagation without reverting the element's own annotation.
func annotateXMLSpace(n *Node, store *annotationStore, parentStrict bool) {
	xs, has := xmlSpaceAttr(n)
	strictNow := false
	if has && xs == "preserve" {
		strictNow = true
	} else if parentStrict && !(has && xs == "default") {
		strictNow = true
	}
	if strictNow {
		store.get(n).ws = WSStrict
	}
	forEachElementChild(n, func(c *Node) {
		annotateXMLSpace(c, store, strictNow)
	})
}

func xmlSpaceAttr(n *Node) (value string, ok bool) {
	for _, a := range n.Attrs {
		if a.Name.Namespace == xmlNamespaceURI && a.Name.Local == "space" {
			return a.Value, true
		}
		if a.Literal == "xml:space" {
			return a.Value, true
		}
	}
	return "", false
}

// Pass 11: default type. Elements still lacking a type receive cfg's
// configured default.
func annotateDefaultType(root *Node, def ElementType, store *annotationStore) {
	walkElements(root, func(n *Node) {
		a := store.get(n)
		if a.typ == TypeUnset {
			a.typ = def
		}
	})
}

// Pass 12: logical level. Depth in the tree, root = 0.
func annotateLogicalLevel(n *Node, store *annotationStore, level int) {
	store.get(n).logicalLevel = level
	forEachElementChild(n, func(c *Node) {
		annotateLogicalLevel(c, store, level+1)
	})
}

// Pass 13: physical level. Root = 0; a child's physical level equals its
// parent's when the parent is inline, otherwise parent+1.
func annotatePhysicalLevel(n *Node, store *annotationStore, level int) {
	store.get(n).physicalLevel = level
	a := store.get(n)
	childLevel := level
	if a.typ != TypeInline {
		childLevel = level + 1
	}
	forEachElementChild(n, func(c *Node) {
		annotatePhysicalLevel(c, store, childLevel)
	})
}
