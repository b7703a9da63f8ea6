package markuplift

import "sort"

// serializeTagName renders n's tag for output, resolving it against n's own
// namespace map.
func serializeTagName(n *Node) string {
	return serializeQName(n.Tag, n.NSMap)
}

// serializeQName resolves q against nsmap: the reserved xml: prefix is
// special-cased first (and never declared), then a matching prefix is
// looked up, falling back to the bare local name if none is found.
func serializeQName(q QName, nsmap map[string]string) string {
	if q.Namespace == "" {
		return q.Local
	}
	if q.Namespace == xmlNamespaceURI {
		return "xml:" + q.Local
	}
	for prefix, uri := range nsmap {
		if uri != q.Namespace {
			continue
		}
		if prefix == "" {
			return q.Local
		}
		return prefix + ":" + q.Local
	}
	return q.Local
}

// serializeAttrName resolves an attribute's name for output. Attributes
// carrying a Literal spelling (xmlns declarations, HTML-parser-preserved
// "prefix:local" names) are passed through unchanged, bypassing QName
// resolution entirely.
func serializeAttrName(n *Node, attr Attribute) string {
	if attr.Literal != "" {
		return attr.Literal
	}
	return serializeQName(attr.Name, n.NSMap)
}

// newDeclarations returns the prefix->uri pairs present in n's namespace map
// but not identically present in its parent's, ordered with the default
// namespace ("" prefix) first and then alphabetically by prefix. The
// document root's element has no parent nsmap to compare against, so every
// entry of its own nsmap counts as new.
func newDeclarations(n *Node) []nsDecl {
	var parentMap map[string]string
	if n.Parent != nil && n.Parent.Type == ElementNode {
		parentMap = n.Parent.NSMap
	}
	var decls []nsDecl
	for prefix, uri := range n.NSMap {
		if parentMap != nil {
			if existing, ok := parentMap[prefix]; ok && existing == uri {
				continue
			}
		}
		decls = append(decls, nsDecl{prefix: prefix, uri: uri})
	}
	sort.Slice(decls, func(i, j int) bool {
		if decls[i].prefix == "" {
			return decls[j].prefix != ""
		}
		if decls[j].prefix == "" {
			return false
		}
		return decls[i].prefix < decls[j].prefix
	})
	return decls
}

type nsDecl struct {
	prefix string
	uri    string
}

// xmlnsAttrName renders an xmlns declaration's literal attribute name: the
// bare "xmlns" for the default namespace, "xmlns:prefix" otherwise.
func (d nsDecl) xmlnsAttrName() string {
	if d.prefix == "" {
		return "xmlns"
	}
	return "xmlns:" + d.prefix
}
