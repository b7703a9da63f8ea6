package markuplift

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTML5Parsing is the lenient ParsingStrategy used by the HTML5 façade. It
// delegates the actual tokenizing/tree-construction algorithm to
// golang.org/x/net/html, then converts the resulting *html.Node tree into
// this package's Node model.
//
// HTML5 foreign content (an <svg> or <math> subtree) is namespace-scoped the
// same way a standalone XML document would be: the foreign root's NSMap
// gains the relevant default namespace, and every descendant inherits it,
// since the x/net/html tree-construction algorithm already tags foreign
// elements with their namespace.
type HTML5Parsing struct{}

const (
	svgNamespaceURI   = "http://www.w3.org/2000/svg"
	mathMLNamespaceURI = "http://www.w3.org/1998/Math/MathML"
	xlinkNamespaceURI = "http://www.w3.org/1999/xlink"
	xmlnsNamespaceURI = "http://www.w3.org/2000/xmlns/"
)

var foreignAttrNamespaces = map[string]string{
	"xlink": xlinkNamespaceURI,
	"xml":   xmlNamespaceURI,
	"xmlns": xmlnsNamespaceURI,
}

func (HTML5Parsing) ParseString(s string) (*Node, error) {
	return (HTML5Parsing{}).ParseReader(strings.NewReader(s))
}

func (HTML5Parsing) ParseBytes(b []byte) (*Node, error) {
	return (HTML5Parsing{}).ParseReader(bytes.NewReader(b))
}

func (HTML5Parsing) ParseReader(r io.Reader) (*Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := NewDocument()
	convertHTMLChildren(root, doc, nil)
	return doc, nil
}

// convertHTMLChildren converts every child of hn into a Node appended to
// parent, threading nsmap (the namespace map in scope) down the tree.
func convertHTMLChildren(hn *html.Node, parent *Node, nsmap map[string]string) {
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		convertHTMLNode(c, parent, nsmap)
	}
}

func convertHTMLNode(hn *html.Node, parent *Node, nsmap map[string]string) {
	switch hn.Type {
	case html.DocumentNode:
		convertHTMLChildren(hn, parent, nsmap)
	case html.DoctypeNode:
		parent.Doctype = renderHTMLDoctype(hn)
	case html.ElementNode:
		n := convertHTMLElement(hn, nsmap)
		parent.AppendChild(n)
		convertHTMLChildren(hn, n, n.NSMap)
	case html.TextNode:
		appendHTMLText(parent, hn.Data)
	case html.CommentNode:
		c := NewComment(hn.Data)
		parent.AppendChild(c)
	}
}

// appendHTMLText assigns hn's text to the owning element's TextContent if it
// has no children yet, or to the previous child's Tail otherwise — the
// text/tail split the annotation passes operate on.
func appendHTMLText(parent *Node, data string) {
	if len(parent.Children) == 0 {
		parent.TextContent.Data += data
		return
	}
	last := parent.Children[len(parent.Children)-1]
	last.Tail += data
}

func convertHTMLElement(hn *html.Node, nsmap map[string]string) *Node {
	tag := QName{Local: hn.Data}
	childNSMap := nsmap
	switch hn.Namespace {
	case "svg":
		tag.Namespace = svgNamespaceURI
		childNSMap = withDefaultNS(nsmap, svgNamespaceURI)
	case "math":
		tag.Namespace = mathMLNamespaceURI
		childNSMap = withDefaultNS(nsmap, mathMLNamespaceURI)
	}

	n := &Node{Type: ElementNode, Tag: tag, NSMap: childNSMap}
	for _, a := range hn.Attr {
		n.Attrs = append(n.Attrs, convertHTMLAttr(a))
	}
	return n
}

func withDefaultNS(nsmap map[string]string, uri string) map[string]string {
	out := make(map[string]string, len(nsmap)+1)
	for k, v := range nsmap {
		out[k] = v
	}
	out[""] = uri
	return out
}

func convertHTMLAttr(a html.Attribute) Attribute {
	if a.Namespace == "" {
		if strings.Contains(a.Key, ":") {
			return Attribute{Name: NewQName(a.Key), Literal: a.Key, Value: a.Val}
		}
		return Attribute{Name: NewQName(a.Key), Value: a.Val}
	}
	uri := foreignAttrNamespaces[a.Namespace]
	return Attribute{Name: NewQualifiedName(uri, a.Key), Literal: a.Namespace + ":" + a.Key, Value: a.Val}
}

// renderHTMLDoctype reproduces the short or long DOCTYPE form from the
// parsed DoctypeNode's name/public/system attributes.
func renderHTMLDoctype(hn *html.Node) string {
	var public, system string
	for _, a := range hn.Attr {
		switch a.Key {
		case "public":
			public = a.Val
		case "system":
			system = a.Val
		}
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE ")
	b.WriteString(hn.Data)
	switch {
	case public != "":
		b.WriteString(` PUBLIC "`)
		b.WriteString(public)
		b.WriteByte('"')
		if system != "" {
			b.WriteString(` "`)
			b.WriteString(system)
			b.WriteByte('"')
		}
	case system != "":
		b.WriteString(` SYSTEM "`)
		b.WriteString(system)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}
