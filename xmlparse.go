package markuplift

import (
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// XMLParsing is the XML-strict ParsingStrategy used by the XML façade. It
// delegates tree construction to github.com/beevik/etree, which already
// models ordered attributes, per-element namespace prefixes, and CDATA
// (etree.CharData.IsCDATA) — adapted here into a converter from
// *etree.Document into this package's Node model that preserves CDATA
// markers end-to-end rather than collapsing them into escaped text.
type XMLParsing struct{}

func (XMLParsing) ParseString(s string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, err
	}
	return convertEtreeDocument(doc)
}

func (XMLParsing) ParseBytes(b []byte) (*Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return convertEtreeDocument(doc)
}

func (XMLParsing) ParseReader(r io.Reader) (*Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return convertEtreeDocument(doc)
}

func convertEtreeDocument(doc *etree.Document) (*Node, error) {
	out := NewDocument()
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			out.AppendChild(convertEtreeElement(t, nil))
		case *etree.Comment:
			out.AppendChild(NewComment(t.Data))
		case *etree.ProcInst:
			out.AppendChild(NewProcessingInstruction(t.Target, t.Inst))
		case *etree.Directive:
			if d := strings.TrimSpace(t.Data); strings.HasPrefix(strings.ToUpper(d), "DOCTYPE") {
				out.Doctype = "<!" + d + ">"
			}
		}
	}
	return out, nil
}

// etreeNSMap resolves el's in-scope prefix->uri map by walking xmlns/
// xmlns:prefix attributes against the parent's map (etree attributes carry
// no resolved namespace URI of their own; this is the equivalent of what an
// already-resolved nsmap view would look like).
func etreeNSMap(el *etree.Element, parentMap map[string]string) map[string]string {
	nsmap := make(map[string]string, len(parentMap)+1)
	for k, v := range parentMap {
		nsmap[k] = v
	}
	for _, a := range el.Attr {
		switch {
		case a.Space == "" && a.Key == "xmlns":
			nsmap[""] = a.Value
		case a.Space == "xmlns":
			nsmap[a.Key] = a.Value
		}
	}
	return nsmap
}

func etreeElementQName(el *etree.Element, nsmap map[string]string) QName {
	if el.Space == "" {
		if uri, ok := nsmap[""]; ok && uri != "" {
			return QName{Namespace: uri, Local: el.Tag}
		}
		return QName{Local: el.Tag}
	}
	if el.Space == "xml" {
		return QName{Namespace: xmlNamespaceURI, Local: el.Tag}
	}
	return QName{Namespace: nsmap[el.Space], Local: el.Tag}
}

func etreeAttr(a etree.Attr, nsmap map[string]string) Attribute {
	if a.Space == "" && a.Key == "xmlns" {
		return Attribute{Literal: "xmlns", Value: a.Value}
	}
	if a.Space == "xmlns" {
		return Attribute{Literal: "xmlns:" + a.Key, Value: a.Value}
	}
	if a.Space == "" {
		return Attribute{Name: NewQName(a.Key), Value: a.Value}
	}
	if a.Space == "xml" {
		return Attribute{Name: NewQualifiedName(xmlNamespaceURI, a.Key), Literal: "xml:" + a.Key, Value: a.Value}
	}
	return Attribute{Name: NewQualifiedName(nsmap[a.Space], a.Key), Literal: a.Space + ":" + a.Key, Value: a.Value}
}

func convertEtreeElement(el *etree.Element, parentMap map[string]string) *Node {
	nsmap := etreeNSMap(el, parentMap)
	n := &Node{Type: ElementNode, Tag: etreeElementQName(el, nsmap), NSMap: nsmap}
	for _, a := range el.Attr {
		n.Attrs = append(n.Attrs, etreeAttr(a, nsmap))
	}

	for _, child := range el.Child {
		switch c := child.(type) {
		case *etree.Element:
			n.AppendChild(convertEtreeElement(c, nsmap))
		case *etree.Comment:
			n.AppendChild(NewComment(c.Data))
		case *etree.ProcInst:
			n.AppendChild(NewProcessingInstruction(c.Target, c.Inst))
		case *etree.CharData:
			appendEtreeCharData(n, c)
		}
	}
	return n
}

// appendEtreeCharData assigns c's text to the owning element's TextContent
// if it has no children yet, or to the previous child's Tail otherwise.
// CDATA-marked char data only ever attaches as TextContent (it cannot split
// across a tail per the node model's single Content field for text); a
// CDATA run appearing after a child element is represented as plain tail
// text, which is the same lossiness etree itself exhibits for mixed
// CDATA/element content.
func appendEtreeCharData(parent *Node, c *etree.CharData) {
	if len(parent.Children) == 0 {
		if c.IsCDATA() && parent.TextContent.Data == "" {
			parent.TextContent = CData(c.Data)
			return
		}
		parent.TextContent.Data += c.Data
		return
	}
	last := parent.Children[len(parent.Children)-1]
	last.Tail += c.Data
}
