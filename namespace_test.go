package markuplift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeQName_BareLocalWhenUnqualified(t *testing.T) {
	assert.Equal(t, "div", serializeQName(NewQName("div"), nil))
}

func TestSerializeQName_ReservedXMLPrefixNeverLooksUpNSMap(t *testing.T) {
	q := NewQualifiedName(xmlNamespaceURI, "lang")
	assert.Equal(t, "xml:lang", serializeQName(q, map[string]string{}))
}

func TestSerializeQName_ResolvesPrefixFromNSMap(t *testing.T) {
	q := NewQualifiedName("http://www.w3.org/2000/svg", "rect")
	nsmap := map[string]string{"": "http://www.w3.org/2000/svg"}
	assert.Equal(t, "rect", serializeQName(q, nsmap))

	nsmap2 := map[string]string{"svg": "http://www.w3.org/2000/svg"}
	assert.Equal(t, "svg:rect", serializeQName(q, nsmap2))
}

func TestSerializeQName_FallsBackToLocalWhenURIUnbound(t *testing.T) {
	q := NewQualifiedName("http://example.com/unbound", "foo")
	assert.Equal(t, "foo", serializeQName(q, map[string]string{"x": "http://other"}))
}

func TestSerializeAttrName_LiteralBypassesResolution(t *testing.T) {
	n := NewElement(NewQName("svg"))
	n.NSMap = map[string]string{"svg": "http://www.w3.org/2000/svg"}
	attr := Attribute{Name: NewQName("ignored"), Literal: "xmlns:svg", Value: "http://www.w3.org/2000/svg"}
	assert.Equal(t, "xmlns:svg", serializeAttrName(n, attr))
}

func TestSerializeAttrName_ResolvesWhenNoLiteral(t *testing.T) {
	n := NewElement(NewQName("svg"))
	n.NSMap = map[string]string{"": "http://www.w3.org/2000/svg"}
	attr := Attribute{Name: NewQualifiedName("http://www.w3.org/2000/svg", "viewBox"), Value: "0 0 1 1"}
	assert.Equal(t, "viewBox", serializeAttrName(n, attr))
}

func TestNewDeclarations_RootHasNoParentSoEverythingIsNew(t *testing.T) {
	root := NewElement(NewQName("svg"))
	root.NSMap = map[string]string{"": "http://www.w3.org/2000/svg", "xlink": "http://www.w3.org/1999/xlink"}

	decls := newDeclarations(root)
	assert.Len(t, decls, 2)
	assert.Equal(t, "xmlns", decls[0].xmlnsAttrName())
	assert.Equal(t, "xmlns:xlink", decls[1].xmlnsAttrName())
}

func TestNewDeclarations_OnlyReportsWhatChildAddsOverParent(t *testing.T) {
	parent := NewElement(NewQName("root"))
	parent.NSMap = map[string]string{"": "http://www.w3.org/2000/svg"}

	child := NewElement(NewQName("rect"))
	child.NSMap = map[string]string{"": "http://www.w3.org/2000/svg"}
	parent.AppendChild(child)

	assert.Empty(t, newDeclarations(child))
}

func TestNewDeclarations_ReDeclarationOfSamePrefixWithDifferentURICountsAsNew(t *testing.T) {
	parent := NewElement(NewQName("root"))
	parent.NSMap = map[string]string{"": "http://example.com/a"}

	child := NewElement(NewQName("child"))
	child.NSMap = map[string]string{"": "http://example.com/b"}
	parent.AppendChild(child)

	decls := newDeclarations(child)
	assert.Equal(t, []nsDecl{{prefix: "", uri: "http://example.com/b"}}, decls)
}

func TestNewDeclarations_DefaultNamespaceSortsBeforeNamedPrefixes(t *testing.T) {
	root := NewElement(NewQName("root"))
	root.NSMap = map[string]string{
		"xlink": "http://www.w3.org/1999/xlink",
		"":      "http://www.w3.org/2000/svg",
		"a":     "http://example.com/a",
	}

	decls := newDeclarations(root)
	var prefixes []string
	for _, d := range decls {
		prefixes = append(prefixes, d.prefix)
	}
	assert.Equal(t, []string{"", "a", "xlink"}, prefixes)
}
