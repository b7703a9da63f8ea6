package markuplift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializerRun_UnsupportedContentErrorForUnrecognizedNodeType(t *testing.T) {
	f, err := XmlFormatter(Config{})
	require.NoError(t, err)

	root := NewElement(NewQName("root"))
	weird := &Node{Type: NodeType(99)}
	root.AppendChild(weird)

	_, err = f.FormatElement(root, nil)
	require.Error(t, err)

	var unsupported *UnsupportedContentError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "unknown", unsupported.Variant)
	assert.Equal(t, `markuplift: no handler registered for content variant "unknown"`, unsupported.Error())
}

func TestSerializerRun_DocumentNodeWalksAllChildrenInOrder(t *testing.T) {
	f, err := XmlFormatter(Config{})
	require.NoError(t, err)

	doc := NewDocument()
	pi := NewProcessingInstruction("foo", "bar")
	pi.Tail = "\n"
	root := NewElement(NewQName("root"))
	root.TextContent = Text("hi")
	doc.AppendChild(pi)
	doc.AppendChild(root)

	got, err := f.FormatTree(doc, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "<?foo bar?>\n<root>hi</root>", got)
}

func TestWriteComment_PadsAroundLeadingAndTrailingDash(t *testing.T) {
	f, err := XmlFormatter(Config{})
	require.NoError(t, err)

	root := NewElement(NewQName("root"))
	c := NewComment("-dash-")
	root.AppendChild(c)

	got, err := f.FormatElement(root, nil)
	require.NoError(t, err)
	assert.Contains(t, got, "<!-- -dash- -->")
}

func TestResolveAttrOrder_ReordererViolationSurfacesAsError(t *testing.T) {
	dropsAttr := func(names []string) []string {
		if len(names) == 0 {
			return names
		}
		return names[1:]
	}
	allElements := func(root *Node) ElementPredicate { return func(n *Node) bool { return n.Type == ElementNode } }

	f, err := XmlFormatter(Config{
		ReorderAttributesWhen: []ReordererRule{{When: allElements, Reorder: dropsAttr}},
	})
	require.NoError(t, err)

	root := NewElement(NewQName("root"))
	root.Attrs = []Attribute{{Name: NewQName("a"), Value: "1"}}

	_, err = f.FormatElement(root, nil)
	require.Error(t, err)

	var violation *ReordererViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "root", violation.Tag)
	assert.Equal(t, []string{"a"}, violation.Missing)
}

func TestWriteElement_WrapAttributesIndentsEachAttributeOnItsOwnLine(t *testing.T) {
	allElements := func(root *Node) ElementPredicate { return func(n *Node) bool { return n.Type == ElementNode } }
	f, err := XmlFormatter(Config{WrapAttributesWhen: allElements, IndentSize: 2})
	require.NoError(t, err)

	root := NewElement(NewQName("root"))
	root.Attrs = []Attribute{{Name: NewQName("a"), Value: "1"}, {Name: NewQName("b"), Value: "2"}}
	root.TextContent = Text("x")

	got, err := f.FormatElement(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "<root\n  a=\"1\"\n  b=\"2\">x</root>", got)
}

func TestWriteElement_EmptyVoidModeOmitsClosingTag(t *testing.T) {
	f, err := Html5Formatter(Config{})
	require.NoError(t, err)

	root := NewElement(NewQName("br"))
	got, err := f.FormatElement(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "<br>", got)
}
