package exprmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ml "github.com/markuplift/markuplift"
)

func TestMatches_TagComparison(t *testing.T) {
	factory, err := Matches(`Tag == "div"`)
	require.NoError(t, err)

	pred := factory(nil)
	div := ml.NewElement(ml.NewQName("div"))
	span := ml.NewElement(ml.NewQName("span"))

	assert.True(t, pred(div))
	assert.False(t, pred(span))
}

func TestMatches_AttributeLookup(t *testing.T) {
	factory, err := Matches(`Attrs["class"] contains "active"`)
	require.NoError(t, err)
	pred := factory(nil)

	n := ml.NewElement(ml.NewQName("div"))
	n.Attrs = []ml.Attribute{{Name: ml.NewQName("class"), Value: "btn active"}}
	assert.True(t, pred(n))

	other := ml.NewElement(ml.NewQName("div"))
	other.Attrs = []ml.Attribute{{Name: ml.NewQName("class"), Value: "btn"}}
	assert.False(t, pred(other))
}

func TestMatches_TextContent(t *testing.T) {
	factory, err := Matches(`len(Text) > 3`)
	require.NoError(t, err)
	pred := factory(nil)

	n := ml.NewElement(ml.NewQName("p"))
	n.TextContent = ml.Text("hello")
	assert.True(t, pred(n))

	short := ml.NewElement(ml.NewQName("p"))
	short.TextContent = ml.Text("hi")
	assert.False(t, pred(short))
}

func TestMatches_NonElementNodeNeverMatches(t *testing.T) {
	factory, err := Matches(`true`)
	require.NoError(t, err)
	pred := factory(nil)

	assert.False(t, pred(ml.NewComment("x")))
}

func TestMatches_CompileErrorSurfacesImmediately(t *testing.T) {
	_, err := Matches(`this is not valid expr syntax (((`)
	assert.Error(t, err)
}

func TestMatches_NonBooleanResultIsRejectedAtCompileTime(t *testing.T) {
	_, err := Matches(`Tag`)
	assert.Error(t, err)
}
