package markuplift

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elem(tag string, attrs ...Attribute) *Node {
	n := NewElement(NewQName(tag))
	n.Attrs = attrs
	return n
}

func TestNewMatcher_String(t *testing.T) {
	m, err := NewMatcher("div")
	require.NoError(t, err)
	assert.True(t, m("div"))
	assert.False(t, m("span"))
}

func TestNewMatcher_Regexp(t *testing.T) {
	m, err := NewMatcher(regexp.MustCompile(`^data-`))
	require.NoError(t, err)
	assert.True(t, m("data-id"))
	assert.False(t, m("id"))
}

func TestNewMatcher_Func(t *testing.T) {
	m, err := NewMatcher(func(s string) bool { return len(s) > 3 })
	require.NoError(t, err)
	assert.True(t, m("abcd"))
	assert.False(t, m("ab"))
}

func TestNewMatcher_InvalidType(t *testing.T) {
	_, err := NewMatcher(42)
	assert.ErrorIs(t, err, ErrInvalidMatcher)
}

func TestAnyOfAllOfNotMatching(t *testing.T) {
	root := NewElement(NewQName("root"))
	divPred, err := TagIn("div")
	require.NoError(t, err)
	spanPred, err := TagIn("span")
	require.NoError(t, err)

	anyPred := AnyOf(divPred, spanPred)(root)
	allPred := AllOf(divPred, spanPred)(root)
	notPred := NotMatching(divPred)(root)

	div := elem("div")
	span := elem("span")
	p := elem("p")

	assert.True(t, anyPred(div))
	assert.True(t, anyPred(span))
	assert.False(t, anyPred(p))

	assert.False(t, allPred(div))
	assert.False(t, allPred(p))

	assert.False(t, notPred(div))
	assert.True(t, notPred(span))
}

func TestWithAttribute_ComposableAtAttributeLevel(t *testing.T) {
	// Attribute predicate factories built via WithAttribute must compose
	// with AnyOfAttribute/AllOfAttribute/NotMatchingAttribute just like
	// element predicates do.
	root := NewElement(NewQName("root"))

	divs, err := TagIn("div")
	require.NoError(t, err)

	idAttr, err := divs.WithAttribute("id")
	require.NoError(t, err)
	classAttr, err := divs.WithAttribute("class")
	require.NoError(t, err)

	combined := AnyOfAttribute(idAttr, classAttr)(root)

	n := elem("div", Attribute{Name: NewQName("id"), Value: "x"})
	assert.True(t, combined(n, NewQName("id"), "x"))
	assert.False(t, combined(n, NewQName("href"), "x"))

	notCombined := NotMatchingAttribute(AnyOfAttribute(idAttr, classAttr))(root)
	assert.False(t, notCombined(n, NewQName("id"), "x"))
}

func TestTagIn_RejectsEmpty(t *testing.T) {
	_, err := TagIn()
	assert.ErrorIs(t, err, ErrEmptyTagName)
}

func TestHasCSSClass(t *testing.T) {
	root := NewElement(NewQName("root"))
	pred, err := HasCSSClass("active")
	require.NoError(t, err)
	p := pred(root)

	n := elem("div", Attribute{Name: NewQName("class"), Value: "btn active large"})
	other := elem("div", Attribute{Name: NewQName("class"), Value: "btn large"})

	assert.True(t, p(n))
	assert.False(t, p(other))
}

func TestAttributeCountBetween(t *testing.T) {
	_, err := AttributeCountBetween(3, 1)
	assert.Error(t, err)

	root := NewElement(NewQName("root"))
	pred, err := AttributeCountBetween(1, 2)
	require.NoError(t, err)
	p := pred(root)

	assert.False(t, p(elem("div")))
	assert.True(t, p(elem("div", Attribute{Name: NewQName("id")})))
	assert.False(t, p(elem("div",
		Attribute{Name: NewQName("id")},
		Attribute{Name: NewQName("class")},
		Attribute{Name: NewQName("data-x")},
	)))
}
