package markuplift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotationStore_UnannotatedNodeReadsZeroValues(t *testing.T) {
	store := newAnnotationStore()
	n := NewElement(NewQName("x"))
	assert.Equal(t, TypeUnset, store.Type(n))
	assert.Equal(t, WSUnset, store.Whitespace(n))
	assert.Equal(t, 0, store.LogicalLevel(n))
	assert.Equal(t, 0, store.PhysicalLevel(n))
}

func TestAnnotate_ConflictingExplicitBlockAndInlineReportsAnnotationConflictError(t *testing.T) {
	root := NewElement(NewQName("root"))
	child := NewElement(NewQName("p"))
	root.AppendChild(child)

	block, err := TagIn("p")
	require.NoError(t, err)
	inline, err := TagIn("p")
	require.NoError(t, err)

	f, err := New(Config{})
	require.NoError(t, err)

	cfg := &Config{BlockWhen: block, InlineWhen: inline}
	_, err = annotate(root, cfg, f)
	require.Error(t, err)

	var conflict *AnnotationConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "p", conflict.Tag)
	assert.Equal(t, "type", conflict.Key)
	assert.Equal(t, "block", conflict.Previous)
	assert.Equal(t, "inline", conflict.Next)
	assert.Equal(t, "p previously marked as block, cannot also mark as inline", conflict.Error())
}

func TestAnnotationConflictError_IsComparesTagAndKeyOnly(t *testing.T) {
	a := &AnnotationConflictError{Tag: "p", Key: "type", Previous: "block", Next: "inline"}
	b := &AnnotationConflictError{Tag: "p", Key: "type", Previous: "inline", Next: "block"}
	c := &AnnotationConflictError{Tag: "span", Key: "type", Previous: "block", Next: "inline"}
	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
}

func TestAnnotateExplicitType_NilFactoryIsANoOp(t *testing.T) {
	root := NewElement(NewQName("root"))
	store := newAnnotationStore()
	err := annotateExplicitType(root, nil, TypeBlock, store)
	require.NoError(t, err)
	assert.Equal(t, TypeUnset, store.Type(root))
}

func TestAnnotateMixedContentInline_PromotesElementAdjacentToSignificantText(t *testing.T) {
	root := NewElement(NewQName("p"))
	root.TextContent = Text("before ")
	child := NewElement(NewQName("b"))
	root.AppendChild(child)
	child.Tail = " after"

	store := newAnnotationStore()
	annotateMixedContentInline(root, store)
	assert.Equal(t, TypeInline, store.Type(child))
}

func TestAnnotateMixedContentInline_LeavesAlreadyAnnotatedElementAlone(t *testing.T) {
	root := NewElement(NewQName("p"))
	root.TextContent = Text("before ")
	child := NewElement(NewQName("b"))
	root.AppendChild(child)

	store := newAnnotationStore()
	store.get(child).typ = TypeBlock
	annotateMixedContentInline(root, store)
	assert.Equal(t, TypeBlock, store.Type(child))
}

func TestAnnotateInlineInheritance_DoesNotCrossBlockBoundary(t *testing.T) {
	root := NewElement(NewQName("root"))
	inlineParent := NewElement(NewQName("span"))
	blockChild := NewElement(NewQName("div"))
	grandchild := NewElement(NewQName("i"))

	root.AppendChild(inlineParent)
	inlineParent.AppendChild(blockChild)
	blockChild.AppendChild(grandchild)

	store := newAnnotationStore()
	store.get(inlineParent).typ = TypeInline
	store.get(blockChild).typ = TypeBlock

	annotateInlineInheritance(root, store, false)

	assert.Equal(t, TypeInline, store.Type(inlineParent))
	assert.Equal(t, TypeBlock, store.Type(blockChild))
	assert.Equal(t, TypeUnset, store.Type(grandchild))
}

func TestAnnotateBlockSubtreeInheritance_SkipsSiblingsOfAnInlineElement(t *testing.T) {
	parent := NewElement(NewQName("div"))
	a := NewElement(NewQName("a"))
	b := NewElement(NewQName("b"))
	parent.AppendChild(a)
	parent.AppendChild(b)

	store := newAnnotationStore()
	store.get(parent).typ = TypeBlock
	store.get(a).typ = TypeInline

	annotateBlockSubtreeInheritance(parent, store)

	assert.Equal(t, TypeInline, store.Type(a))
	assert.Equal(t, TypeUnset, store.Type(b))
}

func TestAnnotateBlockSubtreeInheritance_PromotesUnsetChildOfBlockParent(t *testing.T) {
	parent := NewElement(NewQName("div"))
	child := NewElement(NewQName("p"))
	parent.AppendChild(child)

	store := newAnnotationStore()
	store.get(parent).typ = TypeBlock

	annotateBlockSubtreeInheritance(parent, store)
	assert.Equal(t, TypeBlock, store.Type(child))
}

func TestAnnotatePreserveInheritance_StopsAtExplicitlyAnnotatedDescendant(t *testing.T) {
	root := NewElement(NewQName("root"))
	mid := NewElement(NewQName("pre"))
	leaf := NewElement(NewQName("code"))
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	store := newAnnotationStore()
	store.get(mid).ws = WSNormalize

	annotatePreserveInheritance(root, store, true)

	assert.Equal(t, WSPreserve, store.Whitespace(root))
	assert.Equal(t, WSNormalize, store.Whitespace(mid))
	assert.Equal(t, WSUnset, store.Whitespace(leaf))
}

func TestAnnotateXMLSpace_DefaultStopsPropagationWithoutRevertingOwnAnnotation(t *testing.T) {
	root := NewElement(NewQName("root"))
	mid := NewElement(NewQName("mid"))
	leaf := NewElement(NewQName("leaf"))
	root.AppendChild(mid)
	mid.AppendChild(leaf)
	mid.Attrs = []Attribute{{Name: NewQualifiedName(xmlNamespaceURI, "space"), Value: "default"}}

	store := newAnnotationStore()
	annotateXMLSpace(root, store, true)

	assert.Equal(t, WSStrict, store.Whitespace(root))
	assert.Equal(t, WSUnset, store.Whitespace(mid))
	assert.Equal(t, WSUnset, store.Whitespace(leaf))
}

func TestAnnotateXMLSpace_PreserveAttributeMarksStrict(t *testing.T) {
	root := NewElement(NewQName("root"))
	root.Attrs = []Attribute{{Literal: "xml:space", Value: "preserve"}}

	store := newAnnotationStore()
	annotateXMLSpace(root, store, false)
	assert.Equal(t, WSStrict, store.Whitespace(root))
}

func TestAnnotateDefaultType_OnlyFillsUnsetElements(t *testing.T) {
	root := NewElement(NewQName("root"))
	child := NewElement(NewQName("span"))
	root.AppendChild(child)

	store := newAnnotationStore()
	store.get(child).typ = TypeInline

	annotateDefaultType(root, TypeBlock, store)
	assert.Equal(t, TypeBlock, store.Type(root))
	assert.Equal(t, TypeInline, store.Type(child))
}

func TestAnnotateLogicalLevel_IsTreeDepthFromRoot(t *testing.T) {
	root := NewElement(NewQName("root"))
	mid := NewElement(NewQName("mid"))
	leaf := NewElement(NewQName("leaf"))
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	store := newAnnotationStore()
	annotateLogicalLevel(root, store, 0)

	assert.Equal(t, 0, store.LogicalLevel(root))
	assert.Equal(t, 1, store.LogicalLevel(mid))
	assert.Equal(t, 2, store.LogicalLevel(leaf))
}

func TestAnnotatePhysicalLevel_InlineParentDoesNotIncreaseChildLevel(t *testing.T) {
	root := NewElement(NewQName("root"))
	inlineChild := NewElement(NewQName("span"))
	grandchild := NewElement(NewQName("b"))
	root.AppendChild(inlineChild)
	inlineChild.AppendChild(grandchild)

	store := newAnnotationStore()
	store.get(root).typ = TypeBlock
	store.get(inlineChild).typ = TypeInline
	store.get(grandchild).typ = TypeBlock

	annotatePhysicalLevel(root, store, 0)

	assert.Equal(t, 0, store.PhysicalLevel(root))
	assert.Equal(t, 1, store.PhysicalLevel(inlineChild))
	assert.Equal(t, 1, store.PhysicalLevel(grandchild))
}
