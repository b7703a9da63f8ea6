package markuplift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePermutation_Accepts(t *testing.T) {
	err := validatePermutation("div", []string{"b", "a", "c"}, []string{"a", "b", "c"})
	require.NoError(t, err)
}

func TestValidatePermutation_RejectsMissingExtraDup(t *testing.T) {
	err := validatePermutation("div", []string{"a", "b", "c"}, []string{"a", "a", "d"})
	require.Error(t, err)
	var verr *ReordererViolationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"b", "c"}, verr.Missing)
	assert.ElementsMatch(t, []string{"d"}, verr.Extra)
	assert.ElementsMatch(t, []string{"a"}, verr.Dups)
}

func TestBuiltinReorderers_ProducePermutations(t *testing.T) {
	names := []string{"id", "class", "data-x", "href", "aria-label"}

	for label, reorder := range map[string]AttributeReorderer{
		"sort":      sortReorderer,
		"prioritize": prioritizeReorderer("class", "id"),
		"defer":     deferReorderer("aria-label"),
	} {
		t.Run(label, func(t *testing.T) {
			out := reorder(append([]string(nil), names...))
			assert.NoError(t, validatePermutation("x", names, out))
		})
	}
}

func TestPrioritizeReorderer_FrontNamesLeadInOrder(t *testing.T) {
	reorder := prioritizeReorderer("class", "id")
	out := reorder([]string{"href", "id", "data-x", "class"})
	require.Len(t, out, 4)
	assert.Equal(t, []string{"class", "id"}, out[:2])
}

func TestDeferReorderer_BackNamesTrailInOrder(t *testing.T) {
	reorder := deferReorderer("aria-label", "tabindex")
	out := reorder([]string{"tabindex", "href", "aria-label", "id"})
	require.Len(t, out, 4)
	assert.Equal(t, []string{"aria-label", "tabindex"}, out[2:])
}

func TestSortReorderer_Alphabetical(t *testing.T) {
	out := sortReorderer([]string{"c", "a", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, out)
}
