package markuplift

import (
	"errors"
	"fmt"
)

// Sentinel errors for simple, data-free configuration mistakes.
var (
	// ErrEmptyTagName is returned when a tag-name matcher is built from an
	// empty string.
	ErrEmptyTagName = errors.New("markuplift: tag name must not be empty")

	// ErrEmptyAttributeName is returned when an attribute-name matcher is
	// built from an empty string.
	ErrEmptyAttributeName = errors.New("markuplift: attribute name must not be empty")

	// ErrEmptyPITarget is returned when a processing-instruction predicate
	// is built with an empty target.
	ErrEmptyPITarget = errors.New("markuplift: processing instruction target must not be empty")

	// ErrInvalidMatcher is returned when a value passed where a Matcher is
	// expected is not a string, *regexp.Regexp, or func(string) bool.
	ErrInvalidMatcher = errors.New("markuplift: matcher must be a string, *regexp.Regexp, or func(string) bool")

	// ErrNegativeIndentSize is returned by New when Config.IndentSize < 0.
	ErrNegativeIndentSize = errors.New("markuplift: indent size must not be negative")

	// ErrUnknownDefaultType is returned by New when Config.DefaultType is
	// neither TypeBlock nor TypeInline.
	ErrUnknownDefaultType = errors.New("markuplift: default type must be block or inline")
)

// CountRangeError reports an invalid min/max attribute-count configuration
// (negative bound, or min greater than max).
type CountRangeError struct {
	Min, Max int
}

func (e *CountRangeError) Error() string {
	return fmt.Sprintf("markuplift: invalid attribute count range [%d, %d]", e.Min, e.Max)
}

// AnnotationConflictError reports that an element would receive two
// incompatible values for the same annotation key from explicit predicates.
type AnnotationConflictError struct {
	Tag      string
	Key      string
	Previous string
	Next     string
}

func (e *AnnotationConflictError) Error() string {
	return fmt.Sprintf("%s previously marked as %s, cannot also mark as %s", e.Tag, e.Previous, e.Next)
}

func (e *AnnotationConflictError) Is(target error) bool {
	var ac *AnnotationConflictError
	if errors.As(target, &ac) {
		return e.Tag == ac.Tag && e.Key == ac.Key
	}
	return false
}

// ReordererViolationError reports that a user-supplied attribute reorderer
// returned something other than a permutation of its input.
type ReordererViolationError struct {
	Tag     string
	Missing []string
	Extra   []string
	Dups    []string
}

func (e *ReordererViolationError) Error() string {
	msg := fmt.Sprintf("markuplift: attribute reorderer for <%s> did not return a permutation", e.Tag)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf("; missing: %v", e.Missing)
	}
	if len(e.Extra) > 0 {
		msg += fmt.Sprintf("; extra: %v", e.Extra)
	}
	if len(e.Dups) > 0 {
		msg += fmt.Sprintf("; duplicated: %v", e.Dups)
	}
	return msg
}

// UnsupportedContentError reports that the escaping dispatch was asked to
// render a content variant it has no handler for.
type UnsupportedContentError struct {
	Variant string
}

func (e *UnsupportedContentError) Error() string {
	return fmt.Sprintf("markuplift: no handler registered for content variant %q", e.Variant)
}
