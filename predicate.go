package markuplift

import "regexp"

// ElementPredicate is the stage-2 closure of an element predicate factory: an
// O(1) membership test against whatever the factory precomputed in stage 1.
type ElementPredicate func(n *Node) bool

// ElementPredicateFactory is the stage-1 closure: document-scoped
// precomputation (e.g. building a set of matching nodes) that returns the
// per-node test.
type ElementPredicateFactory func(root *Node) ElementPredicate

// AttributePredicate is the attribute-layer analogue of ElementPredicate.
type AttributePredicate func(n *Node, name QName, value string) bool

// AttributePredicateFactory is the attribute-layer analogue of
// ElementPredicateFactory.
type AttributePredicateFactory func(root *Node) AttributePredicate

// AnyOf returns a factory matching a node iff at least one of fs matches it.
func AnyOf(fs ...ElementPredicateFactory) ElementPredicateFactory {
	return func(root *Node) ElementPredicate {
		preds := make([]ElementPredicate, len(fs))
		for i, f := range fs {
			preds[i] = f(root)
		}
		return func(n *Node) bool {
			for _, p := range preds {
				if p(n) {
					return true
				}
			}
			return false
		}
	}
}

// AllOf returns a factory matching a node iff every one of fs matches it.
func AllOf(fs ...ElementPredicateFactory) ElementPredicateFactory {
	return func(root *Node) ElementPredicate {
		preds := make([]ElementPredicate, len(fs))
		for i, f := range fs {
			preds[i] = f(root)
		}
		return func(n *Node) bool {
			for _, p := range preds {
				if !p(n) {
					return false
				}
			}
			return true
		}
	}
}

// NotMatching returns a factory matching a node iff f does not.
func NotMatching(f ElementPredicateFactory) ElementPredicateFactory {
	return func(root *Node) ElementPredicate {
		pred := f(root)
		return func(n *Node) bool { return !pred(n) }
	}
}

// AnyOfAttribute is the attribute-layer analogue of AnyOf.
func AnyOfAttribute(fs ...AttributePredicateFactory) AttributePredicateFactory {
	return func(root *Node) AttributePredicate {
		preds := make([]AttributePredicate, len(fs))
		for i, f := range fs {
			preds[i] = f(root)
		}
		return func(n *Node, name QName, value string) bool {
			for _, p := range preds {
				if p(n, name, value) {
					return true
				}
			}
			return false
		}
	}
}

// AllOfAttribute is the attribute-layer analogue of AllOf.
func AllOfAttribute(fs ...AttributePredicateFactory) AttributePredicateFactory {
	return func(root *Node) AttributePredicate {
		preds := make([]AttributePredicate, len(fs))
		for i, f := range fs {
			preds[i] = f(root)
		}
		return func(n *Node, name QName, value string) bool {
			for _, p := range preds {
				if !p(n, name, value) {
					return false
				}
			}
			return true
		}
	}
}

// NotMatchingAttribute is the attribute-layer analogue of NotMatching.
func NotMatchingAttribute(f AttributePredicateFactory) AttributePredicateFactory {
	return func(root *Node) AttributePredicate {
		pred := f(root)
		return func(n *Node, name QName, value string) bool { return !pred(n, name, value) }
	}
}

// Matcher is a normalized unary string predicate. Use NewMatcher to build
// one from a string, *regexp.Regexp, or func(string) bool.
type Matcher func(s string) bool

// NewMatcher normalizes v, which must be a string (exact match), a
// *regexp.Regexp (MatchString), or a func(string) bool, into a Matcher. Any
// other type is a configuration error.
func NewMatcher(v any) (Matcher, error) {
	switch m := v.(type) {
	case Matcher:
		return m, nil
	case string:
		return func(s string) bool { return s == m }, nil
	case *regexp.Regexp:
		return func(s string) bool { return m.MatchString(s) }, nil
	case func(string) bool:
		return Matcher(m), nil
	default:
		return nil, ErrInvalidMatcher
	}
}

// WithAttribute returns an attribute predicate factory that matches iff ef
// matches the owning element and the attribute name (and, if given, value)
// satisfy their matchers. name and value accept anything NewMatcher accepts.
func (ef ElementPredicateFactory) WithAttribute(name any, value ...any) (AttributePredicateFactory, error) {
	nameMatcher, err := NewMatcher(name)
	if err != nil {
		return nil, err
	}
	var valueMatcher Matcher
	if len(value) > 0 {
		valueMatcher, err = NewMatcher(value[0])
		if err != nil {
			return nil, err
		}
	}
	return func(root *Node) AttributePredicate {
		elemPred := ef(root)
		return func(n *Node, attrName QName, attrValue string) bool {
			if !elemPred(n) {
				return false
			}
			if !nameMatcher(attrName.Local) && !nameMatcher(attrName.Clark()) {
				return false
			}
			if valueMatcher != nil && !valueMatcher(attrValue) {
				return false
			}
			return true
		}
	}, nil
}
