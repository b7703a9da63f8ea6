package markuplift

import "io"

// EscapingStrategy governs character escaping, quoting, and which
// characters require it. The core never branches on "is this HTML?"; it
// consults one of these.
type EscapingStrategy interface {
	// EscapeText escapes text content for tag n (RAWTEXT elements in the
	// HTML5 implementation pass content through verbatim).
	EscapeText(n *Node, s string) string
	// EscapeComment escapes a comment's text.
	EscapeComment(s string) string
	// QuoteAttribute renders value as a quoted attribute literal, including
	// the surrounding quote characters.
	QuoteAttribute(value string) string
}

// ParsingStrategy parses markup into the Node model. The engine itself
// never parses; only the façade invokes one of these.
type ParsingStrategy interface {
	ParseString(s string) (*Node, error)
	ParseBytes(b []byte) (*Node, error)
	ParseReader(r io.Reader) (*Node, error)
}

// DoctypeStrategy resolves the DOCTYPE line a format call should emit.
type DoctypeStrategy interface {
	DefaultDoctype() string
	ShouldEnsureDoctype() bool
}

// EmptyElementMode is how an element with no children and no significant
// text (after transforms) should be serialized.
type EmptyElementMode int

const (
	EmptyExplicit EmptyElementMode = iota
	EmptySelfClosing
	EmptyVoid
)

// EmptyElementStrategy decides EmptyElementMode for an empty element.
type EmptyElementStrategy interface {
	Mode(n *Node) EmptyElementMode
}

// AttributeFormattingStrategy combines built-in format rules (e.g. HTML5
// boolean-attribute minimization) with user-supplied formatters, returning
// the value to emit and whether the attribute should be minimized (emitted
// as a bare name with no `=value`).
type AttributeFormattingStrategy interface {
	// Format applies this strategy's built-in rules to attr, then — if
	// userFormat is non-nil (a reformat_attribute_when rule matched) —
	// applies it to the result. Returns the value to emit and whether the
	// attribute should be minimized (emitted as a bare name).
	Format(n *Node, attr Attribute, f *Formatter, physicalLevel int, userFormat AttributeValueFormatter) (value string, minimize bool)
}

// resolveDoctype implements the DOCTYPE resolution precedence: explicit
// caller doctype > never for subtree formatting > strategy default if
// should-ensure > parsed-document doctype > strategy default.
func resolveDoctype(explicit *string, isSubtree bool, strategy DoctypeStrategy, parsed string) string {
	if explicit != nil {
		return *explicit
	}
	if isSubtree {
		return ""
	}
	if strategy.ShouldEnsureDoctype() {
		return strategy.DefaultDoctype()
	}
	if parsed != "" {
		return parsed
	}
	return strategy.DefaultDoctype()
}
