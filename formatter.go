package markuplift

import (
	"fmt"
	"os"
	"strings"
)

// Config holds every constructor option a Formatter accepts. All fields are
// optional. New replaces zero values with defaults: an IndentSize of 0
// becomes 2, an unset DefaultType becomes TypeBlock, and nil strategies
// become XMLEscaping, NullDoctype, XMLEmptyElement and
// NullAttributeFormatting. A nil ParsingStrategy stays nil, so only
// FormatTree and FormatElement work without one.
type Config struct {
	BlockWhen               ElementPredicateFactory
	InlineWhen              ElementPredicateFactory
	NormalizeWhitespaceWhen ElementPredicateFactory
	StripWhitespaceWhen     ElementPredicateFactory
	PreserveWhitespaceWhen  ElementPredicateFactory
	WrapAttributesWhen      ElementPredicateFactory

	ReformatTextWhen      []TextFormatterRule
	ReformatAttributeWhen []AttributeFormatterRule
	ReorderAttributesWhen []ReordererRule

	IndentSize  int
	DefaultType ElementType

	EscapingStrategy   EscapingStrategy
	ParsingStrategy    ParsingStrategy
	DoctypeStrategy    DoctypeStrategy
	EmptyElementStrat  EmptyElementStrategy
	AttributeFormatter AttributeFormattingStrategy
}

// Formatter is the general, strategy-parameterized pretty-printer. Use New
// to build one directly, or the XmlFormatter/Html5Formatter convenience
// constructors for the two documented façades.
type Formatter struct {
	cfg Config

	escaping       EscapingStrategy
	parsing        ParsingStrategy
	doctype        DoctypeStrategy
	emptyElement   EmptyElementStrategy
	attrFormatting AttributeFormattingStrategy
}

// New validates cfg and builds a Formatter. It fails only for a negative
// indent size or an unrecognized default type.
func New(cfg Config) (*Formatter, error) {
	if cfg.IndentSize < 0 {
		return nil, ErrNegativeIndentSize
	}
	if cfg.DefaultType != TypeBlock && cfg.DefaultType != TypeInline {
		if cfg.DefaultType != TypeUnset {
			return nil, ErrUnknownDefaultType
		}
		cfg.DefaultType = TypeBlock
	}
	if cfg.IndentSize == 0 {
		cfg.IndentSize = 2
	}

	f := &Formatter{cfg: cfg}
	f.escaping = orDefault[EscapingStrategy](cfg.EscapingStrategy, XMLEscaping{})
	f.parsing = cfg.ParsingStrategy
	f.doctype = orDefault[DoctypeStrategy](cfg.DoctypeStrategy, NullDoctype{})
	f.emptyElement = orDefault[EmptyElementStrategy](cfg.EmptyElementStrat, XMLEmptyElement{})
	f.attrFormatting = orDefault[AttributeFormattingStrategy](cfg.AttributeFormatter, NullAttributeFormatting{})
	return f, nil
}

// IndentSize returns the configured indent width, exposed so external
// TextTransformer/AttributeValueFormatter implementations (e.g. a CSS or
// JSON prettifier) that are re-entered with this Formatter can indent their
// own multi-line output consistently with the surrounding document.
func (f *Formatter) IndentSize() int { return f.cfg.IndentSize }

func orDefault[T any](v, def T) T {
	var zero T
	if any(v) == any(zero) {
		return def
	}
	return v
}

// DeriveOptions mirrors Config but every field is a pointer/optional
// override; nil/zero means "inherit from the base formatter".
type DeriveOptions struct {
	BlockWhen               ElementPredicateFactory
	InlineWhen              ElementPredicateFactory
	NormalizeWhitespaceWhen ElementPredicateFactory
	StripWhitespaceWhen     ElementPredicateFactory
	PreserveWhitespaceWhen  ElementPredicateFactory
	WrapAttributesWhen      ElementPredicateFactory
	ReformatTextWhen        []TextFormatterRule
	ReformatAttributeWhen   []AttributeFormatterRule
	ReorderAttributesWhen   []ReordererRule
	IndentSize              *int
	DefaultType             ElementType

	EscapingStrategy   EscapingStrategy
	ParsingStrategy    ParsingStrategy
	DoctypeStrategy    DoctypeStrategy
	EmptyElementStrat  EmptyElementStrategy
	AttributeFormatter AttributeFormattingStrategy
}

// Derive returns a new Formatter equal to f except for the fields set in
// overrides; unspecified fields are inherited from f.
func (f *Formatter) Derive(overrides DeriveOptions) (*Formatter, error) {
	cfg := f.cfg
	if overrides.BlockWhen != nil {
		cfg.BlockWhen = overrides.BlockWhen
	}
	if overrides.InlineWhen != nil {
		cfg.InlineWhen = overrides.InlineWhen
	}
	if overrides.NormalizeWhitespaceWhen != nil {
		cfg.NormalizeWhitespaceWhen = overrides.NormalizeWhitespaceWhen
	}
	if overrides.StripWhitespaceWhen != nil {
		cfg.StripWhitespaceWhen = overrides.StripWhitespaceWhen
	}
	if overrides.PreserveWhitespaceWhen != nil {
		cfg.PreserveWhitespaceWhen = overrides.PreserveWhitespaceWhen
	}
	if overrides.WrapAttributesWhen != nil {
		cfg.WrapAttributesWhen = overrides.WrapAttributesWhen
	}
	if overrides.ReformatTextWhen != nil {
		cfg.ReformatTextWhen = overrides.ReformatTextWhen
	}
	if overrides.ReformatAttributeWhen != nil {
		cfg.ReformatAttributeWhen = overrides.ReformatAttributeWhen
	}
	if overrides.ReorderAttributesWhen != nil {
		cfg.ReorderAttributesWhen = overrides.ReorderAttributesWhen
	}
	if overrides.IndentSize != nil {
		cfg.IndentSize = *overrides.IndentSize
	}
	if overrides.DefaultType != TypeUnset {
		cfg.DefaultType = overrides.DefaultType
	}
	if overrides.EscapingStrategy != nil {
		cfg.EscapingStrategy = overrides.EscapingStrategy
	}
	if overrides.ParsingStrategy != nil {
		cfg.ParsingStrategy = overrides.ParsingStrategy
	}
	if overrides.DoctypeStrategy != nil {
		cfg.DoctypeStrategy = overrides.DoctypeStrategy
	}
	if overrides.EmptyElementStrat != nil {
		cfg.EmptyElementStrat = overrides.EmptyElementStrat
	}
	if overrides.AttributeFormatter != nil {
		cfg.AttributeFormatter = overrides.AttributeFormatter
	}
	return New(cfg)
}

// FormatStr parses source as a whole document and formats it. doctype, when
// non-nil, overrides whatever DOCTYPE resolution would otherwise produce;
// xmlDeclaration requests a leading XML declaration line.
func (f *Formatter) FormatStr(source string, doctype *string, xmlDeclaration bool) (string, error) {
	if f.parsing == nil {
		return "", fmt.Errorf("markuplift: formatter has no ParsingStrategy configured")
	}
	doc, err := f.parsing.ParseString(source)
	if err != nil {
		return "", err
	}
	return f.FormatTree(doc, doctype, xmlDeclaration)
}

// FormatBytes is the []byte analogue of FormatStr.
func (f *Formatter) FormatBytes(source []byte, doctype *string, xmlDeclaration bool) (string, error) {
	if f.parsing == nil {
		return "", fmt.Errorf("markuplift: formatter has no ParsingStrategy configured")
	}
	doc, err := f.parsing.ParseBytes(source)
	if err != nil {
		return "", err
	}
	return f.FormatTree(doc, doctype, xmlDeclaration)
}

// FormatFile reads and formats the document at path.
func (f *Formatter) FormatFile(path string, doctype *string, xmlDeclaration bool) (string, error) {
	if f.parsing == nil {
		return "", fmt.Errorf("markuplift: formatter has no ParsingStrategy configured")
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	doc, err := f.parsing.ParseReader(file)
	if err != nil {
		return "", err
	}
	return f.FormatTree(doc, doctype, xmlDeclaration)
}

// FormatTree formats an already-parsed document node. It is also the
// shared tail of FormatStr/FormatBytes/FormatFile once parsing is done.
func (f *Formatter) FormatTree(doc *Node, doctype *string, xmlDeclaration bool) (string, error) {
	if doc.Type != DocumentNode {
		return "", fmt.Errorf("markuplift: FormatTree requires a Document node")
	}
	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("markuplift: document has no root element")
	}

	store, err := annotate(root, &f.cfg, f)
	if err != nil {
		return "", err
	}

	s := newSerializer(doc, store, &f.cfg, f)
	if err := s.run(doc); err != nil {
		return "", err
	}

	resolvedDoctype := resolveDoctype(doctype, false, f.doctype, doc.Doctype)

	var out strings.Builder
	if xmlDeclaration {
		out.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	}
	if resolvedDoctype != "" {
		out.WriteString(resolvedDoctype)
		out.WriteByte('\n')
	}
	out.WriteString(s.buf.String())
	return out.String(), nil
}

// FormatElement formats a detached subtree element. A subtree format call
// never auto-adds a DOCTYPE; doctype, if non-nil, is still honored as an
// explicit override.
func (f *Formatter) FormatElement(el *Node, doctype *string) (string, error) {
	if el.Type != ElementNode {
		return "", fmt.Errorf("markuplift: FormatElement requires an Element node")
	}
	store, err := annotate(el, &f.cfg, f)
	if err != nil {
		return "", err
	}
	s := newSerializer(el, store, &f.cfg, f)
	if err := s.run(el); err != nil {
		return "", err
	}

	resolvedDoctype := resolveDoctype(doctype, true, f.doctype, "")
	var out strings.Builder
	if resolvedDoctype != "" {
		out.WriteString(resolvedDoctype)
		out.WriteByte('\n')
	}
	out.WriteString(s.buf.String())
	return out.String(), nil
}

// Html5Formatter builds a Formatter bound to the HTML5 façade defaults:
// HTML5 escaping/parsing/DOCTYPE/empty-element/attribute strategies, and
// the documented default predicates for block, inline, preserve, and strip
// whitespace.
func Html5Formatter(overrides Config) (*Formatter, error) {
	cfg := overrides
	if cfg.BlockWhen == nil {
		cfg.BlockWhen = HTMLBlockElements()
	}
	if cfg.InlineWhen == nil {
		cfg.InlineWhen = HTMLInlineElements()
	}
	if cfg.PreserveWhitespaceWhen == nil {
		cfg.PreserveWhitespaceWhen = HTMLWhitespaceSignificantElements()
	}
	if cfg.StripWhitespaceWhen == nil {
		cfg.StripWhitespaceWhen = AllOf(NotMatching(HTMLWhitespaceSignificantElements()), CSSBlockElements())
	}
	if cfg.NormalizeWhitespaceWhen == nil {
		cfg.NormalizeWhitespaceWhen = NotMatching(HTMLWhitespaceSignificantElements())
	}
	if cfg.EscapingStrategy == nil {
		cfg.EscapingStrategy = HTML5Escaping{}
	}
	if cfg.ParsingStrategy == nil {
		cfg.ParsingStrategy = HTML5Parsing{}
	}
	if cfg.DoctypeStrategy == nil {
		cfg.DoctypeStrategy = HTML5Doctype{}
	}
	if cfg.EmptyElementStrat == nil {
		cfg.EmptyElementStrat = HTML5EmptyElement{}
	}
	if cfg.AttributeFormatter == nil {
		cfg.AttributeFormatter = HTML5AttributeFormatting{}
	}
	return New(cfg)
}

// XmlFormatter builds a Formatter bound to the XML-strict façade defaults:
// no default predicates, XML escaping/parsing/DOCTYPE/empty-element/
// attribute strategies.
func XmlFormatter(overrides Config) (*Formatter, error) {
	cfg := overrides
	if cfg.EscapingStrategy == nil {
		cfg.EscapingStrategy = XMLEscaping{}
	}
	if cfg.ParsingStrategy == nil {
		cfg.ParsingStrategy = XMLParsing{}
	}
	if cfg.DoctypeStrategy == nil {
		cfg.DoctypeStrategy = XMLDoctype{}
	}
	if cfg.EmptyElementStrat == nil {
		cfg.EmptyElementStrat = XMLEmptyElement{}
	}
	if cfg.AttributeFormatter == nil {
		cfg.AttributeFormatter = XMLAttributeFormatting{}
	}
	return New(cfg)
}
