package markuplift

// html5BooleanAttrs are the HTML5 attributes whose presence alone carries
// meaning; their value is discarded and the attribute is minimized to a
// bare name.
var html5BooleanAttrs = map[string]struct{}{
	"async": {}, "autofocus": {}, "autoplay": {}, "checked": {},
	"controls": {}, "default": {}, "defer": {}, "disabled": {},
	"formnovalidate": {}, "hidden": {}, "ismap": {}, "itemscope": {},
	"loop": {}, "multiple": {}, "muted": {}, "nomodule": {},
	"novalidate": {}, "open": {}, "readonly": {}, "required": {},
	"reversed": {}, "selected": {},
}

func applyUserFormat(value string, f *Formatter, physicalLevel int, userFormat AttributeValueFormatter) string {
	if userFormat == nil {
		return value
	}
	return userFormat(value, f, physicalLevel)
}

// NullAttributeFormatting applies no built-in rules; it never minimizes an
// attribute and only ever runs a matching user formatter.
type NullAttributeFormatting struct{}

func (NullAttributeFormatting) Format(n *Node, attr Attribute, f *Formatter, physicalLevel int, userFormat AttributeValueFormatter) (string, bool) {
	return applyUserFormat(attr.Value, f, physicalLevel, userFormat), false
}

// XMLAttributeFormatting carries no built-in minimization rules of its own —
// XML has no concept of a boolean attribute — so it behaves like
// NullAttributeFormatting, kept as a distinct type for symmetry with the
// other XML-strategy types and so a future XML-specific rule has a home.
type XMLAttributeFormatting struct{}

func (XMLAttributeFormatting) Format(n *Node, attr Attribute, f *Formatter, physicalLevel int, userFormat AttributeValueFormatter) (string, bool) {
	return applyUserFormat(attr.Value, f, physicalLevel, userFormat), false
}

// HTML5AttributeFormatting minimizes the 22 WHATWG boolean attributes,
// discarding their value, before applying any user formatter.
type HTML5AttributeFormatting struct{}

func (HTML5AttributeFormatting) Format(n *Node, attr Attribute, f *Formatter, physicalLevel int, userFormat AttributeValueFormatter) (string, bool) {
	if _, boolean := html5BooleanAttrs[attr.Name.Local]; boolean {
		return applyUserFormat("", f, physicalLevel, userFormat), true
	}
	return applyUserFormat(attr.Value, f, physicalLevel, userFormat), false
}
