package markuplift

// Fixed tag tables backing the built-in HTML5/CSS domain predicate
// factories. These mirror the WHATWG element categorization.
var (
	htmlBlockElementTags = []string{
		"address", "article", "aside", "blockquote", "details", "dialog",
		"dd", "div", "dl", "dt", "fieldset", "figcaption", "figure", "footer",
		"form", "h1", "h2", "h3", "h4", "h5", "h6", "header", "hgroup", "hr",
		"li", "main", "nav", "ol", "p", "pre", "section", "table", "ul",
		"html", "head", "body", "tr", "td", "th", "thead", "tbody", "tfoot",
		"colgroup", "option", "optgroup", "select",
	}

	htmlInlineElementTags = []string{
		"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn",
		"em", "i", "kbd", "mark", "q", "rp", "rt", "ruby", "s", "samp",
		"small", "span", "strong", "sub", "sup", "time", "u", "var", "wbr",
		"button", "input", "label", "textarea", "img", "audio", "video",
		"iframe", "embed", "object",
	}

	// htmlVoidElementTags is the WHATWG void-element enumeration: exactly
	// 13 entries, never more, never fewer.
	htmlVoidElementTags = []string{
		"area", "base", "br", "col", "embed", "hr", "img", "input", "link",
		"meta", "source", "track", "wbr",
	}

	htmlWhitespaceSignificantTags = []string{"pre", "textarea", "script", "style"}

	htmlMetadataElementTags = []string{"base", "link", "meta", "noscript", "script", "style", "title"}

	cssBlockElementTags = []string{
		"address", "article", "aside", "blockquote", "details", "dialog",
		"dd", "div", "dl", "dt", "fieldset", "figcaption", "figure", "footer",
		"form", "h1", "h2", "h3", "h4", "h5", "h6", "header", "hgroup", "hr",
		"li", "main", "nav", "ol", "p", "section", "table", "ul",
	}
)

func tagSetFactory(tags []string) ElementPredicateFactory {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return func(root *Node) ElementPredicate {
		return func(n *Node) bool {
			if n.Type != ElementNode {
				return false
			}
			_, ok := set[n.Tag.Local]
			return ok
		}
	}
}

// HTMLBlockElements matches the HTML5 elements that are block-level by
// default.
func HTMLBlockElements() ElementPredicateFactory { return tagSetFactory(htmlBlockElementTags) }

// HTMLInlineElements matches the HTML5 elements that are inline by default.
func HTMLInlineElements() ElementPredicateFactory { return tagSetFactory(htmlInlineElementTags) }

// HTMLVoidElements matches the 13 WHATWG void elements.
func HTMLVoidElements() ElementPredicateFactory { return tagSetFactory(htmlVoidElementTags) }

// HTMLWhitespaceSignificantElements matches <pre>, <textarea>, <script>,
// and <style>.
func HTMLWhitespaceSignificantElements() ElementPredicateFactory {
	return tagSetFactory(htmlWhitespaceSignificantTags)
}

// HTMLMetadataElements matches document-metadata elements.
func HTMLMetadataElements() ElementPredicateFactory { return tagSetFactory(htmlMetadataElementTags) }

// CSSBlockElements matches elements whose user-agent stylesheet default is
// display:block (a superset relevant to strip-whitespace defaults).
func CSSBlockElements() ElementPredicateFactory { return tagSetFactory(cssBlockElementTags) }

// HTMLVoidElementTags returns a defensive copy of the 13-entry void element
// table, exposed for callers (and tests) that need the raw list rather than
// a predicate.
func HTMLVoidElementTags() []string {
	out := make([]string, len(htmlVoidElementTags))
	copy(out, htmlVoidElementTags)
	return out
}
