package markuplift

import "strings"

// renderCDATA renders s as one or more CDATA sections, splitting on every
// forbidden "]]>" occurrence so no emitted section ever contains it. Empty
// content yields a single empty section.
func renderCDATA(s string) string {
	if s == "" {
		return "<![CDATA[]]>"
	}
	var b strings.Builder
	for {
		idx := strings.Index(s, "]]>")
		if idx == -1 {
			b.WriteString("<![CDATA[")
			b.WriteString(s)
			b.WriteString("]]>")
			break
		}
		// Close the section right after the "]]", so the final ">" falls
		// outside it, then escape that ">" and reopen for the remainder.
		b.WriteString("<![CDATA[")
		b.WriteString(s[:idx+2])
		b.WriteString("]]>")
		b.WriteString("&gt;")
		s = s[idx+3:]
	}
	return b.String()
}
