// Package cssprop provides a prebuilt attribute-value formatter for CSS
// declaration lists: it parses a style attribute's value, sorts the
// declarations by property name, and rejoins them.
package cssprop

import (
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	ml "github.com/markuplift/markuplift"
)

type declaration struct {
	prop  string
	value string
}

// Format parses value as an inline CSS declaration list (the grammar a style
// attribute holds), sorts declarations by property name, and rejoins them as
// "prop: value;" pairs. It is an AttributeValueFormatter: wire it into
// Config.ReformatAttributeWhen for elements/attributes matched by
// HasAttribute("style") or similar.
//
// Malformed input (a parse error with no declarations recovered) is returned
// unchanged rather than erroring — an attribute value formatter has no
// channel to report failure, so leaving the value alone is the only safe
// fallback.
func Format(value string, f *ml.Formatter, physicalLevel int) string {
	decls, ok := parseDeclarations(value)
	if !ok || len(decls) == 0 {
		return value
	}
	sort.SliceStable(decls, func(i, j int) bool { return decls[i].prop < decls[j].prop })

	if len(decls) == 1 {
		return decls[0].prop + ": " + decls[0].value + ";"
	}

	indent := strings.Repeat(" ", f.IndentSize()*(physicalLevel+1))
	closeIndent := strings.Repeat(" ", f.IndentSize()*physicalLevel)
	var b strings.Builder
	for _, d := range decls {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(d.prop)
		b.WriteString(": ")
		b.WriteString(d.value)
		b.WriteByte(';')
	}
	b.WriteByte('\n')
	b.WriteString(closeIndent)
	return b.String()
}

func parseDeclarations(value string) ([]declaration, bool) {
	p := css.NewParser(parse.NewInputString(value), true)
	var decls []declaration
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			break
		}
		if gt != css.DeclarationGrammar && gt != css.CustomPropertyGrammar {
			continue
		}
		prop := string(data)
		var val strings.Builder
		for i, tok := range p.Values() {
			if i > 0 {
				val.WriteByte(' ')
			}
			val.Write(tok.Data)
		}
		decls = append(decls, declaration{prop: prop, value: val.String()})
	}
	return decls, len(decls) > 0
}
