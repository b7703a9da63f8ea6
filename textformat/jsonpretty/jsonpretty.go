// Package jsonpretty provides a prebuilt text formatter that pretty-prints
// JSON content, typically wired against <script type="application/json">
// bodies.
package jsonpretty

import (
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	ml "github.com/markuplift/markuplift"
)

// Format decodes content as arbitrary JSON and re-encodes it indented at
// physicalLevel, for use as a TextTransformer (Config.ReformatTextWhen).
// Invalid JSON is returned unchanged — like cssprop.Format, a TextTransformer
// has no error channel, so the only safe response to malformed input is to
// leave it alone.
func Format(content ml.Content, f *ml.Formatter, physicalLevel int) ml.Content {
	if content.CDATA {
		return content
	}
	trimmed := strings.TrimSpace(content.Data)
	if trimmed == "" {
		return content
	}

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return content
	}

	indent := strings.Repeat(" ", f.IndentSize())
	out, err := json.Marshal(&v, jsontext.WithIndent(indent))
	if err != nil {
		return content
	}

	pad := strings.Repeat(" ", f.IndentSize()*physicalLevel)
	reindented := reindent(string(out), pad)
	return ml.Content{Data: reindented}
}

// reindent prefixes every line after the first with pad, so multi-line
// output produced at indent level 0 lands at the caller's physical level.
func reindent(s, pad string) string {
	if pad == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
