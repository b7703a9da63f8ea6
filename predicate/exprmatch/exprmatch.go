// Package exprmatch provides an expr-lang based convenience element
// predicate: a user-supplied boolean expression, compiled once against a
// small evaluation environment (tag, attributes, text) and then evaluated
// per node.
package exprmatch

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	ml "github.com/markuplift/markuplift"
)

// env is the evaluation environment an expression sees: the element's tag
// local name, its attributes by name, and its own text content.
type env struct {
	Tag   string
	Attrs map[string]string
	Text  string
}

// Matches compiles src (an expr-lang boolean expression over tag/attrs/text)
// once at factory-construction time and returns an ElementPredicateFactory
// whose per-node closure is an O(1) program evaluation. A compile error is
// returned immediately rather than deferred to first use.
func Matches(src string) (ml.ElementPredicateFactory, error) {
	program, err := expr.Compile(src, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(root *ml.Node) ml.ElementPredicate {
		return func(n *ml.Node) bool {
			if n.Type != ml.ElementNode {
				return false
			}
			result, err := runProgram(program, elementEnv(n))
			if err != nil {
				return false
			}
			return result
		}
	}, nil
}

func elementEnv(n *ml.Node) env {
	attrs := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		attrs[a.Name.Local] = a.Value
	}
	return env{Tag: n.Tag.Local, Attrs: attrs, Text: n.TextContent.Data}
}

func runProgram(program *vm.Program, e env) (bool, error) {
	out, err := expr.Run(program, e)
	if err != nil {
		return false, err
	}
	b, _ := out.(bool)
	return b, nil
}
