package debugger

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Evaluator evaluates the stop condition of a run-until.
//
// The result is negative if the text could not be evaluated, zero to keep
// stepping, and positive to stop.
type Evaluator interface {
	Evaluate(text string, symbols Symbols) int
}

// StarlarkEvaluator evaluates conditions as Starlark expressions, such as
// `IP == 0x1a` or `a > 3 and sp != 0xffff`.
type StarlarkEvaluator struct {
	Verbose bool
}

var _ Evaluator = (*StarlarkEvaluator)(nil)

// Evaluate the condition text.
func (se *StarlarkEvaluator) Evaluate(text string, symbols Symbols) (result int) {
	value, err := se.eval(text, symbols)
	if err != nil {
		if se.Verbose {
			log.Printf("debugger: %q: %v", text, err)
		}
		return -1
	}

	if value.Truth() {
		return 1
	}

	return 0
}

func (se *StarlarkEvaluator) eval(text string, symbols Symbols) (value starlark.Value, err error) {
	opts := syntax.FileOptions{}
	expr, err := opts.ParseExpr("condition", text, 0)
	if err != nil {
		return
	}

	env := starlark.StringDict{}
	syntax.Walk(expr, func(node syntax.Node) bool {
		ident, ok := node.(*syntax.Ident)
		if !ok || err != nil {
			return err == nil
		}
		if _, builtin := starlark.Universe[ident.Name]; builtin {
			return true
		}
		symbol, found := symbols.Symbol(ident.Name)
		if !found {
			err = ErrSymbolUnknown(ident.Name)
			return false
		}
		env[ident.Name] = starlark.MakeInt(symbol)
		return true
	})
	if err != nil {
		return
	}

	thread := &starlark.Thread{Name: "condition"}
	value, err = starlark.EvalExprOptions(&opts, thread, expr, env)
	return
}
