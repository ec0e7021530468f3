package lox

import (
	"fmt"
)

// IfFloat picks between two already-computed values by a condition; used by
// increment/decrement evaluation to choose the pre- or post-operation value
// without evaluating both branches twice.
func IfFloat(expr bool, x, y float64) float64 {
	if expr {
		return x
	}
	return y
}

// FloatVal formats a double the way the language's numbers print: integer-
// valued doubles drop their fractional part.
func FloatVal(v float64) string {
	text := fmt.Sprintf("%v", v)
	pos := len(text) - 2
	if pos > 0 && text[pos:] == ".0" {
		text = text[0:pos]
	}
	return text
}

// stringifyValue formats a single runtime value the way Print does, without
// access to interpreter-level configuration (array preview elision lives in
// Interpreter.stringify, which this is the non-configurable fallback for).
func stringifyValue(v interface{}) string {
	if v == nil {
		return "nil"
	}
	if f, ok := v.(float64); ok {
		return FloatVal(f)
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
