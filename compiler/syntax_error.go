package compiler

import (
	"fmt"
	"strings"
)

// SyntaxError reports a pattern the grammar cannot accept. Expected lists
// the token kinds the parser could have accepted at Offset, and Actual is
// the token found there.
type SyntaxError struct {
	Expected []string
	Actual   string
	Offset   int
	Message  string
}

func newUnexpectedTokenError(tok *token, expected ...tokenKind) *SyntaxError {
	kinds := make([]string, len(expected))
	for i, k := range expected {
		kinds[i] = string(k)
	}
	return &SyntaxError{
		Expected: kinds,
		Actual:   tok.String(),
		Offset:   tok.offset,
	}
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax error at %v: ", e.Offset)
	if e.Message != "" {
		fmt.Fprintf(&b, "%v; ", e.Message)
	}
	fmt.Fprintf(&b, "expected one of [%v], found '%v'", strings.Join(e.Expected, ", "), e.Actual)
	return b.String()
}
