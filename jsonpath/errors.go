package jsonpath

import "fmt"

// SyntaxError is raised by the lexer and parser: it carries a span into the
// source text and a human-readable message. Lexer/parser errors abort
// compilation entirely; no partial AST is ever returned.
type SyntaxError struct {
	Message string
	Span    Span
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("jsonpath: syntax error at %s: %s", e.Span, e.Message)
}
