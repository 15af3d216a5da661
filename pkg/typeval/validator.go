package typeval

import (
	"fmt"
	"strings"
)

// Code classifies a type annotation failure.
type Code int

const (
	// CodeBareContainer is a generic container used without element types.
	CodeBareContainer Code = iota
	// CodeUnbalancedClosing is a closing bracket with no matching opener.
	CodeUnbalancedClosing
	// CodeMismatchedPair is a closing bracket of the wrong kind.
	CodeMismatchedPair
	// CodeUnclosedBrackets is one or more openers left open at end of input.
	CodeUnclosedBrackets
)

// ValidationError reports an invalid type annotation. Token carries the
// offending token text where one exists.
type ValidationError struct {
	Code       Code
	Annotation string
	Token      string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	switch e.Code {
	case CodeBareContainer:
		return fmt.Sprintf("collection type %q must include element types (e.g., %s[str])", e.Token, e.Token)
	case CodeUnbalancedClosing:
		return fmt.Sprintf("unbalanced closing bracket %q in %q", e.Token, e.Annotation)
	case CodeMismatchedPair:
		return fmt.Sprintf("mismatched bracket pair at %q in %q", e.Token, e.Annotation)
	case CodeUnclosedBrackets:
		return fmt.Sprintf("unclosed brackets in %q", e.Annotation)
	}
	return fmt.Sprintf("invalid type annotation %q", e.Annotation)
}

// containersRequiringArgs lists generic container type names that must carry
// element types. Read-only after initialization.
var containersRequiringArgs = map[string]struct{}{
	"list": {}, "List": {},
	"dict": {}, "Dict": {},
	"set": {}, "Set": {},
	"frozenset": {}, "FrozenSet": {},
	"tuple": {}, "Tuple": {},
	"type": {}, "Type": {},
	"iterable": {}, "Iterable": {},
	"iterator": {}, "Iterator": {},
	"generator": {}, "Generator": {},
	"sequence": {}, "Sequence": {},
	"literal": {}, "Literal": {},
}

// isContainer reports whether ident names a container requiring element
// types, either bare or as the final segment of a dotted module path
// (typing.List, t.Dict).
func isContainer(ident string) bool {
	if _, ok := containersRequiringArgs[ident]; ok {
		return true
	}
	if i := strings.LastIndexByte(ident, '.'); i > 0 && i < len(ident)-1 {
		_, ok := containersRequiringArgs[ident[i+1:]]
		return ok
	}
	return false
}

// proseWordThreshold is the word count above which a "with" connective marks
// the string as prose rather than a type expression.
const proseWordThreshold = 3

// looksLikeProse reports whether the string reads as free text rather than a
// type expression. Such strings are not validated.
func looksLikeProse(s string) bool {
	words := strings.Fields(s)
	if len(words) <= proseWordThreshold {
		return false
	}
	for _, w := range words {
		if w == "with" {
			return true
		}
	}
	return false
}

// Validate checks a type annotation for bracket balance and bare generic
// containers. Strings that look like prose are skipped entirely.
func Validate(annotation string) error {
	if annotation == "" || looksLikeProse(annotation) {
		return nil
	}
	return validateTokens(annotation, tokenize(annotation))
}

// validateTokens runs one linear pass over the token stream with an explicit
// bracket stack. Bare-container failures fire at the token where they are
// detected, independent of nesting depth; unclosed brackets only at end of
// input.
func validateTokens(annotation string, toks []token) error {
	var stack []tokKind
	for i, tok := range toks {
		switch {
		case isOpener(tok.kind):
			stack = append(stack, tok.kind)
		case isCloser(tok.kind):
			if len(stack) == 0 {
				return &ValidationError{Code: CodeUnbalancedClosing, Annotation: annotation, Token: tok.text}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if closerFor(top) != tok.kind {
				return &ValidationError{Code: CodeMismatchedPair, Annotation: annotation, Token: tok.text}
			}
		case tok.kind == tkIdent && isContainer(tok.text):
			if i+1 >= len(toks) || !isOpener(toks[i+1].kind) {
				return &ValidationError{Code: CodeBareContainer, Annotation: annotation, Token: tok.text}
			}
		}
	}
	if len(stack) > 0 {
		return &ValidationError{Code: CodeUnclosedBrackets, Annotation: annotation}
	}
	return nil
}

// Validator is the default type annotation validator. The zero value is
// ready to use and safe for concurrent use.
type Validator struct{}

// Validate implements the docstring.TypeValidator contract.
func (Validator) Validate(annotation string) error {
	return Validate(annotation)
}
