// Package typeval validates bracketed type annotations extracted from
// docstrings. It tokenizes a type expression into a typed token stream and
// checks bracket balance and the "no bare generic container" policy.
package typeval

import (
	"strconv"
	"strings"
)

// tokKind represents the kind of token in a type expression.
type tokKind int

const (
	tkIdent tokKind = iota
	tkLBracket
	tkRBracket
	tkLParen
	tkRParen
	tkLBrace
	tkRBrace
	tkComma
	// tkString is an identifier that was restored from a quoted string
	// literal. It never participates in container checks.
	tkString
)

// token represents a single token in a type expression.
type token struct {
	kind tokKind
	text string
}

// literalPlaceholder prefixes the positional placeholders substituted for
// quoted string literals before scanning.
const literalPlaceholder = "STR_LITERAL_"

// processStringLiterals replaces quoted string literals with positional
// placeholders so bracket characters inside literals (e.g. Literal["a,b"])
// are never treated as structural. It returns the processed string and the
// extracted literals in order, quotes included.
func processStringLiterals(s string) (string, []string) {
	var out strings.Builder
	var extracted []string
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '"' && c != '\'' {
			out.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(s[i+1:], c)
		if end < 0 {
			// Unterminated literal: keep the rest verbatim.
			out.WriteString(s[i:])
			break
		}
		out.WriteString(literalPlaceholder)
		out.WriteString(strconv.Itoa(len(extracted)))
		extracted = append(extracted, s[i:i+end+2])
		i += end + 2
	}
	return out.String(), extracted
}

// restoreLiteral maps an identifier that is purely a placeholder back to its
// original literal text.
func restoreLiteral(ident string, literals []string) (string, bool) {
	suffix, found := strings.CutPrefix(ident, literalPlaceholder)
	if !found {
		return "", false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 || n >= len(literals) {
		return "", false
	}
	return literals[n], true
}

// tokenize scans a type expression into tokens. Brackets and commas are
// single-character tokens, whitespace separates tokens without being emitted,
// and any other run of characters forms an identifier.
func tokenize(s string) []token {
	processed, literals := processStringLiterals(s)

	var toks []token
	i := 0
	for i < len(processed) {
		c := processed[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			i++
			continue
		}
		if kind, ok := bracketKinds[c]; ok {
			toks = append(toks, token{kind: kind, text: string(c)})
			i++
			continue
		}
		start := i
		for i < len(processed) && !isSeparator(processed[i]) {
			i++
		}
		toks = append(toks, identToken(processed[start:i], literals))
	}
	return toks
}

var bracketKinds = map[byte]tokKind{
	'[': tkLBracket,
	']': tkRBracket,
	'(': tkLParen,
	')': tkRParen,
	'{': tkLBrace,
	'}': tkRBrace,
	',': tkComma,
}

func isSeparator(c byte) bool {
	if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
		return true
	}
	_, ok := bracketKinds[c]
	return ok
}

func identToken(text string, literals []string) token {
	if lit, ok := restoreLiteral(text, literals); ok {
		return token{kind: tkString, text: lit}
	}
	return token{kind: tkIdent, text: text}
}

// isOpener reports whether the token opens a bracket pair.
func isOpener(k tokKind) bool {
	return k == tkLBracket || k == tkLParen || k == tkLBrace
}

// isCloser reports whether the token closes a bracket pair.
func isCloser(k tokKind) bool {
	return k == tkRBracket || k == tkRParen || k == tkRBrace
}

// closerFor returns the closing kind matching an opening bracket kind.
func closerFor(k tokKind) tokKind {
	switch k {
	case tkLBracket:
		return tkRBracket
	case tkLParen:
		return tkRParen
	case tkLBrace:
		return tkRBrace
	}
	return k
}
