package docstring

import (
	"fmt"
	"strings"
)

// ReferenceErrorCode enumerates reference-format failures.
type ReferenceErrorCode string

const (
	// MissingDash: several entries are present but one lacks a leading dash.
	MissingDash ReferenceErrorCode = "missing_dash"
	// DashInSingle: a single entry must not carry a leading dash.
	DashInSingle ReferenceErrorCode = "dash_in_single"
	// MissingColon: an entry has no description/source separator. A colon
	// inside a URL scheme does not count.
	MissingColon ReferenceErrorCode = "missing_colon"
	// EmptyDescription: the text before the separator is empty.
	EmptyDescription ReferenceErrorCode = "empty_description"
)

// ReferenceError reports a References section that cannot be interpreted as
// a citation list. It always aborts the parse; there is no collect mode for
// reference failures.
type ReferenceError struct {
	Code ReferenceErrorCode
	Line string
}

// Error implements the error interface for ReferenceError.
func (e *ReferenceError) Error() string {
	switch e.Code {
	case MissingDash:
		return fmt.Sprintf("reference entries must each start with a dash when several are present: %q", e.Line)
	case DashInSingle:
		return fmt.Sprintf("a single reference entry must not start with a dash: %q", e.Line)
	case MissingColon:
		return fmt.Sprintf("reference entry has no description colon: %q", e.Line)
	case EmptyDescription:
		return fmt.Sprintf("reference entry has an empty description: %q", e.Line)
	}
	return fmt.Sprintf("invalid reference entry: %q", e.Line)
}

// ParseReferences parses the content of a References section into citation
// records. Dash conventions are decided before colon formatting, so a lone
// dashed entry with no colon reports DashInSingle rather than MissingColon.
func ParseReferences(content string) ([]Reference, error) {
	entries := splitReferenceEntries(content)
	if len(entries) == 0 {
		return nil, nil
	}

	if len(entries) == 1 {
		if strings.HasPrefix(entries[0], "-") {
			return nil, &ReferenceError{Code: DashInSingle, Line: entries[0]}
		}
	} else {
		for _, e := range entries {
			if !strings.HasPrefix(e, "-") {
				return nil, &ReferenceError{Code: MissingDash, Line: e}
			}
		}
	}

	refs := make([]Reference, 0, len(entries))
	for _, entry := range entries {
		text := strings.TrimSpace(strings.TrimPrefix(entry, "-"))
		idx := descriptionColon(text)
		if idx < 0 {
			return nil, &ReferenceError{Code: MissingColon, Line: entry}
		}
		desc := strings.TrimSpace(text[:idx])
		if desc == "" {
			return nil, &ReferenceError{Code: EmptyDescription, Line: entry}
		}
		refs = append(refs, Reference{
			Description: desc,
			Source:      strings.TrimSpace(text[idx+1:]),
		})
	}
	return refs, nil
}

// splitReferenceEntries classifies lines into main entries and continuation
// lines. A dashed line or the first line always starts an entry; any other
// line starts one only when its indentation does not exceed the previous
// entry's and it contains a colon. Continuations are joined with single
// spaces.
func splitReferenceEntries(content string) []string {
	var entries []string
	prevIndent := 0
	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))

		main := strings.HasPrefix(stripped, "-") ||
			len(entries) == 0 ||
			(indent <= prevIndent && strings.Contains(stripped, ":"))
		if main {
			entries = append(entries, stripped)
			prevIndent = indent
			continue
		}
		entries[len(entries)-1] += " " + stripped
	}
	return entries
}

// descriptionColon returns the index of the first colon in s that is not a
// URL scheme separator ("scheme://"), or -1 when none exists.
func descriptionColon(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		if strings.HasPrefix(s[i:], "://") {
			continue
		}
		return i
	}
	return -1
}
