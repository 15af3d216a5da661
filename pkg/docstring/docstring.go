// Package docstring parses Google-style docstrings into structured records.
//
// A docstring is segmented into named sections by "Header:" lines; the Args,
// Returns and References sections are parsed into typed records, everything
// else passes through verbatim. Parsing is a pure computation over the input
// string and is safe to run concurrently.
package docstring

import "github.com/docstr-labs/docstr/pkg/typeval"

// Section is a named, indentation-normalized block of a docstring.
type Section struct {
	Name    string
	Content string
}

// Parameter describes one entry of an Args section. Type is empty when the
// parameter carried no parenthesized annotation.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Return describes the Returns section. None is set when the section is
// exactly the literal text "None"; otherwise Type and Description are both
// present.
type Return struct {
	None        bool   `json:"none,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Reference is a single citation from a References section.
type Reference struct {
	Description string `json:"description"`
	Source      string `json:"source"`
}

// Docstring is the parsed form of one documentation block.
type Docstring struct {
	Description string      `json:"description,omitempty"`
	Args        []Parameter `json:"args,omitempty"`
	Returns     *Return     `json:"returns,omitempty"`
	References  []Reference `json:"references,omitempty"`
	// ReferencesKey records which of "References"/"Reference" headed the
	// parsed citation list, as written in the source.
	ReferencesKey string `json:"-"`
	// Sections holds every section not consumed by a dedicated parser,
	// keyed by header name with trailing whitespace trimmed.
	Sections map[string]string `json:"sections,omitempty"`
	// Errors holds collected validation failures. Only populated in
	// CollectErrors mode, and omitted entirely when empty.
	Errors []string `json:"errors,omitempty"`
}

// Mode selects how type validation failures are reported.
type Mode int

const (
	// FailFast aborts the parse on the first validation failure.
	FailFast Mode = iota
	// CollectErrors accumulates validation failures into Docstring.Errors
	// instead of aborting. Reference-format failures still abort; they
	// have no collect mode.
	CollectErrors
)

// TypeValidator checks one type annotation extracted from a docstring.
type TypeValidator interface {
	Validate(annotation string) error
}

// Options configures Parse.
type Options struct {
	// ValidateTypes enables type annotation validation.
	ValidateTypes bool
	// Mode selects between fail-fast and collect-errors reporting.
	Mode Mode
	// Validator overrides the default type annotation validator. A nil
	// Validator selects typeval.Validator.
	Validator TypeValidator
}

// DefaultOptions returns the options Parse applies by default: type
// validation on, fail-fast reporting.
func DefaultOptions() Options {
	return Options{ValidateTypes: true, Validator: typeval.Validator{}}
}
