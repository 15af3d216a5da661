package checker

import (
	"errors"
	"fmt"
	"io"

	"github.com/docstr-labs/docstr/pkg/docstring"
)

// Finding is one diagnostic produced while checking a docstring.
type Finding struct {
	File    string
	Line    int
	Name    string
	Message string
}

// String formats the finding for lint output.
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d: %s in '%s'", f.File, f.Line, f.Message, f.Name)
}

// Checker runs the docstring parser over the doc comments found under the
// configured paths.
type Checker struct {
	cfg Config
}

// New allocates a Checker for the given configuration.
func New(cfg Config) *Checker {
	return &Checker{cfg: cfg}
}

// Run walks every configured path and returns the accumulated findings.
// Verbose progress, if enabled, is written to out.
func (c *Checker) Run(out io.Writer) ([]Finding, error) {
	ext := NewExtractor(c.cfg.ExcludeFiles)
	for _, p := range c.cfg.Paths {
		if err := ext.ParseDirectory(p); err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}

	var findings []Finding
	for _, dc := range ext.DocComments() {
		if c.cfg.Verbose && out != nil {
			fmt.Fprintf(out, "checking %s '%s'\n", dc.File, dc.Name)
		}
		findings = append(findings, c.CheckDocstring(dc)...)
	}
	return findings, nil
}

// CheckDocstring parses one doc comment in collect-errors mode and converts
// every failure into a finding.
func (c *Checker) CheckDocstring(dc DocComment) []Finding {
	opts := docstring.DefaultOptions()
	opts.Mode = docstring.CollectErrors

	doc, err := docstring.Parse(dc.Text, opts)
	if err != nil {
		var refErr *docstring.ReferenceError
		if errors.As(err, &refErr) && !c.cfg.CheckReferences {
			return nil
		}
		return []Finding{c.finding(dc, err.Error())}
	}

	var findings []Finding
	for _, msg := range doc.Errors {
		findings = append(findings, c.finding(dc, msg))
	}
	if c.cfg.RequireParamTypes {
		for _, p := range doc.Args {
			if p.Type == "" {
				findings = append(findings, c.finding(dc, fmt.Sprintf("parameter '%s' is missing a type annotation", p.Name)))
			}
		}
	}
	return findings
}

func (c *Checker) finding(dc DocComment, msg string) Finding {
	return Finding{File: dc.File, Line: dc.Line, Name: dc.Name, Message: msg}
}
