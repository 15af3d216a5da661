package docstring

import (
	"strings"

	"github.com/docstr-labs/docstr/pkg/typeval"
)

// Section names with dedicated parsers.
const (
	argsSection       = "Args"
	returnsSection    = "Returns"
	referencesSection = "References"
	referenceSection  = "Reference"
)

// Parse parses a Google-style docstring into a structured record. Empty
// input yields an empty record. Reference-format failures abort the parse
// regardless of mode; type validation failures abort in FailFast mode and
// accumulate into Errors in CollectErrors mode.
func Parse(text string, opts Options) (*Docstring, error) {
	if opts.Validator == nil {
		opts.Validator = typeval.Validator{}
	}

	doc := &Docstring{}
	text = strings.TrimSpace(text)
	if text == "" {
		return doc, nil
	}

	for _, sec := range SplitSections(text) {
		if err := doc.consumeSection(sec, opts); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (d *Docstring) consumeSection(sec Section, opts Options) error {
	switch sec.Name {
	case DescriptionSection:
		d.Description = sec.Content
	case argsSection:
		params, errs, err := ParseArgs(sec.Content, opts)
		if err != nil {
			return err
		}
		d.Args = params
		d.Errors = append(d.Errors, errs...)
	case returnsSection:
		ret, errs, err := ParseReturns(sec.Content, opts)
		if err != nil {
			return err
		}
		d.Returns = ret
		d.Errors = append(d.Errors, errs...)
	case referencesSection, referenceSection:
		// The first references key wins; a later sibling passes
		// through as an ordinary section.
		if d.ReferencesKey != "" {
			d.setOther(sec.Name, sec.Content)
			return nil
		}
		refs, err := ParseReferences(sec.Content)
		if err != nil {
			return err
		}
		d.References = refs
		d.ReferencesKey = sec.Name
	default:
		d.setOther(sec.Name, sec.Content)
	}
	return nil
}

func (d *Docstring) setOther(name, content string) {
	if d.Sections == nil {
		d.Sections = map[string]string{}
	}
	d.Sections[name] = strings.TrimRight(content, " \t\n")
}
