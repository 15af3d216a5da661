package docstring

import (
	"regexp"
	"strings"
)

// paramRegexp matches a parameter line: name, optional parenthesized type,
// colon, first line of the description.
var paramRegexp = regexp.MustCompile(`^(\w+)(?:\s+\(([^)]+)\))?:\s*(.*)$`)

// ParseArgs parses the content of an Args section into parameter records, in
// source order. Continuation lines indented at or beyond the level of the
// line immediately following a parameter line belong to that parameter's
// description and are joined with newlines. When type validation is enabled,
// failures are returned as an error (FailFast) or as collected message
// strings (CollectErrors).
func ParseArgs(content string, opts Options) ([]Parameter, []string, error) {
	var (
		params    []Parameter
		current   *Parameter
		descLines []string
	)
	indent := -1

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
		params = append(params, *current)
		current = nil
		descLines = nil
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if m := paramRegexp.FindStringSubmatch(stripped); m != nil {
			flush()
			current = &Parameter{Name: m[1], Type: m[2]}
			if m[3] != "" {
				descLines = append(descLines, m[3])
			}
			// The line immediately following the parameter line
			// establishes the continuation indent baseline.
			indent = -1
			if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
				next := lines[i+1]
				indent = len(next) - len(strings.TrimLeft(next, " "))
			}
			continue
		}

		if current == nil {
			continue
		}
		lineIndent := len(line) - len(strings.TrimLeft(line, " "))
		if indent < 0 || lineIndent >= indent {
			descLines = append(descLines, stripped)
		}
	}
	flush()

	if !opts.ValidateTypes {
		return params, nil, nil
	}
	var errs []string
	for _, p := range params {
		if p.Type == "" {
			continue
		}
		if err := opts.Validator.Validate(p.Type); err != nil {
			if opts.Mode != CollectErrors {
				return nil, nil, err
			}
			errs = append(errs, err.Error())
		}
	}
	return params, errs, nil
}
