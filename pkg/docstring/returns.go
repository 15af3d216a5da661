package docstring

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedReturns reports a Returns section whose type and description
// presence disagree: a type with no description, or a description with no
// recognizable leading type token. This always aborts the parse.
var ErrMalformedReturns = errors.New("malformed returns section")

// returnRegexp matches the first line of a Returns section: an optional
// "type:" prefix followed by the rest of the line.
var returnRegexp = regexp.MustCompile(`^(?:(\w+):\s*)?(.*)$`)

// noneLiteral is the only accepted typeless Returns content.
const noneLiteral = "None"

// ParseReturns parses the content of a Returns section. A section that is
// exactly "None" yields the None sentinel; otherwise both a leading type and
// a non-empty description are required. An empty section yields no record.
func ParseReturns(content string, opts Options) (*Return, []string, error) {
	first := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		first = content[:i]
	}
	first = strings.TrimSpace(first)
	if first == "" {
		return nil, nil, nil
	}

	m := returnRegexp.FindStringSubmatch(first)
	typ, desc := m[1], strings.TrimSpace(m[2])
	if typ == "" && desc == noneLiteral {
		return &Return{None: true}, nil, nil
	}
	if typ == "" || desc == "" {
		return nil, nil, fmt.Errorf("%w: %q", ErrMalformedReturns, first)
	}

	ret := &Return{Type: typ, Description: desc}
	if opts.ValidateTypes {
		if err := opts.Validator.Validate(typ); err != nil {
			if opts.Mode != CollectErrors {
				return nil, nil, err
			}
			return ret, []string{err.Error()}, nil
		}
	}
	return ret, nil, nil
}
