package docstring

import (
	"regexp"
	"strings"
)

// DescriptionSection names the implicit section before any header.
const DescriptionSection = "Description"

// headerRegexp matches a section header on a whitespace-trimmed line: words
// starting with a letter, ending with a bare colon, nothing else.
var headerRegexp = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 ]+):$`)

// SplitSections segments a docstring into ordered named sections. The text
// before any header forms the implicit Description section. The first content
// line after a header establishes the section's indent level; exactly that
// many leading spaces are stripped from subsequent lines that carry them, so
// relative indentation within a section is preserved. Splitting never fails;
// malformed headers are treated as content.
func SplitSections(text string) []Section {
	var (
		sections []Section
		content  []string
	)
	current := DescriptionSection
	indent := -1 // unestablished until the first content line

	flush := func() {
		if len(content) == 0 {
			return
		}
		setSection(&sections, current, strings.TrimSpace(strings.Join(content, "\n")))
		content = nil
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		// Leading blank lines before any content are discarded.
		if stripped == "" && len(content) == 0 {
			continue
		}

		if m := headerRegexp.FindStringSubmatch(stripped); m != nil {
			flush()
			current = m[1]
			indent = -1
			continue
		}

		if indent < 0 && stripped != "" {
			indent = len(line) - len(strings.TrimLeft(line, " "))
		}
		if indent > 0 && strings.HasPrefix(line, strings.Repeat(" ", indent)) {
			line = line[indent:]
		}
		content = append(content, line)
	}
	flush()
	return sections
}

// setSection appends a section, or overwrites the content of an earlier
// section with the same name. Names are unique within a docstring.
func setSection(sections *[]Section, name, content string) {
	for i := range *sections {
		if (*sections)[i].Name == name {
			(*sections)[i].Content = content
			return
		}
	}
	*sections = append(*sections, Section{Name: name, Content: content})
}
