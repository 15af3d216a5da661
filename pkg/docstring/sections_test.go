package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections_NoHeaders(t *testing.T) {
	got := SplitSections("Just a description.\n\nSecond paragraph.")

	require.Len(t, got, 1)
	assert.Equal(t, DescriptionSection, got[0].Name)
	assert.Equal(t, "Just a description.\n\nSecond paragraph.", got[0].Content)
}

func TestSplitSections_Basic(t *testing.T) {
	text := "Apply a transform.\n" +
		"\n" +
		"Args:\n" +
		"    img: the input image\n" +
		"\n" +
		"Returns:\n" +
		"    bool: success\n"

	got := SplitSections(text)

	require.Len(t, got, 3)
	assert.Equal(t, Section{Name: DescriptionSection, Content: "Apply a transform."}, got[0])
	assert.Equal(t, Section{Name: "Args", Content: "img: the input image"}, got[1])
	assert.Equal(t, Section{Name: "Returns", Content: "bool: success"}, got[2])
}

func TestSplitSections_RemovesOneIndentLevel(t *testing.T) {
	text := "Desc.\n" +
		"\n" +
		"Example:\n" +
		"    first line\n" +
		"        nested line\n" +
		"\n" +
		"    after a blank\n"

	got := SplitSections(text)

	require.Len(t, got, 2)
	// One level stripped, relative indentation and blank lines preserved.
	assert.Equal(t, "first line\n    nested line\n\nafter a blank", got[1].Content)
}

func TestSplitSections_MultiWordHeader(t *testing.T) {
	got := SplitSections("Desc.\n\nSee Also:\n    other things\n")

	require.Len(t, got, 2)
	assert.Equal(t, "See Also", got[1].Name)
	assert.Equal(t, "other things", got[1].Content)
}

func TestSplitSections_DuplicateHeaderOverwrites(t *testing.T) {
	text := "Desc.\n\nNote:\n    first\n\nNote:\n    second\n"

	got := SplitSections(text)

	require.Len(t, got, 2)
	assert.Equal(t, "Note", got[1].Name)
	assert.Equal(t, "second", got[1].Content)
}

func TestSplitSections_MalformedHeadersAreContent(t *testing.T) {
	// Trailing text after the colon and non-letter starts do not open sections.
	text := "Args: inline text\n1991:\n    more description\n"

	got := SplitSections(text)

	require.Len(t, got, 1)
	assert.Equal(t, DescriptionSection, got[0].Name)
}

func TestSplitSections_StableUnderReapplication(t *testing.T) {
	text := "Desc line.\n\nArgs:\n    x: value\n\nNotes:\n    a note\n"
	first := SplitSections(text)

	for _, sec := range first {
		again := SplitSections(sec.Content)
		require.Len(t, again, 1)
		assert.Equal(t, DescriptionSection, again[0].Name)
		assert.Equal(t, sec.Content, again[0].Content)
	}
}
