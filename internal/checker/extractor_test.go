package checker

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ParseDirectory(t *testing.T) {
	ext := NewExtractor(nil)
	require.NoError(t, ext.ParseDirectory(filepath.Join("testdata", "sample")))

	comments := ext.DocComments()
	require.Len(t, comments, 6)

	names := make([]string, 0, len(comments))
	for _, dc := range comments {
		names = append(names, dc.Name)
		assert.NotEmpty(t, dc.File)
		assert.Positive(t, dc.Line)
		assert.NotEmpty(t, dc.Text)
	}
	assert.Contains(t, names, "Scale")
	assert.Contains(t, names, "Options")
	assert.Contains(t, names, "Options.Apply")
}

func TestExtractor_DocTextKeepsSectionIndentation(t *testing.T) {
	ext := NewExtractor(nil)
	require.NoError(t, ext.ParseDirectory(filepath.Join("testdata", "sample")))

	var scale DocComment
	for _, dc := range ext.DocComments() {
		if dc.Name == "Scale" {
			scale = dc
		}
	}
	require.NotEmpty(t, scale.Text)
	assert.Contains(t, scale.Text, "Args:\n    img (Image): the input image")
}

func TestExtractor_ExcludeFiles(t *testing.T) {
	ext := NewExtractor([]string{"sample.go"})
	require.NoError(t, ext.ParseDirectory(filepath.Join("testdata", "sample")))

	assert.Empty(t, ext.DocComments())
}

func TestExtractor_MissingDirectory(t *testing.T) {
	ext := NewExtractor(nil)
	assert.Error(t, ext.ParseDirectory(filepath.Join("testdata", "does-not-exist")))
}
