package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate_Valid(t *testing.T) {
	tmpl, err := NewTemplate("api-docs-template.md", "## Overview\nSome text\n")
	require.NoError(t, err)
	assert.Equal(t, "api-docs-template.md", tmpl.Source)
	assert.Equal(t, "## Overview\nSome text\n", tmpl.Content)
}

func TestNewTemplate_Empty(t *testing.T) {
	_, err := NewTemplate("empty.md", "")
	assert.ErrorIs(t, err, ErrEmptyTemplate)
}

func TestNewTemplate_WhitespaceOnly(t *testing.T) {
	_, err := NewTemplate("blank.md", "  \n\t\n")
	assert.ErrorIs(t, err, ErrEmptyTemplate)
}

func TestTemplate_Lines(t *testing.T) {
	tmpl, err := NewTemplate("t.md", "a\nb\nc")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tmpl.Lines())
}
