// Package types provides type definitions for structured data used throughout the apidocs-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"strings"
)

// ErrEmptyTemplate indicates the template decoded to empty or whitespace-only content.
var ErrEmptyTemplate = errors.New("template content is empty")

// Template is the authoritative markdown source document to be validated
// and optionally published. It is immutable once constructed.
type Template struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

// NewTemplate constructs a Template from raw content.
// It returns ErrEmptyTemplate when the content is empty or whitespace-only,
// which is a fatal condition: no report can be produced for it.
func NewTemplate(source, content string) (*Template, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyTemplate
	}
	return &Template{Source: source, Content: content}, nil
}

// Lines splits the template content into lines without the trailing newlines.
func (t *Template) Lines() []string {
	return strings.Split(t.Content, "\n")
}
