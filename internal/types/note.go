// Package types defines the data structures shared by the workspace services
// and the MCP server.
package types

import "github.com/taigrr/deepkit/value"

type (
	// ParsedNote represents a Markdown note split into frontmatter and body.
	ParsedNote struct {
		Frontmatter     *value.Map `json:"frontmatter"`
		Content         string     `json:"content"`
		OriginalContent string     `json:"originalContent"`
		HasFrontmatter  bool       `json:"hasFrontmatter"`
	}

	// Document is a decoded workspace file.
	Document struct {
		Path  string      `json:"path"`
		Value value.Value `json:"value"`
		// Markdown is set when Value came from a note's frontmatter.
		Markdown bool `json:"markdown,omitempty"`
	}
)
