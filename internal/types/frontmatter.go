package types

import "github.com/taigrr/deepkit/value"

type (
	// MergeFrontmatterParams contains parameters for merging into a note's
	// frontmatter.
	MergeFrontmatterParams struct {
		Path  string     `json:"path"`
		Patch *value.Map `json:"patch"`
	}

	// FrontmatterValidationResult contains the result of frontmatter validation.
	FrontmatterValidationResult struct {
		IsValid  bool     `json:"isValid"`
		Errors   []string `json:"errors"`
		Warnings []string `json:"warnings"`
	}
)
