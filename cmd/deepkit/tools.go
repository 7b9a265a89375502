package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/deepkit/internal/types"
)

type (
	// CloneInput contains parameters for cloning a document.
	CloneInput struct {
		Document string `json:"document" jsonschema:"YAML or JSON document to clone"`
		Format   string `json:"format,omitempty" jsonschema:"Output format: yaml or json (default: yaml)"`
	}

	// CloneOutput contains the cloned document.
	CloneOutput struct {
		Result string `json:"result"`
		Kind   string `json:"kind"`
	}

	// ExtendInput contains parameters for deep-merging two documents.
	ExtendInput struct {
		Target     string `json:"target" jsonschema:"YAML or JSON document to merge into (empty for none)"`
		Source     string `json:"source" jsonschema:"YAML or JSON document whose fields win"`
		InPlace    bool   `json:"inPlace,omitempty" jsonschema:"Merge into target without copying it first (default: false)"`
		Format     string `json:"format,omitempty" jsonschema:"Output format: yaml or json (default: yaml)"`
		OutputPath string `json:"outputPath,omitempty" jsonschema:"Optional path relative to the root to write the result to"`
	}

	// ExtendOutput contains the merged document.
	ExtendOutput struct {
		Result  string `json:"result"`
		Written string `json:"written,omitempty"`
	}

	// MapInput contains parameters for mapping a directory.
	MapInput struct {
		Path string `json:"path,omitempty" jsonschema:"Directory relative to the root (default: root)"`
		Type string `json:"type" jsonschema:"File extension to index, with or without the leading dot"`
	}

	// MapOutput contains the files found below a directory.
	MapOutput struct {
		Root  string             `json:"root"`
		Files []types.MappedFile `json:"files"`
		Total int                `json:"total"`
	}

	// ReadInput contains parameters for reading a document.
	ReadInput struct {
		Path   string `json:"path" jsonschema:"Path to a YAML, JSON or Markdown file relative to the root"`
		Format string `json:"format,omitempty" jsonschema:"Output format: yaml or json (default: yaml)"`
	}

	// ReadOutput contains a decoded document.
	ReadOutput struct {
		Result   string `json:"result"`
		Markdown bool   `json:"markdown,omitempty"`
	}

	// MergeFrontmatterInput contains parameters for patching note frontmatter.
	MergeFrontmatterInput struct {
		Path  string `json:"path" jsonschema:"Path to the Markdown note relative to the root"`
		Patch string `json:"patch" jsonschema:"YAML or JSON mapping merged into the frontmatter"`
	}

	// MergeFrontmatterOutput contains the frontmatter after the merge.
	MergeFrontmatterOutput struct {
		Success     bool   `json:"success"`
		Path        string `json:"path"`
		Frontmatter string `json:"frontmatter"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "clone",
		Description: "Deep-copy a YAML or JSON document and return it re-encoded. Key order is preserved.",
	}, handleClone)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extend",
		Description: "Deep-merge source into target. Nested mappings are merged key by key; lists, scalars and mismatched types from source replace the target value. Optionally writes the result to a file.",
	}, handleExtend)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "map_directory",
		Description: "Walk a directory breadth first and list every file with the given extension, keyed by its path relative to that directory. Symlinks are followed, but files that resolve outside the workspace are left out.",
	}, handleMapDirectory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_document",
		Description: "Read a YAML or JSON file, or the frontmatter of a Markdown note, and return it re-encoded.",
	}, handleReadDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_frontmatter",
		Description: "Deep-merge a mapping into a Markdown note's frontmatter and save the note. The body is left unchanged.",
	}, handleMergeFrontmatter)
}
