// Package frontmatter handles YAML frontmatter parsing and stringification.
package frontmatter

import (
	"fmt"
	"strings"

	"github.com/taigrr/deepkit/extend"
	"github.com/taigrr/deepkit/internal/types"
	"github.com/taigrr/deepkit/value"
)

const delimiter = "---\n"

// Handler handles frontmatter parsing and validation.
type Handler struct{}

// New creates a new Handler.
func New() *Handler {
	return &Handler{}
}

// Parse splits a note into its frontmatter mapping and body. Notes without a
// well-formed mapping block come back with an empty frontmatter and the full
// content as body.
func (h *Handler) Parse(content string) types.ParsedNote {
	result := types.ParsedNote{
		Frontmatter:     value.NewMap(),
		Content:         content,
		OriginalContent: content,
	}

	if !strings.HasPrefix(content, delimiter) {
		return result
	}
	rest := content[len(delimiter):]

	var yamlContent, body string
	switch {
	case strings.HasPrefix(rest, delimiter):
		body = rest[len(delimiter):]
	case strings.Contains(rest, "\n"+delimiter):
		end := strings.Index(rest, "\n"+delimiter)
		yamlContent = rest[:end]
		body = rest[end+1+len(delimiter):]
	case strings.HasSuffix(rest, "\n---"):
		yamlContent = strings.TrimSuffix(rest, "\n---")
	default:
		return result
	}

	parsed, err := value.Parse([]byte(yamlContent))
	if err != nil {
		// Not YAML; leave the note untouched.
		return result
	}
	switch fm := parsed.(type) {
	case nil:
	case *value.Map:
		result.Frontmatter = fm
	default:
		return result
	}

	result.Content = body
	result.HasFrontmatter = true
	return result
}

// Stringify converts frontmatter and content back to a note string.
func (h *Handler) Stringify(frontmatter *value.Map, content string) (string, error) {
	if frontmatter == nil || frontmatter.Len() == 0 {
		return content, nil
	}

	yamlBytes, err := value.Marshal(frontmatter, value.FormatYAML)
	if err != nil {
		return "", fmt.Errorf("failed to stringify frontmatter: %w", err)
	}

	return delimiter + string(yamlBytes) + delimiter + content, nil
}

// Validate validates frontmatter data.
func (h *Handler) Validate(frontmatter *value.Map) types.FrontmatterValidationResult {
	result := types.FrontmatterValidationResult{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}

	h.checkForProblematicValues(frontmatter, &result, "")

	if result.IsValid {
		if _, err := value.Marshal(frontmatter, value.FormatYAML); err != nil {
			result.IsValid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid YAML structure: %v", err))
		}
	}

	return result
}

func (h *Handler) checkForProblematicValues(v value.Value, result *types.FrontmatterValidationResult, path string) {
	switch t := v.(type) {
	case *value.Func:
		result.Errors = append(result.Errors, fmt.Sprintf("Functions are not allowed in frontmatter at path: %s", path))
		result.IsValid = false

	case *value.List:
		if t == nil {
			return
		}
		for i, item := range t.Values() {
			h.checkForProblematicValues(item, result, fmt.Sprintf("%s[%d]", path, i))
		}

	case *value.Map:
		if t == nil {
			return
		}
		for _, key := range t.Keys() {
			currentPath := key
			if path != "" {
				currentPath = path + "." + key
			}
			if strings.TrimSpace(key) == "" {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Blank key at path: %s", currentPath))
			}
			item, _ := t.Get(key)
			h.checkForProblematicValues(item, result, currentPath)
		}
	}
}

// ExtractFrontmatter extracts frontmatter from content without the content body.
func (h *Handler) ExtractFrontmatter(content string) *value.Map {
	return h.Parse(content).Frontmatter
}

// UpdateFrontmatter deep-merges updates into the note's frontmatter. Nested
// mappings are merged key by key; lists and scalars in updates replace the
// existing values.
func (h *Handler) UpdateFrontmatter(content string, updates *value.Map) (string, error) {
	parsed := h.Parse(content)
	if updates == nil {
		updates = value.NewMap()
	}

	merged, ok := extend.Extend(parsed.Frontmatter, updates, false).(*value.Map)
	if !ok {
		return "", fmt.Errorf("frontmatter updates must be a mapping")
	}

	validation := h.Validate(merged)
	if !validation.IsValid {
		return "", fmt.Errorf("invalid frontmatter: %s", strings.Join(validation.Errors, ", "))
	}

	return h.Stringify(merged, parsed.Content)
}
