package types

type (
	// DirectoryMapParams selects a workspace directory and extension to index.
	DirectoryMapParams struct {
		Path string `json:"path"`
		Type string `json:"type"`
	}

	// MappedFile is one entry of a directory map listing.
	MappedFile struct {
		Key  string `json:"key"`
		Path string `json:"path"`
		Base string `json:"base"`
		URI  string `json:"uri,omitempty"`
	}

	// DirectoryMapListing is a directory map flattened in traversal order.
	DirectoryMapListing struct {
		Root  string       `json:"root"`
		Files []MappedFile `json:"files"`
	}

	// PathFilterConfig contains configuration for the path filter.
	PathFilterConfig struct {
		IgnoredPatterns []string `json:"ignoredPatterns"`
	}
)
