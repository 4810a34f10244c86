package types

type (
	// DraftInfo describes a markdown draft in the drafts directory.
	DraftInfo struct {
		Path           string `json:"path"`
		Size           int64  `json:"size"`
		Modified       int64  `json:"modified"` // timestamp in milliseconds
		HasFrontMatter bool   `json:"hasFrontMatter"`
		Title          string `json:"title,omitempty"`
	}

	// DraftReport is the validation outcome for a single draft.
	DraftReport struct {
		Path   string           `json:"path"`
		Result ValidationResult `json:"result"`
	}
)
