package types

type (
	// LiquidTagMatch is a single liquid tag found in a markdown document.
	LiquidTagMatch struct {
		Tag           string `json:"tag"`
		Argument      string `json:"argument"`
		FullMatch     string `json:"fullMatch"`
		LineNumber    int    `json:"lineNumber"`
		CrossPostSafe bool   `json:"crossPostSafe"`
		HasEndTag     bool   `json:"hasEndTag"`
	}

	// LiquidTagReport lists the liquid tags of a document ordered by line.
	LiquidTagReport struct {
		Tags               []LiquidTagMatch `json:"tags"`
		HasCrossPostUnsafe bool             `json:"hasCrossPostUnsafe"`
	}
)
