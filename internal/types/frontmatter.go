package types

// FrontMatterResult is the outcome of splitting a leading metadata block
// off a markdown document.
type FrontMatterResult struct {
	CleanBody       string         `json:"cleanBody"`
	ExtractedValues map[string]any `json:"extractedValues"`
	HasFrontMatter  bool           `json:"hasFrontMatter"`
}
