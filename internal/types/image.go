package types

// ImageReference is an image URL referenced from markdown or an <img> element.
type ImageReference struct {
	URL        string `json:"url"`
	LineNumber int    `json:"lineNumber"`
	IsAbsolute bool   `json:"isAbsolute"`
}
