// Package types defines the values passed between the article pipeline
// packages and the MCP handlers.
package types

// Parameter field names accepted by the article endpoints.
const (
	FieldTitle          = "title"
	FieldPublished      = "published"
	FieldDescription    = "description"
	FieldTags           = "tags"
	FieldSeries         = "series"
	FieldCanonicalURL   = "canonical_url"
	FieldMainImage      = "main_image"
	FieldOrganizationID = "organization_id"
)

// ParamFields lists the parameter vocabulary in the order fields are
// compared and merged.
var ParamFields = []string{
	FieldTitle,
	FieldPublished,
	FieldDescription,
	FieldTags,
	FieldSeries,
	FieldCanonicalURL,
	FieldMainImage,
	FieldOrganizationID,
}

type (
	// Params holds explicit article parameters. A missing key means the
	// field was not supplied; a key mapped to nil means it was explicitly
	// set to null.
	Params map[string]any

	// Conflict records a field whose front matter value differs from the
	// explicit parameter value.
	Conflict struct {
		Field            string `json:"field"`
		FrontMatterValue any    `json:"frontMatterValue"`
		JSONValue        any    `json:"jsonValue"`
	}

	// MergeResult is the outcome of merging front matter into explicit params.
	MergeResult struct {
		Body      string     `json:"body"`
		Params    Params     `json:"params"`
		Conflicts []Conflict `json:"conflicts"`
	}

	// ArticleInput is the parameter record checked before an article is
	// created or updated.
	ArticleInput struct {
		Title          *string `json:"title,omitempty"`
		BodyMarkdown   *string `json:"body_markdown,omitempty"`
		Tags           any     `json:"tags,omitempty"` // string or list of strings
		MainImage      *string `json:"main_image,omitempty"`
		CanonicalURL   *string `json:"canonical_url,omitempty"`
		Description    *string `json:"description,omitempty"`
		Published      *bool   `json:"published,omitempty"`
		Series         *string `json:"series,omitempty"`
		OrganizationID *int    `json:"organization_id,omitempty"`
	}
)

// Params converts the input into a parameter set containing only the
// supplied fields.
func (in ArticleInput) Params() Params {
	p := Params{}
	if in.Title != nil {
		p[FieldTitle] = *in.Title
	}
	if in.Published != nil {
		p[FieldPublished] = *in.Published
	}
	if in.Description != nil {
		p[FieldDescription] = *in.Description
	}
	if in.Tags != nil {
		p[FieldTags] = in.Tags
	}
	if in.Series != nil {
		p[FieldSeries] = *in.Series
	}
	if in.CanonicalURL != nil {
		p[FieldCanonicalURL] = *in.CanonicalURL
	}
	if in.MainImage != nil {
		p[FieldMainImage] = *in.MainImage
	}
	if in.OrganizationID != nil {
		p[FieldOrganizationID] = *in.OrganizationID
	}
	return p
}
