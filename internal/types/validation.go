package types

// Severity is the weight of a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IssueCode identifies the kind of validation issue.
type IssueCode string

const (
	CodeValidationFailed    IssueCode = "validation_failed"
	CodeImageNotAbsolute    IssueCode = "image_not_absolute"
	CodeFrontMatterConflict IssueCode = "front_matter_conflict"
	CodeLiquidTagDetected   IssueCode = "liquid_tag_detected"
)

type (
	// ValidationIssue is a single finding of the article validator.
	ValidationIssue struct {
		Severity Severity  `json:"severity"`
		Code     IssueCode `json:"code"`
		Message  string    `json:"message"`
		Line     int       `json:"line,omitempty"`
	}

	// ValidationResult is the full report for one article. Valid is false
	// when any issue has error severity.
	ValidationResult struct {
		Valid  bool              `json:"valid"`
		Issues []ValidationIssue `json:"issues"`
	}
)

// Errors returns the error-severity issues.
func (r ValidationResult) Errors() []ValidationIssue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r ValidationResult) Warnings() []ValidationIssue {
	return r.filter(SeverityWarning)
}

func (r ValidationResult) filter(s Severity) []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.Issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}
