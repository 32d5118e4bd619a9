package homebrew

// IssueSeverity ranks validation issues. Error and critical block
// validity; info and warning never do.
type IssueSeverity string

// Issue severities, least to most severe
const (
	SeverityInfo     IssueSeverity = "info"
	SeverityWarning  IssueSeverity = "warning"
	SeverityError    IssueSeverity = "error"
	SeverityCritical IssueSeverity = "critical"
)

// Blocking reports whether the severity invalidates a character
func (s IssueSeverity) Blocking() bool {
	return s == SeverityError || s == SeverityCritical
}

// ValidationIssue is one rule violation or advisory surfaced by the
// rule checker
type ValidationIssue struct {
	Severity IssueSeverity
	Code     string
	Message  string
	Field    string
	// Suggestion is an optional fix hint; empty when there's nothing
	// actionable to say
	Suggestion string
}

// ValidationResult aggregates the issues from one validation pass.
// It holds no back-references; issues are plain values.
type ValidationResult struct {
	IsValid bool
	Issues  []ValidationIssue
	// Score is an optional compliance score in [0,1]; 0 when unset
	Score float64
}

// NewValidationResult builds a result from issues, deriving IsValid
func NewValidationResult(issues []ValidationIssue) *ValidationResult {
	result := &ValidationResult{
		IsValid: true,
		Issues:  issues,
	}
	for _, issue := range issues {
		if issue.Severity.Blocking() {
			result.IsValid = false
			break
		}
	}
	return result
}

// Violations returns the blocking issues only
func (r *ValidationResult) Violations() []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.Issues {
		if issue.Severity.Blocking() {
			out = append(out, issue)
		}
	}
	return out
}

// Warnings returns the non-blocking issues only
func (r *ValidationResult) Warnings() []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.Issues {
		if !issue.Severity.Blocking() {
			out = append(out, issue)
		}
	}
	return out
}
