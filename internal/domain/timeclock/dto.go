package timeclock

import (
	"github.com/openhris/timeclock-import-go/internal/pkg/validator"
)

// ========================================
// IMPORT DTOs
// ========================================

// FormatHint narrows which specialized parser runs first.
const (
	HintMonthly = "monthly"
	HintDaily   = "daily"
)

type ImportRequest struct {
	FileName string `json:"file_name"`
	Data     []byte `json:"-"`
	// Hint is the caller-declared layout ("monthly" or "daily"); it only
	// reorders detection, it never disables a parser.
	Hint  string `json:"hint"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
	// ActorID identifies the authenticated user for attribution only.
	ActorID string `json:"actor_id"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Data) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "data",
			Message: "file data is required",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Hint != "" && !validator.IsInSlice(r.Hint, []string{HintMonthly, HintDaily}) {
		errs = append(errs, validator.ValidationError{
			Field:   "hint",
			Message: "hint must be one of: monthly, daily",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RowIssue itemizes one error or warning, referencing the source row.
type RowIssue struct {
	Row          int    `json:"row"`
	EmployeeCode string `json:"employee_code,omitempty"`
	Message      string `json:"message"`
}

// Period is the reporting month/year context of one batch.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Per-employee rollup states, derived from day-level outcomes.
const (
	OutcomeSucceeded       = "succeeded"
	OutcomePartiallyFailed = "partially_failed"
	OutcomeFullyFailed     = "fully_failed"
)

type EmployeeOutcome struct {
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name,omitempty"`
	Succeeded    int    `json:"succeeded"`
	Failed       int    `json:"failed"`
	State        string `json:"state"`
}

// ImportReport is the single aggregate result of one batch. Success and
// failure are counted at day granularity; employee-level states are derived
// rollups. The report is built incrementally and immutable once returned.
type ImportReport struct {
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	Errors       []RowIssue        `json:"errors"`
	Warnings     []RowIssue        `json:"warnings"`
	Period       Period            `json:"period"`
	Employees    []EmployeeOutcome `json:"employees"`
}
