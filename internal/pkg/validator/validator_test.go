package validator

import (
	"testing"
)

func TestIsInSlice(t *testing.T) {
	hints := []string{"monthly", "daily"}
	if !IsInSlice("monthly", hints) || !IsInSlice("daily", hints) {
		t.Error("known values should be found")
	}
	if IsInSlice("weekly", hints) || IsInSlice("", hints) {
		t.Error("unknown values should not be found")
	}
}

func TestIsValidMonthYear(t *testing.T) {
	if !IsValidMonth(1) || !IsValidMonth(12) {
		t.Error("months 1 and 12 should be valid")
	}
	if IsValidMonth(0) || IsValidMonth(13) {
		t.Error("months 0 and 13 should be invalid")
	}
	if !IsValidYear(2024) {
		t.Error("year 2024 should be valid")
	}
	if IsValidYear(1999) || IsValidYear(2101) {
		t.Error("years outside 2000-2100 should be invalid")
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
		{Field: "data", Message: "file data is required"},
	}
	want := "month: month must be between 1 and 12; data: file data is required"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
	m := errs.ToMap()
	if m["month"] == "" || m["data"] == "" {
		t.Error("ToMap() missing fields")
	}
}
