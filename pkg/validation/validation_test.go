package validation

import "testing"

func TestNewReportIsValid(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if len(r.Errors) != 0 || len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Error("new report should be empty")
	}
}

func TestAddErrorInvalidates(t *testing.T) {
	r := NewReport()
	r.AddError(Result{
		Level:   LevelSchema,
		Message: "demand intercept must be positive",
		Param:   "demand.intercept",
	})

	if r.Valid {
		t.Error("report with errors should be invalid")
	}
	if r.Errors[0].Severity != SeverityError {
		t.Errorf("severity = %q, want %q", r.Errors[0].Severity, SeverityError)
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("summary = %q", r.Summary)
	}
}

func TestAddWarningKeepsValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelAnalytical, Message: "fare is near zero"})

	if !r.Valid {
		t.Error("warnings alone should not invalidate the report")
	}
	if r.Warnings[0].Severity != SeverityWarning {
		t.Errorf("severity = %q, want %q", r.Warnings[0].Severity, SeverityWarning)
	}
}

func TestMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Message: "w"})

	b := NewReport()
	b.AddError(Result{Message: "e"})
	b.AddInfo(Result{Message: "i"})

	a.Merge(b)

	if a.Valid {
		t.Error("merging an invalid report should invalidate")
	}
	if len(a.Errors) != 1 || len(a.Warnings) != 1 || len(a.Info) != 1 {
		t.Errorf("merged counts = %d/%d/%d, want 1/1/1",
			len(a.Errors), len(a.Warnings), len(a.Info))
	}
	if a.Summary != "1 errors, 1 warnings, 1 info" {
		t.Errorf("summary = %q", a.Summary)
	}
}
