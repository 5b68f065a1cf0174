package progress

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-biodata/pkg/formdata"
)

func recordWithRequired(n int) formdata.Record {
	record := formdata.Record{}
	for _, field := range RequiredFields[:n] {
		record[field] = "value"
	}
	return record
}

func TestEstimateEmptyState(t *testing.T) {
	report := Estimate(formdata.Record{}, false, false)
	if report.Completed != 0 || report.Percentage != 0 {
		t.Fatalf("expected zero progress, got %+v", report)
	}
	if got := report.Display(); got != "0% Complete" {
		t.Fatalf("display: got %q", got)
	}
}

func TestEstimateTemplateOnly(t *testing.T) {
	report := Estimate(formdata.Record{}, false, true)
	if report.Completed != 1 {
		t.Fatalf("completed: got %d, want 1", report.Completed)
	}
	if report.Percentage != 13 {
		t.Fatalf("percentage: got %d, want 13", report.Percentage)
	}
}

func TestEstimateRequiresAllFourBeforeFormCounts(t *testing.T) {
	for n := 0; n < len(RequiredFields); n++ {
		report := Estimate(recordWithRequired(n), false, false)
		if report.Completed != 0 {
			t.Fatalf("with %d required filled: completed %d, want 0", n, report.Completed)
		}
	}

	report := Estimate(recordWithRequired(4), false, false)
	if report.Completed != 1 {
		t.Fatalf("all required filled: completed %d, want 1", report.Completed)
	}
}

func TestEstimateOptionalFieldsRaiseFormScore(t *testing.T) {
	cases := []struct {
		optional      int
		wantCompleted int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{10, 3},
		{24, 5},
		{25, 6},
		{40, 6}, // capped
	}
	for _, tc := range cases {
		record := recordWithRequired(4)
		for i := 0; i < tc.optional; i++ {
			record[fmt.Sprintf("optional%02d", i)] = "x"
		}
		report := Estimate(record, false, false)
		if report.Completed != tc.wantCompleted {
			t.Fatalf("%d optional fields: completed %d, want %d", tc.optional, report.Completed, tc.wantCompleted)
		}
	}
}

func TestEstimateReachesExactlyOneHundred(t *testing.T) {
	record := recordWithRequired(4)
	for i := 0; i < 25; i++ {
		record[fmt.Sprintf("optional%02d", i)] = "x"
	}

	report := Estimate(record, true, true)
	if report.Completed != 8 {
		t.Fatalf("completed: got %d, want 8", report.Completed)
	}
	if report.Percentage != 100 {
		t.Fatalf("percentage: got %d, want 100", report.Percentage)
	}
	if got := report.Display(); got != "100% Complete" {
		t.Fatalf("display: got %q", got)
	}
}

func TestEstimateMonotonicInRequiredFields(t *testing.T) {
	record := formdata.Record{
		"hobbies":   "reading",
		"languages": "arabic",
	}

	prev := -1
	for n := 0; n <= len(RequiredFields); n++ {
		filled := record.Clone()
		for _, field := range RequiredFields[:n] {
			filled[field] = "value"
		}
		report := Estimate(filled, true, true)
		if report.Percentage < prev {
			t.Fatalf("progress decreased at %d required fields: %d -> %d", n, prev, report.Percentage)
		}
		prev = report.Percentage
	}
}

func TestEstimateUnfilledRequiredValuesDoNotCount(t *testing.T) {
	record := formdata.Record{
		"fullName":      "",
		"dateOfBirth":   "2000-01-15",
		"gender":        "female",
		"maritalStatus": "never_married",
	}
	report := Estimate(record, false, false)
	if report.Completed != 0 {
		t.Fatalf("empty required value must not count as filled, got %+v", report)
	}
}
