// Package progress estimates profile completion from the form record, the
// photo, and the template selection.
package progress

import (
	"fmt"
	"math"

	"github.com/goliatone/go-biodata/pkg/formdata"
)

// RequiredFields are the fields that must all be filled before the form
// contributes to completion.
var RequiredFields = []string{"fullName", "dateOfBirth", "gender", "maritalStatus"}

// totalSections is the fixed denominator: up to six form sections plus photo
// plus template.
const totalSections = 8

// Report is the estimator output.
type Report struct {
	Completed  int
	Percentage int
}

// Display renders the progress label shown next to the bar.
func (r Report) Display() string {
	return fmt.Sprintf("%d%% Complete", r.Percentage)
}

// Estimate computes the completion report.
//
// The formula is inherited and must not be "fixed": totalOptional counts every
// record key minus filledRequired, which double-counts required fields once
// they are filled. Changing it would change observable percentages, so it is
// preserved exactly.
func Estimate(record formdata.Record, hasPhoto, hasTemplate bool) Report {
	completed := 0

	filledRequired := 0
	for _, field := range RequiredFields {
		if record.Filled(field) {
			filledRequired++
		}
	}
	totalOptional := len(record) - filledRequired

	if filledRequired == len(RequiredFields) {
		completed += min(6, 1+totalOptional/5)
	}
	if hasPhoto {
		completed++
	}
	if hasTemplate {
		completed++
	}

	percentage := int(math.Round(float64(completed) / totalSections * 100))
	return Report{Completed: completed, Percentage: percentage}
}
