package formdata

import (
	"time"
)

// FieldKind identifies the input control a snapshot value came from.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindSelect   FieldKind = "select"
	KindTextarea FieldKind = "textarea"
	KindCheckbox FieldKind = "checkbox"
	KindRadio    FieldKind = "radio"
)

// Field is the snapshot of a single named input at collection time. The UI
// collaborator hands the core a full snapshot on every relevant change; the
// core never reads toolkit state itself.
type Field struct {
	Name    string
	Kind    FieldKind
	Value   string
	Checked bool
}

// Collect rebuilds a Record from a field snapshot.
//
// Checkbox groups sharing a name collect into an ordered list of checked
// values in snapshot order; a group with nothing checked is still present with
// an empty list. Radio groups collapse to the single checked value and are
// absent when none is checked. Every other kind maps 1:1 name to value,
// including empty strings.
//
// When dateOfBirth parses as an ISO date, the age field is derived from it
// relative to now; age is never settable directly. Collect is a pure function
// of its inputs: collecting the same snapshot twice yields equal records.
func Collect(fields []Field, now time.Time) Record {
	record := make(Record)

	for _, field := range fields {
		if field.Name == "" || field.Name == AgeKey {
			continue
		}

		switch field.Kind {
		case KindCheckbox:
			list, _ := record[field.Name].([]string)
			if list == nil {
				list = []string{}
			}
			if field.Checked {
				list = append(list, field.Value)
			}
			record[field.Name] = list
		case KindRadio:
			if field.Checked {
				record[field.Name] = field.Value
			}
		default:
			record[field.Name] = field.Value
		}
	}

	if dob := record.String(DateOfBirthKey); dob != "" {
		if birth, err := time.ParseInLocation(isoDate, dob, now.Location()); err == nil {
			record[AgeKey] = Age(birth, now)
		}
	}

	return record
}

const isoDate = "2006-01-02"
