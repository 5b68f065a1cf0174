package formdata

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var collectNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func TestCollectBasicKinds(t *testing.T) {
	fields := []Field{
		{Name: "fullName", Kind: KindText, Value: "Amina"},
		{Name: "gender", Kind: KindSelect, Value: "female"},
		{Name: "aboutYourself", Kind: KindTextarea, Value: ""},
		{Name: "maritalStatus", Kind: KindRadio, Value: "never_married", Checked: true},
		{Name: "maritalStatus", Kind: KindRadio, Value: "divorced", Checked: false},
	}

	got := Collect(fields, collectNow)
	want := Record{
		"fullName":      "Amina",
		"gender":        "female",
		"aboutYourself": "",
		"maritalStatus": "never_married",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectCheckboxGroupPreservesOrder(t *testing.T) {
	fields := []Field{
		{Name: "religiousPractices", Kind: KindCheckbox, Value: "daily_prayers", Checked: true},
		{Name: "religiousPractices", Kind: KindCheckbox, Value: "fasting", Checked: false},
		{Name: "religiousPractices", Kind: KindCheckbox, Value: "quran_reading", Checked: true},
	}

	got := Collect(fields, collectNow)
	want := []string{"daily_prayers", "quran_reading"}
	if diff := cmp.Diff(want, got.List("religiousPractices")); diff != "" {
		t.Fatalf("checkbox order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectCheckboxGroupWithNothingCheckedStaysPresent(t *testing.T) {
	fields := []Field{
		{Name: "religiousPractices", Kind: KindCheckbox, Value: "fasting", Checked: false},
	}

	got := Collect(fields, collectNow)
	list, ok := got["religiousPractices"].([]string)
	if !ok {
		t.Fatalf("expected key present with list value, got %T", got["religiousPractices"])
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
	if got.Filled("religiousPractices") {
		t.Fatalf("empty checkbox group must not count as filled")
	}
}

func TestCollectRadioWithNothingCheckedIsAbsent(t *testing.T) {
	fields := []Field{
		{Name: "maritalStatus", Kind: KindRadio, Value: "never_married"},
	}
	got := Collect(fields, collectNow)
	if _, ok := got["maritalStatus"]; ok {
		t.Fatalf("unchecked radio group must be absent, got %v", got["maritalStatus"])
	}
}

func TestCollectDerivesAge(t *testing.T) {
	fields := []Field{
		{Name: "dateOfBirth", Kind: KindText, Value: "2000-01-15"},
	}
	got := Collect(fields, collectNow)
	age, ok := got.Int("age")
	if !ok {
		t.Fatalf("expected derived age")
	}
	if age != 26 {
		t.Fatalf("age: got %d, want 26", age)
	}
}

func TestCollectIgnoresDirectAgeInput(t *testing.T) {
	fields := []Field{
		{Name: "age", Kind: KindText, Value: "99"},
	}
	got := Collect(fields, collectNow)
	if _, ok := got["age"]; ok {
		t.Fatalf("age must only ever be derived, got %v", got["age"])
	}
}

func TestCollectInvalidDateOfBirthSkipsAge(t *testing.T) {
	fields := []Field{
		{Name: "dateOfBirth", Kind: KindText, Value: "not-a-date"},
	}
	got := Collect(fields, collectNow)
	if _, ok := got["age"]; ok {
		t.Fatalf("invalid dateOfBirth must not derive an age")
	}
}

func TestCollectIsIdempotent(t *testing.T) {
	fields := []Field{
		{Name: "fullName", Kind: KindText, Value: "Amina"},
		{Name: "dateOfBirth", Kind: KindText, Value: "2000-01-15"},
		{Name: "languages", Kind: KindCheckbox, Value: "arabic", Checked: true},
		{Name: "languages", Kind: KindCheckbox, Value: "english", Checked: true},
	}

	first := Collect(fields, collectNow)
	second := Collect(fields, collectNow)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("collect not idempotent (-first +second):\n%s", diff)
	}
}

func TestAgeBoundaryCases(t *testing.T) {
	birth := time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday in leap year", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), 23},
		{"on birthday", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 24},
		{"day after birthday", time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), 24},
		{"earlier month", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), 23},
		{"later month", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Age(birth, tc.now); got != tc.want {
				t.Fatalf("Age: got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRecordJSONRoundTrip(t *testing.T) {
	record := Record{
		"fullName":           "Amina",
		"age":                26,
		"religiousPractices": []string{"daily_prayers", "fasting"},
		"aboutYourself":      "",
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(record, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordUnmarshalRejectsNonStringListItems(t *testing.T) {
	var decoded Record
	if err := json.Unmarshal([]byte(`{"hobbies":[1,2]}`), &decoded); err == nil {
		t.Fatalf("expected error for non-string list items")
	}
}

func TestRecordFilled(t *testing.T) {
	record := Record{
		"name":  "Amina",
		"blank": "",
		"list":  []string{"x"},
		"empty": []string{},
		"age":   26,
		"zero":  0,
	}

	truthy := []string{"name", "list", "age"}
	falsy := []string{"blank", "empty", "zero", "missing"}

	for _, key := range truthy {
		if !record.Filled(key) {
			t.Fatalf("expected %q to be filled", key)
		}
	}
	for _, key := range falsy {
		if record.Filled(key) {
			t.Fatalf("expected %q to be unfilled", key)
		}
	}
}
