package biodata

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-biodata/pkg/formdata"
	"github.com/goliatone/go-biodata/pkg/store"
)

func TestRenderHTMLQuickStart(t *testing.T) {
	record := Record{
		"fullName": "Amina Khan",
		"gender":   "female",
	}

	out, err := RenderHTML(context.Background(), record, "royal", "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "Amina Khan") {
		t.Fatalf("output missing name")
	}
}

func TestRenderTextFallsBackOnUnknownTemplate(t *testing.T) {
	out, err := RenderText(context.Background(), Record{"fullName": "Amina"}, "no-such-template", "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "MATRIMONIAL PROFILE") {
		t.Fatalf("output missing title")
	}
}

func TestNewSessionEndToEnd(t *testing.T) {
	ctx := context.Background()
	controller, err := NewSession(store.NewMemoryStore())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer controller.Close(ctx)

	controller.Restore(ctx)
	if err := controller.SelectTemplate(ctx, "peaceful"); err != nil {
		t.Fatalf("select: %v", err)
	}

	out, contentType, err := controller.Preview(ctx, "html")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if contentType != "text/html; charset=utf-8" {
		t.Fatalf("content type: got %q", contentType)
	}
	if !strings.Contains(string(out), "Matrimonial Profile") {
		t.Fatalf("preview missing title")
	}
}

// TestNewSessionCompleteProfile walks a full profile through one session:
// every required field, a broad spread of optional answers, the royal
// template, and a 2MB JPEG, then checks the rendered document and that the
// estimator reaches 100%.
func TestNewSessionCompleteProfile(t *testing.T) {
	ctx := context.Background()
	controller, err := NewSession(store.NewMemoryStore())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer controller.Close(ctx)
	controller.Restore(ctx)

	fields := []Field{
		{Name: "fullName", Kind: formdata.KindText, Value: "Amina Khan"},
		{Name: "dateOfBirth", Kind: formdata.KindText, Value: "1998-03-12"},
		{Name: "gender", Kind: formdata.KindRadio, Value: "female", Checked: true},
		{Name: "maritalStatus", Kind: formdata.KindSelect, Value: "never_married"},
	}
	optional := []string{
		"height", "bloodGroup", "complexion", "sect", "mosqueInvolvement",
		"highestEducation", "institutionName", "fieldOfStudy", "additionalQualifications",
		"occupation", "company", "jobTitle", "annualIncome", "workLocation",
		"fatherName", "fatherOccupation", "motherName", "motherOccupation",
		"brothers", "sisters", "familyType", "familyValues",
		"foodHabits", "aboutYourself", "phoneNumber",
	}
	for _, name := range optional {
		fields = append(fields, Field{Name: name, Kind: formdata.KindText, Value: "answered"})
	}
	controller.ApplyFields(fields)

	if err := controller.SelectTemplate(ctx, "royal"); err != nil {
		t.Fatalf("select: %v", err)
	}

	photo := append([]byte("\xff\xd8\xff\xe0"), make([]byte, 2<<20)...)
	if err := controller.AttachPhoto(ctx, "image/jpeg", photo); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if report := controller.Progress(); report.Percentage != 100 {
		t.Fatalf("complete profile progress: got %+v, want 100%%", report)
	}

	out, _, err := controller.Preview(ctx, "html")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"Amina Khan",
		"Quran 2:187",
		"Marital Status",
		"Never Married",
		"data:image/jpeg;base64,",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered document missing %q", want)
		}
	}
}
