package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-biodata/pkg/formdata"
)

// promptKind identifies the prompt style used for a wizard question.
type promptKind int

const (
	promptText promptKind = iota
	promptTextArea
	promptSelect
	promptRadio
	promptMulti
)

// promptSpec describes one wizard question and the form field it feeds.
type promptSpec struct {
	Key      string
	Message  string
	Help     string
	Kind     promptKind
	Options  []string
	Required bool
	Validate func(string) error
}

// wizardSection groups questions under a screen heading.
type wizardSection struct {
	Title   string
	Prompts []promptSpec
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

func isoDateOrEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("enter the date as YYYY-MM-DD")
	}
	return nil
}

func isoDate(s string) error {
	if err := notEmpty(s); err != nil {
		return err
	}
	return isoDateOrEmpty(s)
}

var educationLevels = []string{
	"high_school", "diploma", "bachelors_degree", "masters_degree", "phd", "islamic_studies", "other",
}

// wizardSections is the full question inventory, mirroring the document
// section layout.
func wizardSections() []wizardSection {
	return []wizardSection{
		{
			Title: "Personal Details",
			Prompts: []promptSpec{
				{Key: "fullName", Message: "Full name", Kind: promptText, Required: true, Validate: notEmpty},
				{Key: "dateOfBirth", Message: "Date of birth", Help: "Format: YYYY-MM-DD", Kind: promptText, Required: true, Validate: isoDate},
				{Key: "gender", Message: "Gender", Kind: promptRadio, Options: []string{"male", "female"}, Required: true},
				{Key: "maritalStatus", Message: "Marital status", Kind: promptSelect, Options: []string{"never_married", "divorced", "widowed"}, Required: true},
				{Key: "height", Message: "Height", Help: `For example 5'6" or 168cm`, Kind: promptText},
				{Key: "bloodGroup", Message: "Blood group", Kind: promptSelect, Options: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}},
				{Key: "complexion", Message: "Complexion", Kind: promptSelect, Options: []string{"fair", "wheatish", "medium", "dark"}},
			},
		},
		{
			Title: "Religious Information",
			Prompts: []promptSpec{
				{Key: "sect", Message: "Sect", Kind: promptSelect, Options: []string{"sunni", "shia", "other"}},
				{Key: "religiousPractices", Message: "Religious practices", Kind: promptMulti, Options: []string{"daily_prayers", "fasting", "quran_reading", "hajj_umrah", "regular_charity"}},
				{Key: "mosqueInvolvement", Message: "Mosque involvement", Kind: promptText},
			},
		},
		{
			Title: "Educational Background",
			Prompts: []promptSpec{
				{Key: "highestEducation", Message: "Highest education", Kind: promptSelect, Options: educationLevels},
				{Key: "institutionName", Message: "Institution", Kind: promptText},
				{Key: "fieldOfStudy", Message: "Field of study", Kind: promptText},
				{Key: "additionalQualifications", Message: "Additional qualifications", Kind: promptTextArea},
			},
		},
		{
			Title: "Professional Details",
			Prompts: []promptSpec{
				{Key: "occupation", Message: "Occupation", Kind: promptText},
				{Key: "company", Message: "Company", Kind: promptText},
				{Key: "jobTitle", Message: "Job title", Kind: promptText},
				{Key: "annualIncome", Message: "Annual income", Kind: promptSelect, Options: []string{"below_25k", "25k_50k", "50k_100k", "above_100k", "prefer_not_to_say"}},
				{Key: "workLocation", Message: "Work location", Kind: promptText},
			},
		},
		{
			Title: "Family Information",
			Prompts: []promptSpec{
				{Key: "fatherName", Message: "Father's name", Kind: promptText},
				{Key: "fatherOccupation", Message: "Father's occupation", Kind: promptText},
				{Key: "motherName", Message: "Mother's name", Kind: promptText},
				{Key: "motherOccupation", Message: "Mother's occupation", Kind: promptText},
				{Key: "brothers", Message: "Brothers", Kind: promptText},
				{Key: "sisters", Message: "Sisters", Kind: promptText},
				{Key: "familyType", Message: "Family type", Kind: promptSelect, Options: []string{"nuclear_family", "joint_family"}},
				{Key: "familyValues", Message: "Family values", Kind: promptSelect, Options: []string{"traditional", "moderate", "liberal"}},
			},
		},
		{
			Title: "Lifestyle & Preferences",
			Prompts: []promptSpec{
				{Key: "foodHabits", Message: "Food habits", Kind: promptSelect, Options: []string{"halal_only", "vegetarian", "non_vegetarian"}},
				{Key: "smoking", Message: "Smoking", Kind: promptRadio, Options: []string{"never", "occasionally", "regularly"}},
				{Key: "languages", Message: "Languages spoken", Kind: promptText},
				{Key: "hobbies", Message: "Hobbies and interests", Kind: promptTextArea},
				{Key: "aboutYourself", Message: "About yourself", Kind: promptTextArea},
			},
		},
		{
			Title: "Partner Preferences",
			Prompts: []promptSpec{
				{Key: "preferredAgeFrom", Message: "Preferred age from", Kind: promptText},
				{Key: "preferredAgeTo", Message: "Preferred age to", Kind: promptText},
				{Key: "preferredEducation", Message: "Preferred education", Kind: promptSelect, Options: educationLevels},
				{Key: "preferredProfession", Message: "Preferred profession", Kind: promptText},
				{Key: "preferredLocation", Message: "Preferred location", Kind: promptText},
				{Key: "otherExpectations", Message: "Other expectations", Kind: promptTextArea},
			},
		},
		{
			Title: "Contact Information",
			Prompts: []promptSpec{
				{Key: "phoneNumber", Message: "Phone number", Kind: promptText},
				{Key: "emailAddress", Message: "Email address", Kind: promptText},
				{Key: "preferredContactMethod", Message: "Preferred contact method", Kind: promptSelect, Options: []string{"phone", "email", "whatsapp"}},
				{Key: "address", Message: "Address", Kind: promptTextArea},
			},
		},
	}
}

// fieldKindFor maps a prompt kind to the form snapshot kind.
func fieldKindFor(kind promptKind) formdata.FieldKind {
	switch kind {
	case promptTextArea:
		return formdata.KindTextarea
	case promptSelect:
		return formdata.KindSelect
	case promptRadio:
		return formdata.KindRadio
	case promptMulti:
		return formdata.KindCheckbox
	default:
		return formdata.KindText
	}
}
