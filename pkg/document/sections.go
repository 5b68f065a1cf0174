package document

import (
	"github.com/goliatone/go-biodata/pkg/formdata"
)

type sectionGenerator func(formdata.Record) (Section, bool)

// sectionGenerators lists the eight generators in the fixed document order.
var sectionGenerators = []sectionGenerator{
	personalSection,
	religiousSection,
	educationSection,
	professionalSection,
	familySection,
	lifestyleSection,
	partnerSection,
	contactSection,
}

// newSection drops falsy entries and reports whether anything survived.
// A section whose every entry filtered out yields no output at all.
func newSection(kind SectionKind, title string, entries []Entry) (Section, bool) {
	kept := entries[:0]
	for _, entry := range entries {
		if entry.Value == "" {
			continue
		}
		kept = append(kept, entry)
	}
	if len(kept) == 0 {
		return Section{}, false
	}
	return Section{Kind: kind, Title: title, Entries: kept}, true
}

func personalSection(r formdata.Record) (Section, bool) {
	return newSection(SectionPersonal, "Personal Details", []Entry{
		{Label: "Date of Birth", Value: formatDate(r.String("dateOfBirth"))},
		{Label: "Gender", Value: capitalize(r.String("gender"))},
		{Label: "Height", Value: r.String("height")},
		{Label: "Blood Group", Value: r.String("bloodGroup")},
		{Label: "Complexion", Value: capitalize(r.String("complexion"))},
		{Label: "Marital Status", Value: humanize(r.String("maritalStatus"))},
	})
}

func religiousSection(r formdata.Record) (Section, bool) {
	religion := r.String("religion")
	if religion == "" {
		religion = "Islam"
	}
	return newSection(SectionReligious, "Religious Information", []Entry{
		{Label: "Religion", Value: religion},
		{Label: "Sect", Value: capitalize(r.String("sect"))},
		{Label: "Religious Practices", Value: humanizeList(r.List("religiousPractices")), FullWidth: true},
		{Label: "Mosque Involvement", Value: r.String("mosqueInvolvement"), FullWidth: true},
	})
}

func educationSection(r formdata.Record) (Section, bool) {
	return newSection(SectionEducation, "Educational Background", []Entry{
		{Label: "Education", Value: humanize(r.String("highestEducation"))},
		{Label: "Institution", Value: r.String("institutionName")},
		{Label: "Field of Study", Value: r.String("fieldOfStudy")},
		{Label: "Additional Qualifications", Value: r.String("additionalQualifications"), FullWidth: true},
	})
}

func professionalSection(r formdata.Record) (Section, bool) {
	return newSection(SectionProfessional, "Professional Details", []Entry{
		{Label: "Occupation", Value: r.String("occupation")},
		{Label: "Company", Value: r.String("company")},
		{Label: "Job Title", Value: r.String("jobTitle")},
		{Label: "Annual Income", Value: humanize(r.String("annualIncome"))},
		{Label: "Work Location", Value: r.String("workLocation")},
	})
}

func familySection(r formdata.Record) (Section, bool) {
	return newSection(SectionFamily, "Family Information", []Entry{
		{Label: "Father's Name", Value: r.String("fatherName")},
		{Label: "Father's Occupation", Value: r.String("fatherOccupation")},
		{Label: "Mother's Name", Value: r.String("motherName")},
		{Label: "Mother's Occupation", Value: r.String("motherOccupation")},
		{Label: "Brothers", Value: r.String("brothers")},
		{Label: "Sisters", Value: r.String("sisters")},
		{Label: "Family Type", Value: humanize(r.String("familyType"))},
		{Label: "Family Values", Value: capitalize(r.String("familyValues"))},
	})
}

func lifestyleSection(r formdata.Record) (Section, bool) {
	return newSection(SectionLifestyle, "Lifestyle & Preferences", []Entry{
		{Label: "Food Habits", Value: humanize(r.String("foodHabits"))},
		{Label: "Smoking", Value: capitalize(r.String("smoking"))},
		{Label: "Languages", Value: r.String("languages")},
		{Label: "Hobbies & Interests", Value: r.String("hobbies"), FullWidth: true},
		{Label: "About Yourself", Value: r.String("aboutYourself"), FullWidth: true},
	})
}

func partnerSection(r formdata.Record) (Section, bool) {
	return newSection(SectionPartner, "Partner Preferences", []Entry{
		{Label: "Preferred Age", Value: ageRange(r.String("preferredAgeFrom"), r.String("preferredAgeTo"))},
		{Label: "Preferred Education", Value: humanize(r.String("preferredEducation"))},
		{Label: "Preferred Profession", Value: r.String("preferredProfession")},
		{Label: "Preferred Location", Value: r.String("preferredLocation")},
		{Label: "Other Expectations", Value: r.String("otherExpectations"), FullWidth: true},
	})
}

func contactSection(r formdata.Record) (Section, bool) {
	return newSection(SectionContact, "Contact Information", []Entry{
		{Label: "Phone", Value: r.String("phoneNumber")},
		{Label: "Email", Value: r.String("emailAddress")},
		{Label: "Preferred Contact", Value: humanize(r.String("preferredContactMethod"))},
		{Label: "Address", Value: r.String("address"), FullWidth: true},
	})
}
