// Package document composes the structured biodata document from a form
// record, a template, and the template's verse.
//
// Compose and the per-section generators are pure: for fixed inputs the output
// is identical on every call. Anything time-dependent (the derived age)
// happens upstream at collection time; this package only reads already
// computed values.
package document

import (
	"fmt"

	"github.com/goliatone/go-biodata/pkg/catalog"
	"github.com/goliatone/go-biodata/pkg/formdata"
)

// SectionKind identifies one of the eight fixed document sections.
type SectionKind string

const (
	SectionPersonal     SectionKind = "personal"
	SectionReligious    SectionKind = "religious"
	SectionEducation    SectionKind = "education"
	SectionProfessional SectionKind = "professional"
	SectionFamily       SectionKind = "family"
	SectionLifestyle    SectionKind = "lifestyle"
	SectionPartner      SectionKind = "partner"
	SectionContact      SectionKind = "contact"
)

// Entry is a single label/value line inside a section. FullWidth tags
// free-text entries that span the whole row in grid layouts.
type Entry struct {
	Label     string
	Value     string
	FullWidth bool
}

// Section is a titled group of entries. Generators never produce a section
// without entries; a section with no data contributes nothing to the document.
type Section struct {
	Kind    SectionKind
	Title   string
	Entries []Entry
}

// VerseBlock carries the template's verse into the rendered header.
type VerseBlock struct {
	Arabic    string
	English   string
	Reference string
}

// PhotoBlock describes the photo area: the image source (an uploaded data URI
// or the built-in placeholder), the display name, and an optional age line.
type PhotoBlock struct {
	Source  string
	Name    string
	AgeLine string
}

// Document is the fully composed biodata, ready for a renderer.
type Document struct {
	TemplateID string
	Title      string
	Invocation string
	Decoration string
	Verse      VerseBlock
	Photo      PhotoBlock
	Sections   []Section
}

const (
	documentTitle = "Matrimonial Profile"
	invocation    = "بِسْمِ اللهِ الرَّحْمٰنِ الرَّحِيْمِ"
	decoration    = "☪️"

	fallbackName = "Your Name"
)

// PlaceholderPhoto is the inline SVG silhouette shown when no photo has been
// uploaded.
const PlaceholderPhoto = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMjAwIiBoZWlnaHQ9IjI1MCIgdmlld0JveD0iMCAwIDIwMCAyNTAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+PHJlY3Qgd2lkdGg9IjIwMCIgaGVpZ2h0PSIyNTAiIGZpbGw9IiNmNWY1ZjUiLz48dGV4dCB4PSIxMDAiIHk9IjEzMCIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZmlsbD0iIzk5OTk5OSIgZm9udC1zaXplPSIxNiI+UGhvdG88L3RleHQ+PC9zdmc+"

// Compose builds the document for a record, template, and verse. The photo is
// passed separately because it is owned by the session, not the record; pass
// "" when no photo has been uploaded.
func Compose(record formdata.Record, tpl catalog.Template, verse catalog.Verse, photo string) Document {
	doc := Document{
		TemplateID: tpl.ID,
		Title:      documentTitle,
		Invocation: invocation,
		Decoration: decoration,
		Verse: VerseBlock{
			Arabic:    verse.Arabic,
			English:   verse.English,
			Reference: verse.Reference,
		},
		Photo: composePhoto(record, photo),
	}

	for _, generate := range sectionGenerators {
		if section, ok := generate(record); ok {
			doc.Sections = append(doc.Sections, section)
		}
	}
	return doc
}

func composePhoto(record formdata.Record, photo string) PhotoBlock {
	block := PhotoBlock{
		Source: photo,
		Name:   record.String("fullName"),
	}
	if block.Source == "" {
		block.Source = PlaceholderPhoto
	}
	if block.Name == "" {
		block.Name = fallbackName
	}
	if age, ok := record.Int(formdata.AgeKey); ok && age != 0 {
		block.AgeLine = fmt.Sprintf("Age: %d years", age)
	}
	return block
}
