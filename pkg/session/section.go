package session

// Section identifies a screen of the builder flow.
type Section string

const (
	SectionWelcome   Section = "welcome"
	SectionForm      Section = "form"
	SectionPhoto     Section = "photo"
	SectionTemplates Section = "templates"
	SectionPreview   Section = "preview"
)

// Sections lists every screen in flow order.
func Sections() []Section {
	return []Section{SectionWelcome, SectionForm, SectionPhoto, SectionTemplates, SectionPreview}
}

// ParseSection maps a raw persisted value back to a Section. Unknown values
// fall back to the welcome screen so a stale store never strands the user.
func ParseSection(raw string) Section {
	for _, section := range Sections() {
		if raw == string(section) {
			return section
		}
	}
	return SectionWelcome
}

// Valid reports whether the section names a known screen.
func (s Section) Valid() bool {
	for _, section := range Sections() {
		if s == section {
			return true
		}
	}
	return false
}
