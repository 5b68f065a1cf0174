package document

import (
	"strings"
	"time"
	"unicode"
)

// capitalize upper-cases the first letter, leaving the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// humanize turns snake_case option values into display text: underscores
// become spaces and every word is title-cased ("never_married" -> "Never
// Married").
func humanize(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

// humanizeList humanizes each item and joins them with ", ".
func humanizeList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = humanize(item)
	}
	return strings.Join(out, ", ")
}

// formatDate renders an ISO date for display. Values that do not parse are
// passed through unchanged rather than dropped.
func formatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}

// ageRange composes the preferred-age display value; both bounds are required.
func ageRange(from, to string) string {
	if from == "" || to == "" {
		return ""
	}
	return from + " - " + to + " years"
}
