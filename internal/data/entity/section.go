package entity

import "strings"

// Section is a fixed partition of the train's seating. Each section owns
// its own seat pool.
type Section string

const (
	SectionA Section = "A"
	SectionB Section = "B"
)

// Sections returns every section of the train.
func Sections() []Section {
	return []Section{SectionA, SectionB}
}

// ParseSection resolves a section from user input, case-insensitively.
func ParseSection(s string) (Section, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return SectionA, true
	case "B":
		return SectionB, true
	}
	return "", false
}
