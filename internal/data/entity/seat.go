package entity

import (
	"fmt"
	"strconv"
)

// Seat is an immutable value identified by its number ("A7") and section.
// Two seats are equal iff both fields match, so == comparison is the
// identity check everywhere.
type Seat struct {
	Number  string
	Section Section
}

// NewSeat builds seat n of a section, e.g. NewSeat(SectionA, 7) -> "A7".
func NewSeat(section Section, n int) Seat {
	return Seat{
		Number:  fmt.Sprintf("%s%d", section, n),
		Section: section,
	}
}

// Index returns the numeric suffix of the seat number ("A10" -> 10).
// Ordering by Index is numeric, not lexical: A2 precedes A10.
func (s Seat) Index() int {
	i := 0
	for i < len(s.Number) && (s.Number[i] < '0' || s.Number[i] > '9') {
		i++
	}
	n, _ := strconv.Atoi(s.Number[i:])
	return n
}
