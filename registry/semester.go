package registry

import "fmt"

// Term is the part of the academic year a semester falls in.
type Term string

const (
	TermFall   Term = "FALL"
	TermSpring Term = "SPRING"
	TermSummer Term = "SUMMER"
)

// IsValid reports whether the term is one of the defined terms.
func (t Term) IsValid() bool {
	switch t {
	case TermFall, TermSpring, TermSummer:
		return true
	}
	return false
}

// Semester is a term plus a year, such as SPRING 2024. Semesters are
// values: two semesters with the same term and year are the same semester.
type Semester struct {
	Term Term
	Year int
}

// NewSemester validates and builds a Semester. Years before 1950 are
// rejected.
func NewSemester(term Term, year int) (Semester, error) {
	if !term.IsValid() {
		return Semester{}, fmt.Errorf("invalid term: %q", term)
	}
	if year < 1950 {
		return Semester{}, fmt.Errorf("invalid year: %d - year must be >= 1950", year)
	}
	return Semester{Term: term, Year: year}, nil
}

func (s Semester) String() string {
	return fmt.Sprintf("%s %d", s.Term, s.Year)
}
