package registry

import "fmt"

// CourseKey is the identity of a course. Two Course objects with the same
// mnemonic and course number describe the same course regardless of id or
// title, so CourseKey is what goes into maps and comparisons.
type CourseKey struct {
	Mnemonic     string
	CourseNumber int
}

func (k CourseKey) String() string {
	return fmt.Sprintf("%s %d", k.Mnemonic, k.CourseNumber)
}

// Course describes a course as a whole, such as "CSE 30332 - Programming
// Paradigms". Individual offerings of a course are Sections.
type Course struct {
	ID           int
	Mnemonic     string
	CourseNumber int
	Title        string
	CreditHours  int
	Prerequisite *Prerequisite
}

// NewCourse validates and builds a Course with an empty prerequisite.
func NewCourse(id int, mnemonic string, courseNumber int, title string, creditHours int) (*Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("course id must be > 0, got %d", id)
	}
	if len(mnemonic) < 3 || len(mnemonic) > 4 {
		return nil, fmt.Errorf("course mnemonic (such as CSE or MSCE) must be between 3 and 4 characters, got %q", mnemonic)
	}
	if title == "" {
		return nil, fmt.Errorf("course title cannot be empty")
	}
	if creditHours < 0 {
		return nil, fmt.Errorf("a course cannot have negative credit hours, got %d", creditHours)
	}
	return &Course{
		ID:           id,
		Mnemonic:     mnemonic,
		CourseNumber: courseNumber,
		Title:        title,
		CreditHours:  creditHours,
		Prerequisite: NewPrerequisite(),
	}, nil
}

// Key returns the course's identity.
func (c *Course) Key() CourseKey {
	return CourseKey{Mnemonic: c.Mnemonic, CourseNumber: c.CourseNumber}
}

// Same reports whether two courses are the same course, comparing by
// mnemonic and course number only.
func (c *Course) Same(other *Course) bool {
	if other == nil {
		return false
	}
	return c.Key() == other.Key()
}

func (c *Course) String() string {
	return fmt.Sprintf("%s %d - %s", c.Mnemonic, c.CourseNumber, c.Title)
}
