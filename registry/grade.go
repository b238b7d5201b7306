package registry

import (
	"fmt"
	"strings"
)

// Grade represents a letter grade a student received in a section.
//
// Each grade carries three independent attributes: the grade points used
// for GPA calculation (grades like DROP and W carry none at all), a
// prerequisite score used when comparing against a course's minimum
// required grade, and whether the grade earns graduation credit.
type Grade int

const (
	GradeAPlus Grade = iota
	GradeA
	GradeAMinus
	GradeBPlus
	GradeB
	GradeBMinus
	GradeCPlus
	GradeC
	GradeCMinus
	GradeDPlus
	GradeD
	GradeDMinus
	GradeF
	GradeDrop
	GradeW
	GradePass
	GradeFail
)

type gradeAttributes struct {
	name        string
	gradePoints float64
	affectsGPA  bool
	prereqScore int
	worthCredit bool
}

var gradeTable = [...]gradeAttributes{
	GradeAPlus:  {"A+", 4.0, true, 12, true},
	GradeA:      {"A", 4.0, true, 11, true},
	GradeAMinus: {"A-", 3.7, true, 10, true},
	GradeBPlus:  {"B+", 3.3, true, 9, true},
	GradeB:      {"B", 3.0, true, 8, true},
	GradeBMinus: {"B-", 2.7, true, 7, true},
	GradeCPlus:  {"C+", 2.3, true, 6, true},
	GradeC:      {"C", 2.0, true, 5, true},
	GradeCMinus: {"C-", 1.7, true, 4, true},
	GradeDPlus:  {"D+", 1.3, true, 3, true},
	GradeD:      {"D", 1.0, true, 2, true},
	GradeDMinus: {"D-", 0.7, true, 1, true},
	GradeF:      {"F", 0.0, true, -1, false},
	GradeDrop:   {"DROP", 0, false, -1, false},
	GradeW:      {"W", 0, false, -1, false},
	GradePass:   {"PASS", 0, false, 2, true},
	GradeFail:   {"FAIL", 0, false, -1, false},
}

// IsValid reports whether g is one of the defined grades.
func (g Grade) IsValid() bool {
	return g >= GradeAPlus && g <= GradeFail
}

// GradePoints returns the grade points for GPA purposes. The second return
// value is false for grades that do not affect GPA (DROP, W, PASS, FAIL).
func (g Grade) GradePoints() (float64, bool) {
	attrs := gradeTable[g]
	return attrs.gradePoints, attrs.affectsGPA
}

// PrerequisiteScore returns the comparison score used for prerequisite
// checks. Ordering between grades for prerequisite purposes follows this
// score, not the letter.
func (g Grade) PrerequisiteScore() int {
	return gradeTable[g].prereqScore
}

// IsWorthCredit reports whether the grade earns graduation credit.
func (g Grade) IsWorthCredit() bool {
	return gradeTable[g].worthCredit
}

// AtLeast reports whether g is as good or better than minimum with respect
// to prerequisites, i.e. compares prerequisite scores.
func (g Grade) AtLeast(minimum Grade) bool {
	return g.PrerequisiteScore() >= minimum.PrerequisiteScore()
}

func (g Grade) String() string {
	if !g.IsValid() {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return gradeTable[g].name
}

// ParseGrade converts a letter-grade string such as "A+" or "DROP" into a
// Grade. Matching is case-insensitive.
func ParseGrade(s string) (Grade, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for g, attrs := range gradeTable {
		if attrs.name == upper {
			return Grade(g), nil
		}
	}
	return 0, fmt.Errorf("unknown grade: %q", s)
}
