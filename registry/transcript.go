package registry

import (
	"fmt"
	"math"
)

// ProbationGPAThreshold is the GPA at or below which a student is placed
// on academic probation.
const ProbationGPAThreshold = 2.0

// Transcript is a student's section-to-grade history. A section has at
// most one grade; re-posting a grade overwrites the old one. Each
// Transcript is owned by exactly one Student.
type Transcript struct {
	history map[SectionKey]transcriptEntry
}

type transcriptEntry struct {
	section *Section
	grade   Grade
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{history: make(map[SectionKey]transcriptEntry)}
}

// Grade returns the grade recorded for a section. It is an error if the
// transcript has no entry for the section.
func (t *Transcript) Grade(section *Section) (Grade, error) {
	entry, ok := t.history[section.Key()]
	if !ok {
		return 0, fmt.Errorf("transcript doesn't contain section: %s", section)
	}
	return entry.grade, nil
}

// Contains reports whether the transcript has an entry for the section.
func (t *Transcript) Contains(section *Section) bool {
	_, ok := t.history[section.Key()]
	return ok
}

// BestGrade returns the best grade recorded across all sections of a
// course, compared by prerequisite score. The second return value is false
// if the student has taken no sections of the course.
func (t *Transcript) BestGrade(course *Course) (Grade, bool) {
	best := Grade(0)
	found := false
	for _, entry := range t.history {
		if !entry.section.Course.Same(course) {
			continue
		}
		if !found || entry.grade.PrerequisiteScore() > best.PrerequisiteScore() {
			best = entry.grade
			found = true
		}
	}
	return best, found
}

// Add records a grade for a section. Re-posting a grade for a section the
// student already has a grade in overwrites the old grade.
func (t *Transcript) Add(section *Section, grade Grade) {
	t.history[section.Key()] = transcriptEntry{section: section, grade: grade}
}

// Sections returns a copy of the sections the transcript has entries for.
func (t *Transcript) Sections() []*Section {
	sections := make([]*Section, 0, len(t.history))
	for _, entry := range t.history {
		sections = append(sections, entry.section)
	}
	return sections
}

// Entries returns a copy of the full section/grade history.
func (t *Transcript) Entries() map[*Section]Grade {
	entries := make(map[*Section]Grade, len(t.history))
	for _, entry := range t.history {
		entries[entry.section] = entry.grade
	}
	return entries
}

// GPA returns the student's grade point average: grade points weighted by
// each section's credit hours. Grades that don't affect GPA (DROP, W,
// PASS, FAIL) are excluded from both numerator and denominator. With no
// GPA-affecting credits on record the result is NaN.
func (t *Transcript) GPA() float64 {
	gradedCredits := 0
	creditPoints := 0.0
	for _, entry := range t.history {
		points, affectsGPA := entry.grade.GradePoints()
		if !affectsGPA {
			continue
		}
		gradedCredits += entry.section.Course.CreditHours
		creditPoints += float64(entry.section.Course.CreditHours) * points
	}
	if gradedCredits == 0 {
		return math.NaN()
	}
	return creditPoints / float64(gradedCredits)
}

// IsOnProbation reports whether the GPA is at or below the probation
// threshold. A student with no GPA-affecting credits is not on probation.
func (t *Transcript) IsOnProbation() bool {
	return t.GPA() <= ProbationGPAThreshold
}
