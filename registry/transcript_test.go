package registry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscript_GradeAndOverwrite(t *testing.T) {
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})
	tr := NewTranscript()

	_, err := tr.Grade(section)
	require.Error(t, err, "no entry recorded yet")

	tr.Add(section, GradeB)
	g, err := tr.Grade(section)
	require.NoError(t, err)
	require.Equal(t, GradeB, g)

	// Re-posting overwrites, never duplicates.
	tr.Add(section, GradeAMinus)
	g, err = tr.Grade(section)
	require.NoError(t, err)
	require.Equal(t, GradeAMinus, g)
	require.Len(t, tr.Sections(), 1)
}

func TestTranscript_BestGrade_ByPrerequisiteScore(t *testing.T) {
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	fall := mustSection(t, course, sectionOpts{crn: 10001})
	spring := mustSection(t, course, sectionOpts{crn: 10002, number: 2, semester: Semester{Term: TermSpring, Year: 2025}})

	tr := NewTranscript()
	_, found := tr.BestGrade(course)
	require.False(t, found)

	tr.Add(fall, GradeF)
	tr.Add(spring, GradeC)

	best, found := tr.BestGrade(course)
	require.True(t, found)
	require.Equal(t, GradeC, best)

	other := mustCourse(t, 2, "MATH", 10550, "Calculus I", 4)
	_, found = tr.BestGrade(other)
	require.False(t, found)
}

func TestTranscript_GPA_WeightsByCreditHours(t *testing.T) {
	fourCredit := mustCourse(t, 1, "CSE", 20110, "Discrete Mathematics", 4)
	threeCredit := mustCourse(t, 2, "CSE", 30332, "Programming Paradigms", 3)

	s1 := mustSection(t, fourCredit, sectionOpts{crn: 10001})
	s2 := mustSection(t, fourCredit, sectionOpts{crn: 10002, number: 2, semester: Semester{Term: TermSpring, Year: 2025}})
	s3 := mustSection(t, threeCredit, sectionOpts{crn: 10003})

	tr := NewTranscript()
	tr.Add(s1, GradeF) // 4 credits * 0.0
	tr.Add(s2, GradeC) // 4 credits * 2.0
	tr.Add(s3, GradeA) // 3 credits * 4.0

	expected := (4*0.0 + 4*2.0 + 3*4.0) / 11.0
	require.InDelta(t, expected, tr.GPA(), 1e-9)
}

func TestTranscript_GPA_ExcludesNonGPAGrades(t *testing.T) {
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	graded := mustSection(t, course, sectionOpts{crn: 10001})
	dropped := mustSection(t, course, sectionOpts{crn: 10002, number: 2})
	withdrawn := mustSection(t, course, sectionOpts{crn: 10003, number: 3})

	tr := NewTranscript()
	tr.Add(graded, GradeB)
	tr.Add(dropped, GradeDrop)
	tr.Add(withdrawn, GradeW)

	require.InDelta(t, 3.0, tr.GPA(), 1e-9, "DROP and W stay out of numerator and denominator")
}

func TestTranscript_GPA_NoGradedCreditsIsNaN(t *testing.T) {
	tr := NewTranscript()
	require.True(t, math.IsNaN(tr.GPA()))
	require.False(t, tr.IsOnProbation(), "no graded credits never means probation")
}

func TestTranscript_Probation(t *testing.T) {
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})

	tr := NewTranscript()
	tr.Add(section, GradeC)
	require.True(t, tr.IsOnProbation(), "GPA exactly at the threshold counts")

	tr.Add(section, GradeCPlus)
	require.False(t, tr.IsOnProbation())
}
