package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSection_Validation(t *testing.T) {
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	slot := mustTimeSlot(t, MondayWednesdayFriday, 9, 0, 9, 50)

	_, err := NewSection(0, 1, course, testSemester, roomA, slot, lectAlice, mustEnrollment(t, 30, 5))
	require.Error(t, err, "CRN below range")

	_, err = NewSection(100000, 1, course, testSemester, roomA, slot, lectAlice, mustEnrollment(t, 30, 5))
	require.Error(t, err, "CRN above range")

	_, err = NewSection(10001, 0, course, testSemester, roomA, slot, lectAlice, mustEnrollment(t, 30, 5))
	require.Error(t, err, "section number below range")

	_, err = NewSection(10001, 1000, course, testSemester, roomA, slot, lectAlice, mustEnrollment(t, 30, 5))
	require.Error(t, err, "section number above range")

	_, err = NewSection(10001, 1, course, testSemester, roomA, slot, lectAlice, mustEnrollment(t, roomA.RoomCapacity+1, 5))
	require.Error(t, err, "enrollment capacity over fire code limit")
}

func TestSection_Identity(t *testing.T) {
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	sameCourse := mustCourse(t, 99, "CSE", 30332, "Paradigms of Programming", 3)

	a := mustSection(t, course, sectionOpts{crn: 10001})
	b := mustSection(t, sameCourse, sectionOpts{crn: 20002, location: roomB, lecturer: lectBob})
	require.True(t, a.Same(b), "identity is section number + course + semester, not CRN or room")

	differentNumber := mustSection(t, course, sectionOpts{crn: 10001, number: 2})
	require.False(t, a.Same(differentNumber))

	differentSemester := mustSection(t, course, sectionOpts{crn: 10001, semester: Semester{Term: TermSpring, Year: 2025}})
	require.False(t, a.Same(differentSemester))
}

func TestSection_SetEnrollmentCapacity_FireCode(t *testing.T) {
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{enrollCap: 30})

	require.NoError(t, section.SetEnrollmentCapacity(roomA.RoomCapacity))
	require.Error(t, section.SetEnrollmentCapacity(roomA.RoomCapacity+1))
	require.Error(t, section.SetEnrollmentCapacity(-1))
}

func TestCourse_Validation(t *testing.T) {
	_, err := NewCourse(0, "CSE", 30332, "Programming Paradigms", 3)
	require.Error(t, err, "id must be positive")

	_, err = NewCourse(1, "CS", 30332, "Programming Paradigms", 3)
	require.Error(t, err, "mnemonic too short")

	_, err = NewCourse(1, "CSEXX", 30332, "Programming Paradigms", 3)
	require.Error(t, err, "mnemonic too long")

	_, err = NewCourse(1, "CSE", 30332, "", 3)
	require.Error(t, err, "empty title")

	_, err = NewCourse(1, "CSE", 30332, "Programming Paradigms", -1)
	require.Error(t, err, "negative credit hours")
}

func TestCourse_IdentityIgnoresIDAndTitle(t *testing.T) {
	a := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	b := mustCourse(t, 2, "CSE", 30332, "Paradigms, Renamed", 4)
	require.True(t, a.Same(b))

	c := mustCourse(t, 1, "MATH", 30332, "Something Else", 3)
	require.False(t, a.Same(c))
}

func TestNewSemester_Validation(t *testing.T) {
	_, err := NewSemester(TermFall, 1949)
	require.Error(t, err)

	_, err = NewSemester(Term("WINTER"), 2024)
	require.Error(t, err)

	s, err := NewSemester(TermSpring, 2024)
	require.NoError(t, err)
	require.Equal(t, Semester{Term: TermSpring, Year: 2024}, s)
}
