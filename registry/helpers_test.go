package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	testSemester = Semester{Term: TermFall, Year: 2024}
	lectAlice    = Lecturer{ID: 1, NetID: "aturing1", FirstName: "Alan", LastName: "Turing"}
	lectBob      = Lecturer{ID: 2, NetID: "ghopper2", FirstName: "Grace", LastName: "Hopper"}
	roomA        = Location{Building: "Fitzpatrick", Room: "356", RoomCapacity: 100}
	roomB        = Location{Building: "DeBartolo", Room: "101", RoomCapacity: 250}
)

func mustTimeSlot(t *testing.T, days []time.Weekday, startHour, startMinute, endHour, endMinute int) TimeSlot {
	t.Helper()
	slot, err := NewTimeSlot(days, startHour, startMinute, endHour, endMinute)
	require.NoError(t, err)
	return slot
}

func mustCourse(t *testing.T, id int, mnemonic string, number int, title string, credits int) *Course {
	t.Helper()
	course, err := NewCourse(id, mnemonic, number, title, credits)
	require.NoError(t, err)
	return course
}

func mustEnrollment(t *testing.T, enrollCap, waitCap int) *Enrollment {
	t.Helper()
	enrollment, err := NewEnrollment(enrollCap, waitCap)
	require.NoError(t, err)
	return enrollment
}

// mustSection builds an open section of the course in the shared test
// semester, meeting MWF 9:00-9:50 in roomA with lectAlice unless the
// options say otherwise.
type sectionOpts struct {
	crn       int
	number    int
	semester  Semester
	location  Location
	timeSlot  *TimeSlot
	lecturer  Lecturer
	enrollCap int
	waitCap   int
}

func mustSection(t *testing.T, course *Course, opts sectionOpts) *Section {
	t.Helper()
	if opts.crn == 0 {
		opts.crn = 10001
	}
	if opts.number == 0 {
		opts.number = 1
	}
	if opts.semester == (Semester{}) {
		opts.semester = testSemester
	}
	if opts.location == (Location{}) {
		opts.location = roomA
	}
	if opts.timeSlot == nil {
		slot := mustTimeSlot(t, MondayWednesdayFriday, 9, 0, 9, 50)
		opts.timeSlot = &slot
	}
	if opts.lecturer == (Lecturer{}) {
		opts.lecturer = lectAlice
	}
	if opts.enrollCap == 0 {
		opts.enrollCap = 30
	}
	section, err := NewSection(opts.crn, opts.number, course, opts.semester,
		opts.location, *opts.timeSlot, opts.lecturer, mustEnrollment(t, opts.enrollCap, opts.waitCap))
	require.NoError(t, err)
	return section
}

// enroll registers the student directly against the roster and schedule,
// bypassing the registration gates, for test setup.
func enroll(t *testing.T, student *Student, section *Section) {
	t.Helper()
	require.NoError(t, section.AddStudentToEnrolled(student))
	require.True(t, student.Schedule.AddEnrolledSection(section))
}

func waitList(t *testing.T, student *Student, section *Section) {
	t.Helper()
	require.NoError(t, section.AddStudentToWaitList(student))
	require.True(t, student.Schedule.AddWaitListedSection(section))
}
