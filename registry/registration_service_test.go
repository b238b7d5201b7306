package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister_SuccessEnrolled(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{enrollCap: 1, waitCap: 0})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	result, err := rs.Register(alice, section)
	require.NoError(t, err)
	require.Equal(t, RegistrationSuccessEnrolled, result)

	// Both sides of the link are updated together.
	require.True(t, section.IsStudentEnrolled(alice))
	require.True(t, alice.IsEnrolledInSection(section))
}

func TestRegister_SuccessWaitListed(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{enrollCap: 1, waitCap: 1})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	bob := NewStudent(2, "bob2", "Bob", "Baker", 3)

	_, err := rs.Register(alice, section)
	require.NoError(t, err)

	result, err := rs.Register(bob, section)
	require.NoError(t, err)
	require.Equal(t, RegistrationSuccessWaitListed, result)
	require.True(t, section.IsStudentWaitListed(bob))
	require.True(t, bob.IsWaitListedInSection(section))
}

func TestRegister_AlreadyInCourse(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section1 := mustSection(t, course, sectionOpts{crn: 10001})
	slot := mustTimeSlot(t, TuesdayThursday, 14, 0, 15, 15)
	section2 := mustSection(t, course, sectionOpts{crn: 20002, number: 2, timeSlot: &slot, location: roomB, lecturer: lectBob})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	_, err := rs.Register(alice, section1)
	require.NoError(t, err)

	result, err := rs.Register(alice, section2)
	require.NoError(t, err)
	require.Equal(t, RegistrationFailedAlreadyInCourse, result)

	// A different semester's offering of the same course is fine...
	// once there's no conflict, but here identity is the point:
	require.False(t, section2.IsStudentEnrolled(alice))
}

func TestRegister_AlreadyInCourse_ViaWaitList(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	full := mustSection(t, course, sectionOpts{crn: 10001, enrollCap: 1, waitCap: 1})
	other := NewStudent(9, "zed9", "Zed", "Zimmer", 4)
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	_, err := rs.Register(other, full)
	require.NoError(t, err)
	result, err := rs.Register(alice, full)
	require.NoError(t, err)
	require.Equal(t, RegistrationSuccessWaitListed, result)

	slot := mustTimeSlot(t, TuesdayThursday, 14, 0, 15, 15)
	section2 := mustSection(t, course, sectionOpts{crn: 20002, number: 2, timeSlot: &slot, location: roomB, lecturer: lectBob})
	result, err = rs.Register(alice, section2)
	require.NoError(t, err)
	require.Equal(t, RegistrationFailedAlreadyInCourse, result)
}

func TestRegister_EnrollmentClosed(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})
	section.SetStatus(EnrollmentClosed)
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	result, err := rs.Register(alice, section)
	require.NoError(t, err)
	require.Equal(t, RegistrationFailedEnrollmentClosed, result)
}

func TestRegister_SectionFull(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{enrollCap: 1, waitCap: 1})

	_, err := rs.Register(NewStudent(1, "a1", "A", "", 1), section)
	require.NoError(t, err)
	_, err = rs.Register(NewStudent(2, "b2", "B", "", 1), section)
	require.NoError(t, err)

	result, err := rs.Register(NewStudent(3, "c3", "C", "", 1), section)
	require.NoError(t, err)
	require.Equal(t, RegistrationFailedSectionFull, result)
}

func TestRegister_ScheduleConflict(t *testing.T) {
	rs := NewRegistrationService()
	paradigms := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	calc := mustCourse(t, 2, "MATH", 10550, "Calculus I", 4)
	first := mustSection(t, paradigms, sectionOpts{crn: 10001})
	overlapping := mustTimeSlot(t, MondayWednesdayFriday, 9, 30, 10, 20)
	second := mustSection(t, calc, sectionOpts{crn: 20002, location: roomB, timeSlot: &overlapping, lecturer: lectBob})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	_, err := rs.Register(alice, first)
	require.NoError(t, err)

	result, err := rs.Register(alice, second)
	require.NoError(t, err)
	require.Equal(t, RegistrationFailedScheduleConflict, result)
	require.False(t, second.IsStudentEnrolled(alice))
	require.False(t, alice.IsEnrolledInSection(second))
}

func TestRegister_ScheduleConflict_IgnoresOtherSemesters(t *testing.T) {
	rs := NewRegistrationService()
	paradigms := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	calc := mustCourse(t, 2, "MATH", 10550, "Calculus I", 4)
	fall := mustSection(t, paradigms, sectionOpts{crn: 10001})
	springSlot := mustTimeSlot(t, MondayWednesdayFriday, 9, 0, 9, 50)
	spring := mustSection(t, calc, sectionOpts{crn: 20002, semester: Semester{Term: TermSpring, Year: 2025}, timeSlot: &springSlot})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	_, err := rs.Register(alice, fall)
	require.NoError(t, err)

	result, err := rs.Register(alice, spring)
	require.NoError(t, err)
	require.Equal(t, RegistrationSuccessEnrolled, result, "same meeting time in a different semester is no conflict")
}

func TestRegister_PrerequisiteNotMet(t *testing.T) {
	rs := NewRegistrationService()
	intro := mustCourse(t, 1, "CSE", 20110, "Discrete Mathematics", 4)
	paradigms := mustCourse(t, 2, "CSE", 30332, "Programming Paradigms", 3)
	paradigms.Prerequisite.Add(intro, GradeC)

	section := mustSection(t, paradigms, sectionOpts{})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	result, err := rs.Register(alice, section)
	require.NoError(t, err)
	require.Equal(t, RegistrationFailedPrerequisiteNotMet, result)
	require.False(t, section.IsStudentEnrolled(alice), "no roster change on failure")
	require.Empty(t, alice.EnrolledSections(), "no schedule change on failure")
}

func TestRegister_CreditLimit(t *testing.T) {
	rs := NewRegistrationService()
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	// Fill the schedule up to 15 of the default 18 credits, spread
	// across non-overlapping slots.
	slots := []TimeSlot{
		mustTimeSlot(t, MondayWednesdayFriday, 8, 0, 8, 50),
		mustTimeSlot(t, MondayWednesdayFriday, 10, 0, 10, 50),
		mustTimeSlot(t, MondayWednesdayFriday, 12, 0, 12, 50),
	}
	for i := range slots {
		course := mustCourse(t, 10+i, "CSE", 40000+i, "Elective", 5)
		section := mustSection(t, course, sectionOpts{crn: 10001 + i, timeSlot: &slots[i]})
		result, err := rs.Register(alice, section)
		require.NoError(t, err)
		require.Equal(t, RegistrationSuccessEnrolled, result)
	}

	overLimit := mustCourse(t, 20, "MATH", 10550, "Calculus I", 4)
	overSlot := mustTimeSlot(t, TuesdayThursday, 9, 0, 9, 50)
	section := mustSection(t, overLimit, sectionOpts{crn: 20002, timeSlot: &overSlot})

	result, err := rs.Register(alice, section)
	require.NoError(t, err)
	require.Equal(t, RegistrationFailedCreditLimitViolation, result, "15 + 4 > 18")

	threeCredit := mustCourse(t, 21, "PHIL", 10100, "Intro Philosophy", 3)
	ok := mustSection(t, threeCredit, sectionOpts{crn: 30003, timeSlot: &overSlot})
	result, err = rs.Register(alice, ok)
	require.NoError(t, err)
	require.Equal(t, RegistrationSuccessEnrolled, result, "exactly at the limit is allowed")
}

func TestRegister_CreditLimit_CountsWaitListedCredits(t *testing.T) {
	rs := NewRegistrationService()
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	filler := NewStudent(2, "bob2", "Bob", "Baker", 3)

	// 15 credits wait listed in one big course.
	big := mustCourse(t, 1, "CSE", 49999, "Capstone", 15)
	bigSection := mustSection(t, big, sectionOpts{crn: 10001, enrollCap: 1, waitCap: 1})
	_, err := rs.Register(filler, bigSection)
	require.NoError(t, err)
	result, err := rs.Register(alice, bigSection)
	require.NoError(t, err)
	require.Equal(t, RegistrationSuccessWaitListed, result)

	calc := mustCourse(t, 2, "MATH", 10550, "Calculus I", 4)
	slot := mustTimeSlot(t, TuesdayThursday, 9, 0, 9, 50)
	section := mustSection(t, calc, sectionOpts{crn: 20002, timeSlot: &slot})

	result, err = rs.Register(alice, section)
	require.NoError(t, err)
	require.Equal(t, RegistrationFailedCreditLimitViolation, result, "wait-listed credits count toward the limit")
}

func TestRegister_ProbationReducesCreditLimit(t *testing.T) {
	rs := NewRegistrationService()
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	// A transcript full of F's puts Alice on probation.
	failed := mustCourse(t, 1, "CSE", 20110, "Discrete Mathematics", 4)
	alice.AddGrade(mustSection(t, failed, sectionOpts{crn: 40004, semester: Semester{Term: TermSpring, Year: 2024}}), GradeF)
	require.True(t, alice.IsOnProbation())
	require.Equal(t, ProbationCreditLimit, alice.CreditLimit())

	big := mustCourse(t, 2, "CSE", 49999, "Capstone", 15)
	section := mustSection(t, big, sectionOpts{crn: 10001})

	result, err := rs.Register(alice, section)
	require.NoError(t, err)
	require.Equal(t, RegistrationFailedCreditLimitViolation, result, "15 > 12 probation limit")
}

func TestDrop_NotInSection(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	dropped, err := rs.Drop(alice, section)
	require.NoError(t, err)
	require.False(t, dropped)
	require.Empty(t, alice.Transcript.Sections(), "failed drop posts nothing")
}

func TestDrop_EnrolledStudent_PostsDropGrade(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	_, err := rs.Register(alice, section)
	require.NoError(t, err)

	dropped, err := rs.Drop(alice, section)
	require.NoError(t, err)
	require.True(t, dropped)
	require.False(t, section.IsStudentEnrolled(alice))
	require.False(t, alice.IsEnrolledInSection(section))

	g, err := alice.Grade(section)
	require.NoError(t, err)
	require.Equal(t, GradeDrop, g)
}

func TestDrop_OverwritesExistingGrade(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	_, err := rs.Register(alice, section)
	require.NoError(t, err)
	alice.AddGrade(section, GradeB)

	_, err = rs.Drop(alice, section)
	require.NoError(t, err)

	g, err := alice.Grade(section)
	require.NoError(t, err)
	require.Equal(t, GradeDrop, g, "DROP replaces the prior grade")
}

func TestDrop_PromotesHeadOfWaitList(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{enrollCap: 1, waitCap: 2})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	bob := NewStudent(2, "bob2", "Bob", "Baker", 3)
	carol := NewStudent(3, "carol3", "Carol", "Clark", 1)

	_, err := rs.Register(alice, section)
	require.NoError(t, err)
	_, err = rs.Register(bob, section)
	require.NoError(t, err)
	_, err = rs.Register(carol, section)
	require.NoError(t, err)

	dropped, err := rs.Drop(alice, section)
	require.NoError(t, err)
	require.True(t, dropped)

	// Exactly the head of the wait list moved up.
	require.True(t, section.IsStudentEnrolled(bob))
	require.True(t, bob.IsEnrolledInSection(section))
	require.False(t, bob.IsWaitListedInSection(section))
	require.True(t, section.IsStudentWaitListed(carol), "carol stays wait listed")

	// Promotion leaves the promoted student's transcript alone.
	require.Empty(t, bob.Transcript.Sections())
}

func TestDrop_NoPromotionWhenClosed(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{enrollCap: 1, waitCap: 1})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	bob := NewStudent(2, "bob2", "Bob", "Baker", 3)

	_, err := rs.Register(alice, section)
	require.NoError(t, err)
	_, err = rs.Register(bob, section)
	require.NoError(t, err)

	section.SetStatus(EnrollmentClosed)

	dropped, err := rs.Drop(alice, section)
	require.NoError(t, err)
	require.True(t, dropped)

	require.False(t, section.IsStudentEnrolled(bob), "no promotion into a closed section")
	require.True(t, section.IsStudentWaitListed(bob))
}

func TestDrop_WaitListedStudent(t *testing.T) {
	rs := NewRegistrationService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{enrollCap: 1, waitCap: 1})
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	bob := NewStudent(2, "bob2", "Bob", "Baker", 3)

	_, err := rs.Register(alice, section)
	require.NoError(t, err)
	_, err = rs.Register(bob, section)
	require.NoError(t, err)

	dropped, err := rs.Drop(bob, section)
	require.NoError(t, err)
	require.True(t, dropped)
	require.False(t, section.IsStudentWaitListed(bob))
	require.False(t, bob.IsWaitListedInSection(section))

	// Wait-listed drops also get a DROP entry.
	g, err := bob.Grade(section)
	require.NoError(t, err)
	require.Equal(t, GradeDrop, g)

	// Alice's enrollment is untouched.
	require.True(t, section.IsStudentEnrolled(alice))
}
