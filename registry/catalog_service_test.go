package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newCatalogService() *CatalogService {
	return NewCatalogService(NewCatalog(testSemester))
}

func TestCatalogService_AddSuccessful(t *testing.T) {
	cs := newCatalogService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})

	require.Equal(t, AddSuccessful, cs.Add(section))
	require.True(t, cs.Catalog.Contains(section))
	require.Equal(t, 1, cs.Catalog.Size())
}

func TestCatalogService_AddSemesterMismatch(t *testing.T) {
	cs := newCatalogService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{semester: Semester{Term: TermSpring, Year: 2025}})

	require.Equal(t, AddFailedSemesterMismatch, cs.Add(section))
	require.Equal(t, 0, cs.Catalog.Size())
}

func TestCatalogService_AddDuplicateSection(t *testing.T) {
	cs := newCatalogService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})

	require.Equal(t, AddSuccessful, cs.Add(section))
	require.Equal(t, AddFailedSectionAlreadyExists, cs.Add(section))
	require.Equal(t, 1, cs.Catalog.Size(), "second add changed nothing")
}

func TestCatalogService_AddCRNConflict(t *testing.T) {
	cs := newCatalogService()
	first := mustSection(t, mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3), sectionOpts{crn: 10001})
	require.Equal(t, AddSuccessful, cs.Add(first))

	// Different course and room, no time overlap, but the same CRN.
	slot := mustTimeSlot(t, TuesdayThursday, 14, 0, 15, 15)
	conflicting := mustSection(t, mustCourse(t, 2, "MATH", 10550, "Calculus I", 4),
		sectionOpts{crn: 10001, location: roomB, timeSlot: &slot, lecturer: lectBob})
	require.Equal(t, AddFailedCRNConflict, cs.Add(conflicting))
}

func TestCatalogService_AddLocationConflict(t *testing.T) {
	cs := newCatalogService()
	first := mustSection(t, mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3), sectionOpts{crn: 10001})
	require.Equal(t, AddSuccessful, cs.Add(first))

	// Same room, overlapping time, different lecturer and CRN.
	slot := mustTimeSlot(t, MondayWednesdayFriday, 9, 30, 10, 20)
	conflicting := mustSection(t, mustCourse(t, 2, "MATH", 10550, "Calculus I", 4),
		sectionOpts{crn: 20002, timeSlot: &slot, lecturer: lectBob})
	require.Equal(t, AddFailedLocationConflict, cs.Add(conflicting))

	// Same room, touching but not overlapping, is fine.
	touching := mustTimeSlot(t, MondayWednesdayFriday, 9, 50, 10, 40)
	ok := mustSection(t, mustCourse(t, 3, "PHYS", 10310, "Physics I", 4),
		sectionOpts{crn: 30003, timeSlot: &touching, lecturer: lectBob})
	require.Equal(t, AddSuccessful, cs.Add(ok))
}

func TestCatalogService_AddLecturerConflict(t *testing.T) {
	cs := newCatalogService()
	first := mustSection(t, mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3), sectionOpts{crn: 10001})
	require.Equal(t, AddSuccessful, cs.Add(first))

	// Same lecturer, overlapping time, different room.
	slot := mustTimeSlot(t, MondayWednesdayFriday, 9, 0, 9, 50)
	conflicting := mustSection(t, mustCourse(t, 2, "MATH", 10550, "Calculus I", 4),
		sectionOpts{crn: 20002, location: roomB, timeSlot: &slot})
	require.Equal(t, AddFailedLecturerConflict, cs.Add(conflicting))
}

func TestCatalogService_AddEnrollmentNotEmpty(t *testing.T) {
	cs := newCatalogService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})
	require.NoError(t, section.AddStudentToEnrolled(NewStudent(1, "alice1", "Alice", "Anderson", 2)))

	require.Equal(t, AddFailedEnrollmentNotEmpty, cs.Add(section))
	require.Equal(t, 0, cs.Catalog.Size())
}

func TestCatalogService_Remove_CascadesIntoSchedules(t *testing.T) {
	cs := newCatalogService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{enrollCap: 1, waitCap: 2})
	require.Equal(t, AddSuccessful, cs.Add(section))

	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	bob := NewStudent(2, "bob2", "Bob", "Baker", 3)
	enroll(t, alice, section)
	waitList(t, bob, section)

	require.NoError(t, cs.Remove(section))
	require.False(t, cs.Catalog.Contains(section))
	require.False(t, alice.IsEnrolledInSection(section))
	require.False(t, bob.IsWaitListedInSection(section))
	require.Empty(t, alice.Transcript.Sections(), "removal posts no grades")
}

func TestCatalogService_Remove_AbsentSectionIsAnError(t *testing.T) {
	cs := newCatalogService()
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})

	require.Error(t, cs.Remove(section))
}

func TestCatalogService_CloseAllSections(t *testing.T) {
	cs := newCatalogService()
	slotA := mustTimeSlot(t, MondayWednesdayFriday, 9, 0, 9, 50)
	slotB := mustTimeSlot(t, TuesdayThursday, 11, 0, 12, 15)
	a := mustSection(t, mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3), sectionOpts{crn: 10001, timeSlot: &slotA})
	b := mustSection(t, mustCourse(t, 2, "MATH", 10550, "Calculus I", 4), sectionOpts{crn: 20002, location: roomB, timeSlot: &slotB, lecturer: lectBob})
	require.Equal(t, AddSuccessful, cs.Add(a))
	require.Equal(t, AddSuccessful, cs.Add(b))

	cs.CloseAllSections()
	require.True(t, a.IsClosed())
	require.True(t, b.IsClosed())

	// Idempotent.
	cs.CloseAllSections()
	require.True(t, a.IsClosed())
}
