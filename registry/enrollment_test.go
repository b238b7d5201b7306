package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEnrollment_RejectsNegativeCapacities(t *testing.T) {
	_, err := NewEnrollment(-1, 5)
	require.Error(t, err)

	_, err = NewEnrollment(5, -1)
	require.Error(t, err)
}

func TestEnrollment_AddStudentToEnrolled(t *testing.T) {
	e := mustEnrollment(t, 2, 2)
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	bob := NewStudent(2, "bob2", "Bob", "Baker", 3)

	require.NoError(t, e.AddStudentToEnrolled(alice))
	require.True(t, e.IsStudentEnrolled(alice))
	require.Equal(t, 1, e.EnrolledSize())

	// Duplicate add is a contract violation.
	require.Error(t, e.AddStudentToEnrolled(alice))

	require.NoError(t, e.AddStudentToEnrolled(bob))
	require.True(t, e.IsFull())

	carol := NewStudent(3, "carol3", "Carol", "Clark", 1)
	require.Error(t, e.AddStudentToEnrolled(carol), "enrollment is full")
}

func TestEnrollment_ClosedRejectsAllAdds(t *testing.T) {
	e := mustEnrollment(t, 2, 2)
	e.SetStatus(EnrollmentClosed)
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	require.Error(t, e.AddStudentToEnrolled(alice))
	require.Error(t, e.AddStudentToWaitList(alice))
}

func TestEnrollment_WaitListRequiresFullEnrollment(t *testing.T) {
	e := mustEnrollment(t, 1, 2)
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	bob := NewStudent(2, "bob2", "Bob", "Baker", 3)

	// Enrollment has a free seat, so wait listing is refused.
	require.Error(t, e.AddStudentToWaitList(bob))

	require.NoError(t, e.AddStudentToEnrolled(alice))
	require.NoError(t, e.AddStudentToWaitList(bob))
	require.True(t, e.IsStudentWaitListed(bob))

	// Already wait listed.
	require.Error(t, e.AddStudentToWaitList(bob))
	// Enrolled students cannot also be wait listed.
	require.Error(t, e.AddStudentToWaitList(alice))
}

func TestEnrollment_WaitListIsFIFO(t *testing.T) {
	e := mustEnrollment(t, 1, 3)
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	bob := NewStudent(2, "bob2", "Bob", "Baker", 3)
	carol := NewStudent(3, "carol3", "Carol", "Clark", 1)
	dave := NewStudent(4, "dave4", "Dave", "Dean", 4)

	require.NoError(t, e.AddStudentToEnrolled(alice))
	require.NoError(t, e.AddStudentToWaitList(bob))
	require.NoError(t, e.AddStudentToWaitList(carol))
	require.NoError(t, e.AddStudentToWaitList(dave))

	first, err := e.FirstStudentOnWaitList()
	require.NoError(t, err)
	require.Equal(t, bob, first)

	// Removing from the middle preserves the order behind.
	require.NoError(t, e.RemoveWaitListedStudent(carol))
	require.Equal(t, []*Student{bob, dave}, e.WaitListedStudents())
}

func TestEnrollment_RemoveAbsentStudentFails(t *testing.T) {
	e := mustEnrollment(t, 2, 2)
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)

	require.Error(t, e.RemoveEnrolledStudent(alice))
	require.Error(t, e.RemoveWaitListedStudent(alice))

	_, err := e.FirstStudentOnWaitList()
	require.Error(t, err, "empty wait list has no head")
}

func TestEnrollment_ShrinkingCapacityEvictsNoOne(t *testing.T) {
	e := mustEnrollment(t, 2, 2)
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	bob := NewStudent(2, "bob2", "Bob", "Baker", 3)
	require.NoError(t, e.AddStudentToEnrolled(alice))
	require.NoError(t, e.AddStudentToEnrolled(bob))

	require.NoError(t, e.SetEnrollmentCapacity(1))
	require.Equal(t, 2, e.EnrolledSize(), "no eviction on shrink")
	require.True(t, e.IsFull())

	carol := NewStudent(3, "carol3", "Carol", "Clark", 1)
	require.Error(t, e.AddStudentToEnrolled(carol), "new admissions blocked while over capacity")

	require.Error(t, e.SetEnrollmentCapacity(-1))
	require.Error(t, e.SetWaitListCapacity(-1))
}

func TestEnrollment_AccessorsReturnCopies(t *testing.T) {
	e := mustEnrollment(t, 2, 2)
	alice := NewStudent(1, "alice1", "Alice", "Anderson", 2)
	require.NoError(t, e.AddStudentToEnrolled(alice))

	enrolled := e.EnrolledStudents()
	enrolled[0] = nil
	require.True(t, e.IsStudentEnrolled(alice), "mutating the copy must not touch the roster")
}
