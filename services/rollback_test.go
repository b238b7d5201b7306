package services

import (
	"testing"

	"github.com/sfaraj/registrar/registry"
	"github.com/stretchr/testify/require"
)

func TestRollbackRegistration_Enrolled(t *testing.T) {
	section := buildSection(t, 10001, buildCourse(t, 1, "Algorithms"))
	student := registry.NewStudent(1, "mst3k", "Mike", "Nelson", 2)

	rs := registry.NewRegistrationService()
	result, err := rs.Register(student, section)
	require.NoError(t, err)
	require.Equal(t, registry.RegistrationSuccessEnrolled, result)

	// A failed roster write must not leave the student registered in
	// memory only.
	rollbackRegistration(student, section, result)

	require.False(t, section.IsStudentEnrolled(student))
	require.False(t, student.Schedule.IsEnrolledInSection(section))
}

func TestRollbackRegistration_WaitListed(t *testing.T) {
	section := buildSection(t, 10001, buildCourse(t, 1, "Algorithms"))
	first := registry.NewStudent(1, "abc1x", "Joel", "Robinson", 3)
	second := registry.NewStudent(2, "def2y", "Tom", "Servo", 1)
	third := registry.NewStudent(3, "ghi3z", "Crow", "Robot", 4)

	rs := registry.NewRegistrationService()
	for _, s := range []*registry.Student{first, second} {
		result, err := rs.Register(s, section)
		require.NoError(t, err)
		require.Equal(t, registry.RegistrationSuccessEnrolled, result)
	}

	result, err := rs.Register(third, section)
	require.NoError(t, err)
	require.Equal(t, registry.RegistrationSuccessWaitListed, result)

	rollbackRegistration(third, section, result)

	require.False(t, section.IsStudentWaitListed(third))
	require.False(t, third.Schedule.IsWaitListedInSection(section))
	// The students already enrolled are untouched.
	require.True(t, section.IsStudentEnrolled(first))
	require.True(t, section.IsStudentEnrolled(second))
}
