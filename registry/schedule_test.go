package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchedule_EnrolledAndWaitListedAreSeparate(t *testing.T) {
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	section := mustSection(t, course, sectionOpts{})
	s := NewSchedule()

	require.True(t, s.AddEnrolledSection(section))
	require.False(t, s.AddEnrolledSection(section), "duplicate add reports false")
	require.True(t, s.IsEnrolledInSection(section))
	require.True(t, s.IsEnrolledInCourse(course))
	require.False(t, s.IsWaitListedInSection(section))

	require.True(t, s.RemoveEnrolledSection(section))
	require.False(t, s.RemoveEnrolledSection(section))

	require.True(t, s.AddWaitListedSection(section))
	require.True(t, s.IsWaitListedInSection(section))
	require.True(t, s.IsWaitListedInCourse(course))
	require.False(t, s.IsEnrolledInCourse(course))
	require.True(t, s.RemoveWaitListedSection(section))
}

func TestSchedule_IdentityBySectionKey(t *testing.T) {
	course := mustCourse(t, 1, "CSE", 30332, "Programming Paradigms", 3)
	a := mustSection(t, course, sectionOpts{crn: 10001})
	// Same section identity under a different CRN and room.
	b := mustSection(t, course, sectionOpts{crn: 20002, location: roomB})

	s := NewSchedule()
	require.True(t, s.AddEnrolledSection(a))
	require.False(t, s.AddEnrolledSection(b), "same section key")
	require.True(t, s.IsEnrolledInSection(b))
}
