package registry

import "fmt"

// SectionKey is the identity of a section: section number plus course
// plus semester. CRN is catalog-unique but not part of section identity.
type SectionKey struct {
	SectionNumber int
	Course        CourseKey
	Semester      Semester
}

// Section is one scheduled offering of a course in a semester: a CRN,
// a room, a time slot, a lecturer, and an enrollment roster. The Section
// owns its Enrollment; the Enrollment holds references to Students.
type Section struct {
	CRN           int
	SectionNumber int
	Course        *Course
	Semester      Semester
	Location      Location
	TimeSlot      TimeSlot
	Lecturer      Lecturer
	Enrollment    *Enrollment
}

// NewSection validates and builds a Section. The CRN must be in
// [1, 99999], the section number in [1, 999], and the enrollment capacity
// must not exceed the location's fire code room capacity.
func NewSection(crn, sectionNumber int, course *Course, semester Semester, location Location, timeSlot TimeSlot, lecturer Lecturer, enrollment *Enrollment) (*Section, error) {
	if crn < 1 || crn > 99999 {
		return nil, fmt.Errorf("invalid CRN: %d - must be between 00001-99999 inclusive", crn)
	}
	if sectionNumber < 1 || sectionNumber > 999 {
		return nil, fmt.Errorf("invalid section number: %d - must be between 001-999 inclusive", sectionNumber)
	}
	if enrollment.EnrollmentCapacity() > location.RoomCapacity {
		return nil, fmt.Errorf("enrollment capacity %d exceeds fire code limit %d for %s",
			enrollment.EnrollmentCapacity(), location.RoomCapacity, location)
	}
	return &Section{
		CRN:           crn,
		SectionNumber: sectionNumber,
		Course:        course,
		Semester:      semester,
		Location:      location,
		TimeSlot:      timeSlot,
		Lecturer:      lecturer,
		Enrollment:    enrollment,
	}, nil
}

// Key returns the section's identity.
func (s *Section) Key() SectionKey {
	return SectionKey{
		SectionNumber: s.SectionNumber,
		Course:        s.Course.Key(),
		Semester:      s.Semester,
	}
}

// Same reports whether two sections are the same section, comparing by
// section number, course and semester.
func (s *Section) Same(other *Section) bool {
	if other == nil {
		return false
	}
	return s.Key() == other.Key()
}

// OverlapsWith reports whether the section's time slot conflicts with
// another time slot.
func (s *Section) OverlapsWith(other TimeSlot) bool {
	return s.TimeSlot.OverlapsWith(other)
}

// SetEnrollmentCapacity changes the section's enrolled-seat capacity,
// re-checking the location's fire code limit. As with
// Enrollment.SetEnrollmentCapacity, shrinking below the current enrolled
// count evicts no one.
func (s *Section) SetEnrollmentCapacity(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("enrollment capacity cannot be negative, got %d", capacity)
	}
	if capacity > s.Location.RoomCapacity {
		return fmt.Errorf("new enrollment capacity %d is too large for %s (fire code limit %d)",
			capacity, s.Location, s.Location.RoomCapacity)
	}
	return s.Enrollment.SetEnrollmentCapacity(capacity)
}

// SetWaitListCapacity changes the section's wait list capacity.
func (s *Section) SetWaitListCapacity(capacity int) error {
	return s.Enrollment.SetWaitListCapacity(capacity)
}

// EnrollmentCapacity returns the enrolled-seat capacity.
func (s *Section) EnrollmentCapacity() int { return s.Enrollment.EnrollmentCapacity() }

// EnrollmentSize returns the number of enrolled students.
func (s *Section) EnrollmentSize() int { return s.Enrollment.EnrolledSize() }

// IsEnrollmentFull reports whether the enrolled count is at capacity.
func (s *Section) IsEnrollmentFull() bool { return s.Enrollment.IsFull() }

// WaitListCapacity returns the wait list capacity.
func (s *Section) WaitListCapacity() int { return s.Enrollment.WaitListCapacity() }

// WaitListSize returns the number of wait-listed students.
func (s *Section) WaitListSize() int { return s.Enrollment.WaitListSize() }

// IsWaitListFull reports whether the wait list is at capacity.
func (s *Section) IsWaitListFull() bool { return s.Enrollment.IsWaitListFull() }

// EnrolledStudents returns a copy of the enrolled students.
func (s *Section) EnrolledStudents() []*Student { return s.Enrollment.EnrolledStudents() }

// WaitListedStudents returns a copy of the wait list in priority order.
func (s *Section) WaitListedStudents() []*Student { return s.Enrollment.WaitListedStudents() }

// IsStudentEnrolled reports whether the student is enrolled.
func (s *Section) IsStudentEnrolled(student *Student) bool {
	return s.Enrollment.IsStudentEnrolled(student)
}

// IsStudentWaitListed reports whether the student is wait listed.
func (s *Section) IsStudentWaitListed(student *Student) bool {
	return s.Enrollment.IsStudentWaitListed(student)
}

// AddStudentToEnrolled adds the student to the section's enrolled set.
func (s *Section) AddStudentToEnrolled(student *Student) error {
	return s.Enrollment.AddStudentToEnrolled(student)
}

// AddStudentToWaitList adds the student to the end of the wait list.
func (s *Section) AddStudentToWaitList(student *Student) error {
	return s.Enrollment.AddStudentToWaitList(student)
}

// RemoveStudentFromEnrolled removes the student from the enrolled set.
func (s *Section) RemoveStudentFromEnrolled(student *Student) error {
	return s.Enrollment.RemoveEnrolledStudent(student)
}

// RemoveStudentFromWaitList removes the student from the wait list.
func (s *Section) RemoveStudentFromWaitList(student *Student) error {
	return s.Enrollment.RemoveWaitListedStudent(student)
}

// FirstStudentOnWaitList returns the head of the wait list.
func (s *Section) FirstStudentOnWaitList() (*Student, error) {
	return s.Enrollment.FirstStudentOnWaitList()
}

// Status returns the section's enrollment status.
func (s *Section) Status() EnrollmentStatus { return s.Enrollment.Status() }

// SetStatus changes the section's enrollment status.
func (s *Section) SetStatus(status EnrollmentStatus) { s.Enrollment.SetStatus(status) }

// IsClosed reports whether enrollment is closed.
func (s *Section) IsClosed() bool { return s.Enrollment.IsClosed() }

func (s *Section) String() string {
	return fmt.Sprintf("Section(crn=%d, number=%d, course=%s)", s.CRN, s.SectionNumber, s.Course)
}
