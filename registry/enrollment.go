package registry

import "fmt"

// EnrollmentStatus represents whether a section is open to enrollment.
type EnrollmentStatus string

const (
	// EnrollmentOpen means the section can add students to its
	// enrollment or wait list.
	EnrollmentOpen EnrollmentStatus = "OPEN"

	// EnrollmentClosed means the add deadline has passed: no students
	// can be added, and no students move from the wait list to the
	// enrolled list.
	EnrollmentClosed EnrollmentStatus = "CLOSED"
)

// Enrollment is the capacity-bounded roster of one section: the set of
// enrolled students plus an ordered wait list. Each Enrollment is owned by
// exactly one Section.
type Enrollment struct {
	status             EnrollmentStatus
	enrollmentCapacity int
	waitListCapacity   int
	enrolled           map[int64]*Student
	waitListed         []*Student
}

// NewEnrollment builds an open, empty Enrollment. Capacities must not be
// negative.
func NewEnrollment(enrollmentCapacity, waitListCapacity int) (*Enrollment, error) {
	if enrollmentCapacity < 0 {
		return nil, fmt.Errorf("enrollment capacity cannot be negative, got %d", enrollmentCapacity)
	}
	if waitListCapacity < 0 {
		return nil, fmt.Errorf("wait list capacity cannot be negative, got %d", waitListCapacity)
	}
	return &Enrollment{
		status:             EnrollmentOpen,
		enrollmentCapacity: enrollmentCapacity,
		waitListCapacity:   waitListCapacity,
		enrolled:           make(map[int64]*Student),
	}, nil
}

// Status returns the current enrollment status.
func (e *Enrollment) Status() EnrollmentStatus {
	return e.status
}

// SetStatus changes the enrollment status. The engine only ever moves a
// section from OPEN to CLOSED at the add deadline.
func (e *Enrollment) SetStatus(status EnrollmentStatus) {
	e.status = status
}

// IsClosed reports whether the enrollment is closed.
func (e *Enrollment) IsClosed() bool {
	return e.status == EnrollmentClosed
}

// EnrollmentCapacity returns the enrolled-seat capacity.
func (e *Enrollment) EnrollmentCapacity() int {
	return e.enrollmentCapacity
}

// SetEnrollmentCapacity changes the enrolled-seat capacity. Shrinking the
// capacity below the current enrolled count does not evict anyone; it only
// blocks new admissions until the count falls back under capacity.
func (e *Enrollment) SetEnrollmentCapacity(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("enrollment capacity cannot be negative, got %d", capacity)
	}
	e.enrollmentCapacity = capacity
	return nil
}

// WaitListCapacity returns the wait list capacity.
func (e *Enrollment) WaitListCapacity() int {
	return e.waitListCapacity
}

// SetWaitListCapacity changes the wait list capacity. Like
// SetEnrollmentCapacity, it never removes students already on the list.
func (e *Enrollment) SetWaitListCapacity(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("wait list capacity cannot be negative, got %d", capacity)
	}
	e.waitListCapacity = capacity
	return nil
}

// IsFull reports whether the enrolled count is at or over capacity.
func (e *Enrollment) IsFull() bool {
	return len(e.enrolled) >= e.enrollmentCapacity
}

// IsWaitListFull reports whether the wait list is at or over capacity.
func (e *Enrollment) IsWaitListFull() bool {
	return len(e.waitListed) >= e.waitListCapacity
}

// EnrolledSize returns the number of enrolled students.
func (e *Enrollment) EnrolledSize() int {
	return len(e.enrolled)
}

// WaitListSize returns the number of wait-listed students.
func (e *Enrollment) WaitListSize() int {
	return len(e.waitListed)
}

// EnrolledStudents returns a copy of the set of enrolled students. The
// backing container is owned by the Enrollment and never escapes.
func (e *Enrollment) EnrolledStudents() []*Student {
	students := make([]*Student, 0, len(e.enrolled))
	for _, s := range e.enrolled {
		students = append(students, s)
	}
	return students
}

// WaitListedStudents returns a copy of the wait list in priority order.
func (e *Enrollment) WaitListedStudents() []*Student {
	students := make([]*Student, len(e.waitListed))
	copy(students, e.waitListed)
	return students
}

// IsStudentEnrolled reports whether the student is enrolled.
func (e *Enrollment) IsStudentEnrolled(student *Student) bool {
	_, ok := e.enrolled[student.ID]
	return ok
}

// IsStudentWaitListed reports whether the student is on the wait list.
func (e *Enrollment) IsStudentWaitListed(student *Student) bool {
	return e.waitListIndex(student) >= 0
}

// AddStudentToEnrolled adds the student to the enrolled set. It is an
// error if enrollment is closed, full, or the student is already enrolled.
func (e *Enrollment) AddStudentToEnrolled(student *Student) error {
	if e.IsClosed() {
		return fmt.Errorf("enrollment closed")
	}
	if e.IsFull() {
		return fmt.Errorf("enrollment full, cannot add student %s", student)
	}
	if e.IsStudentEnrolled(student) {
		return fmt.Errorf("student %s is already enrolled in section", student)
	}
	e.enrolled[student.ID] = student
	return nil
}

// AddStudentToWaitList appends the student to the end of the wait list.
// It is an error if enrollment is closed, the wait list is full, the
// enrollment is not yet full (the student should enroll directly instead),
// or the student is already enrolled or wait listed.
func (e *Enrollment) AddStudentToWaitList(student *Student) error {
	if e.IsClosed() {
		return fmt.Errorf("enrollment closed")
	}
	if e.IsWaitListFull() {
		return fmt.Errorf("wait list full, cannot add student %s", student)
	}
	if !e.IsFull() {
		return fmt.Errorf("enrollment not full, student %s can enroll directly", student)
	}
	if e.IsStudentEnrolled(student) {
		return fmt.Errorf("student %s is already enrolled and cannot be wait listed", student)
	}
	if e.IsStudentWaitListed(student) {
		return fmt.Errorf("student %s is already on the wait list", student)
	}
	e.waitListed = append(e.waitListed, student)
	return nil
}

// RemoveEnrolledStudent removes the student from the enrolled set. It is
// an error if the student is not enrolled.
func (e *Enrollment) RemoveEnrolledStudent(student *Student) error {
	if !e.IsStudentEnrolled(student) {
		return fmt.Errorf("student %s is not enrolled", student)
	}
	delete(e.enrolled, student.ID)
	return nil
}

// RemoveWaitListedStudent removes the student from the wait list,
// preserving the order of everyone behind them. It is an error if the
// student is not wait listed.
func (e *Enrollment) RemoveWaitListedStudent(student *Student) error {
	i := e.waitListIndex(student)
	if i < 0 {
		return fmt.Errorf("student %s is not wait listed", student)
	}
	e.waitListed = append(e.waitListed[:i], e.waitListed[i+1:]...)
	return nil
}

// FirstStudentOnWaitList returns the head of the wait list, the next
// student to be promoted should a seat open up.
func (e *Enrollment) FirstStudentOnWaitList() (*Student, error) {
	if len(e.waitListed) == 0 {
		return nil, fmt.Errorf("wait list is empty")
	}
	return e.waitListed[0], nil
}

func (e *Enrollment) waitListIndex(student *Student) int {
	for i, s := range e.waitListed {
		if s.ID == student.ID {
			return i
		}
	}
	return -1
}
