package registry

import "fmt"

// Credit limits in hours. Students on academic probation get the reduced
// limit.
const (
	DefaultCreditLimit   = 18
	ProbationCreditLimit = 12
)

// Student represents a registered student. Students are reference
// entities identified by ID alone; the Schedule and Transcript they own
// hold references to Sections, never the other way around.
type Student struct {
	ID         int64
	NetID      string
	FirstName  string
	LastName   string
	Year       int
	Transcript *Transcript
	Schedule   *Schedule
}

// NewStudent builds a student with an empty transcript and schedule.
func NewStudent(id int64, netID, firstName, lastName string, year int) *Student {
	return &Student{
		ID:         id,
		NetID:      netID,
		FirstName:  firstName,
		LastName:   lastName,
		Year:       year,
		Transcript: NewTranscript(),
		Schedule:   NewSchedule(),
	}
}

// EnrolledSections returns the sections the student is enrolled in.
func (s *Student) EnrolledSections() []*Section {
	return s.Schedule.EnrolledSections()
}

// WaitListedSections returns the sections the student is wait listed in.
func (s *Student) WaitListedSections() []*Section {
	return s.Schedule.WaitListedSections()
}

// IsEnrolledInSection reports whether the student is enrolled in the section.
func (s *Student) IsEnrolledInSection(section *Section) bool {
	return s.Schedule.IsEnrolledInSection(section)
}

// IsEnrolledInCourse reports whether the student is enrolled in any
// section of the course.
func (s *Student) IsEnrolledInCourse(course *Course) bool {
	return s.Schedule.IsEnrolledInCourse(course)
}

// IsWaitListedInSection reports whether the student is wait listed in the
// section.
func (s *Student) IsWaitListedInSection(section *Section) bool {
	return s.Schedule.IsWaitListedInSection(section)
}

// Grade returns the grade the student received in a section.
func (s *Student) Grade(section *Section) (Grade, error) {
	return s.Transcript.Grade(section)
}

// BestGrade returns the best grade the student has across sections of a
// course, used when checking prerequisites.
func (s *Student) BestGrade(course *Course) (Grade, bool) {
	return s.Transcript.BestGrade(course)
}

// AddGrade records a grade on the student's transcript, overwriting any
// existing grade for the section.
func (s *Student) AddGrade(section *Section, grade Grade) {
	s.Transcript.Add(section, grade)
}

// GPA returns the student's grade point average.
func (s *Student) GPA() float64 {
	return s.Transcript.GPA()
}

// IsOnProbation reports whether the student's GPA puts them on probation.
func (s *Student) IsOnProbation() bool {
	return s.Transcript.IsOnProbation()
}

// CreditLimit returns the maximum number of credit hours the student may
// be enrolled and wait listed in combined. Probation reduces the limit.
func (s *Student) CreditLimit() int {
	if s.IsOnProbation() {
		return ProbationCreditLimit
	}
	return DefaultCreditLimit
}

func (s *Student) String() string {
	return fmt.Sprintf("%s (%s)", s.FirstName, s.NetID)
}
