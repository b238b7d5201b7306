package registry

import "fmt"

// FinalGradesService posts end-of-term grades for a section.
type FinalGradesService struct{}

// NewFinalGradesService returns a FinalGradesService.
func NewFinalGradesService() *FinalGradesService {
	return &FinalGradesService{}
}

// ProcessFinalGrades records final grades on each student's transcript and
// removes the section from their enrolled schedule. The batch is
// two-phase and all-or-nothing: every student in the map must be currently
// enrolled in the section (wait-listed students cannot receive grades),
// and if any is not, no grade is posted and no schedule changes.
//
// Partial batches are fine - a professor need not upload every student's
// grade at once, and re-posting a student's grade overwrites the old one.
func (fs *FinalGradesService) ProcessFinalGrades(section *Section, finalGrades map[*Student]Grade) error {
	for student := range finalGrades {
		if !section.IsStudentEnrolled(student) {
			return fmt.Errorf("student is not enrolled in the section: %s", student)
		}
	}

	for student, grade := range finalGrades {
		student.AddGrade(section, grade)
		student.Schedule.RemoveEnrolledSection(section)
	}
	return nil
}
