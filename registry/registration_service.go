package registry

// RegistrationResult is the outcome of RegistrationService.Register.
type RegistrationResult string

const (
	// RegistrationSuccessEnrolled means the student was enrolled in the
	// section.
	RegistrationSuccessEnrolled RegistrationResult = "SUCCESS_ENROLLED"

	// RegistrationSuccessWaitListed means the student was added to the
	// section's wait list.
	RegistrationSuccessWaitListed RegistrationResult = "SUCCESS_WAIT_LISTED"

	// RegistrationFailedAlreadyInCourse means the student is already
	// enrolled or wait listed in a section of this course this semester.
	RegistrationFailedAlreadyInCourse RegistrationResult = "FAILED_ALREADY_IN_COURSE"

	// RegistrationFailedEnrollmentClosed means the section is closed.
	RegistrationFailedEnrollmentClosed RegistrationResult = "FAILED_ENROLLMENT_CLOSED"

	// RegistrationFailedSectionFull means both the enrollment and the
	// wait list are full.
	RegistrationFailedSectionFull RegistrationResult = "FAILED_SECTION_FULL"

	// RegistrationFailedScheduleConflict means the section's time slot
	// overlaps a section the student is already enrolled or wait listed
	// in this semester.
	RegistrationFailedScheduleConflict RegistrationResult = "FAILED_SCHEDULE_CONFLICT"

	// RegistrationFailedPrerequisiteNotMet means the student does not
	// meet the course's prerequisites.
	RegistrationFailedPrerequisiteNotMet RegistrationResult = "FAILED_PREREQUISITE_NOT_MET"

	// RegistrationFailedCreditLimitViolation means registering would put
	// the student over their credit limit, counting both enrolled and
	// wait-listed credits.
	RegistrationFailedCreditLimitViolation RegistrationResult = "FAILED_CREDIT_LIMIT_VIOLATION"
)

// RegistrationService registers and drops students against sections. It is
// the one place that mutates a Section's Enrollment and a Student's
// Schedule together; the pair is never updated through either entity
// alone.
type RegistrationService struct{}

// NewRegistrationService returns a RegistrationService.
func NewRegistrationService() *RegistrationService {
	return &RegistrationService{}
}

// Register attempts to enroll a student in a section, falling back to the
// wait list when the enrollment is full. The gates run in order; every
// check is a pure read, and only the final step mutates - on any failure
// nothing changes:
//
//  1. not already enrolled or wait listed in a section of this course
//     this semester
//  2. the section is open
//  3. the section is not completely full (enrollment plus wait list)
//  4. no time conflict with the student's enrolled or wait-listed
//     sections this semester
//  5. prerequisites are satisfied
//  6. the student stays within their credit limit
//
// On success both the section's roster and the student's schedule are
// updated together.
func (rs *RegistrationService) Register(student *Student, section *Section) (RegistrationResult, error) {
	for _, s := range student.EnrolledSections() {
		if s.Course.Same(section.Course) && s.Semester == section.Semester {
			return RegistrationFailedAlreadyInCourse, nil
		}
	}
	for _, s := range student.WaitListedSections() {
		if s.Course.Same(section.Course) && s.Semester == section.Semester {
			return RegistrationFailedAlreadyInCourse, nil
		}
	}

	if section.IsClosed() {
		return RegistrationFailedEnrollmentClosed, nil
	}

	if section.IsEnrollmentFull() && section.IsWaitListFull() {
		return RegistrationFailedSectionFull, nil
	}

	committed := append(student.EnrolledSections(), student.WaitListedSections()...)
	for _, s := range committed {
		if s.Semester == section.Semester && s.OverlapsWith(section.TimeSlot) {
			return RegistrationFailedScheduleConflict, nil
		}
	}

	if !section.Course.Prerequisite.IsSatisfiedBy(student) {
		return RegistrationFailedPrerequisiteNotMet, nil
	}

	currentCredits := 0
	for _, s := range committed {
		if s.Semester == section.Semester {
			currentCredits += s.Course.CreditHours
		}
	}
	if currentCredits+section.Course.CreditHours > student.CreditLimit() {
		return RegistrationFailedCreditLimitViolation, nil
	}

	if !section.IsEnrollmentFull() {
		if err := section.AddStudentToEnrolled(student); err != nil {
			return "", err
		}
		student.Schedule.AddEnrolledSection(section)
		return RegistrationSuccessEnrolled, nil
	}

	// Enrollment full but the section isn't, so the wait list has room.
	if err := section.AddStudentToWaitList(student); err != nil {
		return "", err
	}
	student.Schedule.AddWaitListedSection(section)
	return RegistrationSuccessWaitListed, nil
}

// Drop removes a student from a section's enrollment or wait list,
// updating their schedule to match and recording a DROP grade on their
// transcript (even over an existing grade). Returns false with no
// mutation if the student is neither enrolled nor wait listed.
//
// When an enrolled student drops out of a still-open section and that
// frees a seat, the first student on the wait list is promoted into
// enrollment, with their schedule updated to match. No promotion happens
// while the section is closed, open seat or not.
func (rs *RegistrationService) Drop(student *Student, section *Section) (bool, error) {
	isEnrolled := section.IsStudentEnrolled(student)
	isWaitListed := section.IsStudentWaitListed(student)

	if !isEnrolled && !isWaitListed {
		return false, nil
	}

	if !isEnrolled {
		// Wait listed only: off the list, off the schedule, DROP recorded.
		if err := section.RemoveStudentFromWaitList(student); err != nil {
			return false, err
		}
		student.Schedule.RemoveWaitListedSection(section)
		student.AddGrade(section, GradeDrop)
		return true, nil
	}

	if err := section.RemoveStudentFromEnrolled(student); err != nil {
		return false, err
	}
	student.Schedule.RemoveEnrolledSection(section)
	student.AddGrade(section, GradeDrop)

	if section.Status() == EnrollmentOpen && !section.IsEnrollmentFull() && section.WaitListSize() > 0 {
		if err := rs.promoteFromWaitList(section); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (rs *RegistrationService) promoteFromWaitList(section *Section) error {
	next, err := section.FirstStudentOnWaitList()
	if err != nil {
		return err
	}
	if err := section.RemoveStudentFromWaitList(next); err != nil {
		return err
	}
	if err := section.AddStudentToEnrolled(next); err != nil {
		return err
	}
	next.Schedule.RemoveWaitListedSection(section)
	next.Schedule.AddEnrolledSection(section)
	return nil
}
