package registry

import "fmt"

// Prerequisite is the set of minimum grades in specific courses required
// to take a course. Each Prerequisite is owned by exactly one Course.
type Prerequisite struct {
	required map[CourseKey]prereqEntry
}

type prereqEntry struct {
	course       *Course
	minimumGrade Grade
}

// NewPrerequisite returns an empty prerequisite, satisfied by everyone.
func NewPrerequisite() *Prerequisite {
	return &Prerequisite{required: make(map[CourseKey]prereqEntry)}
}

// Add requires the given minimum grade in the given course. Adding a
// course already present replaces its minimum grade.
func (p *Prerequisite) Add(course *Course, minimumGrade Grade) {
	p.required[course.Key()] = prereqEntry{course: course, minimumGrade: minimumGrade}
}

// Remove removes a required course. It is an error to remove a course
// that is not part of the prerequisite.
func (p *Prerequisite) Remove(course *Course) error {
	if _, ok := p.required[course.Key()]; !ok {
		return fmt.Errorf("prerequisite doesn't include course: %s", course)
	}
	delete(p.required, course.Key())
	return nil
}

// MinimumGrade returns the minimum required grade for a required course.
func (p *Prerequisite) MinimumGrade(course *Course) (Grade, error) {
	entry, ok := p.required[course.Key()]
	if !ok {
		return 0, fmt.Errorf("prerequisite doesn't include course: %s", course)
	}
	return entry.minimumGrade, nil
}

// Courses returns the required courses.
func (p *Prerequisite) Courses() []*Course {
	courses := make([]*Course, 0, len(p.required))
	for _, entry := range p.required {
		courses = append(courses, entry.course)
	}
	return courses
}

// IsSatisfiedBy reports whether the student meets every requirement.
//
// A single required course is satisfied when the student's best recorded
// grade for it (by prerequisite score) meets the minimum, or when the
// student is currently enrolled in a section of it that has no transcript
// entry yet - being in the middle of the course counts. A student who is
// enrolled but already has a grade recorded for every enrolled section of
// the course does not satisfy the requirement, and neither does a student
// with no history and no enrollment. All required courses must pass.
func (p *Prerequisite) IsSatisfiedBy(student *Student) bool {
	for _, entry := range p.required {
		best, ok := student.BestGrade(entry.course)
		if ok && best.AtLeast(entry.minimumGrade) {
			continue
		}

		// Transcript alone doesn't satisfy it; current enrollment might.
		if !student.IsEnrolledInCourse(entry.course) {
			return false
		}

		inProgress := false
		for _, section := range student.EnrolledSections() {
			if !section.Course.Same(entry.course) {
				continue
			}
			if !student.Transcript.Contains(section) {
				inProgress = true
				break
			}
		}
		if !inProgress {
			// Enrolled, but every enrolled section already has a grade.
			return false
		}
	}
	return true
}
