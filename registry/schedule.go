package registry

// Schedule is one student's view of the sections they are enrolled or
// wait listed in. It must stay consistent with each section's Enrollment;
// the services keep the two sides in step, never one without the other.
type Schedule struct {
	enrolled   map[SectionKey]*Section
	waitListed map[SectionKey]*Section
}

// NewSchedule returns an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{
		enrolled:   make(map[SectionKey]*Section),
		waitListed: make(map[SectionKey]*Section),
	}
}

// EnrolledSections returns a copy of the sections the student is enrolled in.
func (s *Schedule) EnrolledSections() []*Section {
	sections := make([]*Section, 0, len(s.enrolled))
	for _, sec := range s.enrolled {
		sections = append(sections, sec)
	}
	return sections
}

// WaitListedSections returns a copy of the sections the student is wait
// listed in.
func (s *Schedule) WaitListedSections() []*Section {
	sections := make([]*Section, 0, len(s.waitListed))
	for _, sec := range s.waitListed {
		sections = append(sections, sec)
	}
	return sections
}

// AddEnrolledSection records an enrolled section. Returns false if the
// section was already recorded.
func (s *Schedule) AddEnrolledSection(section *Section) bool {
	if _, ok := s.enrolled[section.Key()]; ok {
		return false
	}
	s.enrolled[section.Key()] = section
	return true
}

// RemoveEnrolledSection removes an enrolled section. Returns false if the
// student was not enrolled in it.
func (s *Schedule) RemoveEnrolledSection(section *Section) bool {
	if _, ok := s.enrolled[section.Key()]; !ok {
		return false
	}
	delete(s.enrolled, section.Key())
	return true
}

// IsEnrolledInSection reports whether the section is in the enrolled set.
func (s *Schedule) IsEnrolledInSection(section *Section) bool {
	_, ok := s.enrolled[section.Key()]
	return ok
}

// IsEnrolledInCourse reports whether any enrolled section is an offering
// of the course.
func (s *Schedule) IsEnrolledInCourse(course *Course) bool {
	for _, sec := range s.enrolled {
		if sec.Course.Same(course) {
			return true
		}
	}
	return false
}

// AddWaitListedSection records a wait-listed section. Returns false if the
// section was already recorded.
func (s *Schedule) AddWaitListedSection(section *Section) bool {
	if _, ok := s.waitListed[section.Key()]; ok {
		return false
	}
	s.waitListed[section.Key()] = section
	return true
}

// RemoveWaitListedSection removes a wait-listed section. Returns false if
// the student was not wait listed in it.
func (s *Schedule) RemoveWaitListedSection(section *Section) bool {
	if _, ok := s.waitListed[section.Key()]; !ok {
		return false
	}
	delete(s.waitListed, section.Key())
	return true
}

// IsWaitListedInSection reports whether the section is in the wait-listed set.
func (s *Schedule) IsWaitListedInSection(section *Section) bool {
	_, ok := s.waitListed[section.Key()]
	return ok
}

// IsWaitListedInCourse reports whether any wait-listed section is an
// offering of the course.
func (s *Schedule) IsWaitListedInCourse(course *Course) bool {
	for _, sec := range s.waitListed {
		if sec.Course.Same(course) {
			return true
		}
	}
	return false
}
