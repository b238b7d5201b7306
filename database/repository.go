package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sfaraj/registrar/model"
	"github.com/sfaraj/registrar/registry"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Repository maps persisted rows to registry aggregates and back. The
// engine stays pure and in-memory; the repository loads the whole state
// at boot and writes back the pieces each mutation touched.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on an open GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// State is the engine state loaded at boot, plus the row ids needed to
// write mutations back.
type State struct {
	Catalogs map[registry.Semester]*registry.Catalog
	Students map[int64]*registry.Student
	Courses  map[registry.CourseKey]*registry.Course

	CatalogRowIDs map[registry.Semester]uint
	SectionRowIDs map[registry.SectionKey]uint
	CourseRowIDs  map[registry.CourseKey]uint
}

// Load reads catalogs, courses, students, rosters and transcripts into a
// fully linked engine state.
func (r *Repository) Load() (*State, error) {
	state := &State{
		Catalogs:      make(map[registry.Semester]*registry.Catalog),
		Students:      make(map[int64]*registry.Student),
		Courses:       make(map[registry.CourseKey]*registry.Course),
		CatalogRowIDs: make(map[registry.Semester]uint),
		SectionRowIDs: make(map[registry.SectionKey]uint),
		CourseRowIDs:  make(map[registry.CourseKey]uint),
	}

	courses, err := r.loadCourses(state)
	if err != nil {
		return nil, err
	}

	var studentRows []model.Student
	if err := r.db.Find(&studentRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}
	for _, row := range studentRows {
		s := registry.NewStudent(int64(row.ID), row.NetID, row.FirstName, row.LastName, row.Year)
		state.Students[s.ID] = s
	}

	var catalogRows []model.Catalog
	if err := r.db.Preload("Sections").Preload("Sections.Lecturer").Find(&catalogRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}

	sectionsByRowID := make(map[uint]*registry.Section)
	for _, row := range catalogRows {
		semester, err := registry.NewSemester(registry.Term(row.Term), row.Year)
		if err != nil {
			return nil, fmt.Errorf("catalog %d has invalid semester: %w", row.ID, err)
		}
		catalog := registry.NewCatalog(semester)
		state.Catalogs[semester] = catalog
		state.CatalogRowIDs[semester] = row.ID

		for _, secRow := range row.Sections {
			section, err := r.buildSection(secRow, semester, courses)
			if err != nil {
				return nil, err
			}
			if _, err := catalog.Add(section); err != nil {
				return nil, err
			}
			state.SectionRowIDs[section.Key()] = secRow.ID
			sectionsByRowID[secRow.ID] = section
		}
	}

	// Transcripts load before rosters: a graded roster entry must be
	// restored to the section roster but not to the student's schedule.
	if err := r.loadTranscripts(state, sectionsByRowID); err != nil {
		return nil, err
	}
	if err := r.loadRosters(state, sectionsByRowID); err != nil {
		return nil, err
	}

	return state, nil
}

func (r *Repository) loadCourses(state *State) (map[uint]*registry.Course, error) {
	var courseRows []model.Course
	if err := r.db.Preload("Prerequisites").Find(&courseRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}

	byRowID := make(map[uint]*registry.Course, len(courseRows))
	for _, row := range courseRows {
		course, err := registry.NewCourse(int(row.ID), row.Mnemonic, row.CourseNumber, row.Title, row.CreditHours)
		if err != nil {
			return nil, fmt.Errorf("course row %d is invalid: %w", row.ID, err)
		}
		byRowID[row.ID] = course
		state.Courses[course.Key()] = course
		state.CourseRowIDs[course.Key()] = row.ID
	}

	// Prerequisites link courses to courses, so wire them in a second
	// pass once every course object exists.
	for _, row := range courseRows {
		course := byRowID[row.ID]
		for _, prereq := range row.Prerequisites {
			required, ok := byRowID[prereq.RequiredCourseID]
			if !ok {
				return nil, fmt.Errorf("course %d requires unknown course %d", row.ID, prereq.RequiredCourseID)
			}
			grade, err := registry.ParseGrade(prereq.MinimumGrade)
			if err != nil {
				return nil, fmt.Errorf("course %d has invalid prerequisite grade: %w", row.ID, err)
			}
			course.Prerequisite.Add(required, grade)
		}
	}

	return byRowID, nil
}

func (r *Repository) buildSection(row model.Section, semester registry.Semester, courses map[uint]*registry.Course) (*registry.Section, error) {
	course, ok := courses[row.CourseID]
	if !ok {
		return nil, fmt.Errorf("section %d references unknown course %d", row.ID, row.CourseID)
	}

	days, err := DaysFromJSON(row.MeetingDays)
	if err != nil {
		return nil, fmt.Errorf("section %d has invalid meeting days: %w", row.ID, err)
	}
	slot, err := registry.NewTimeSlot(days, row.StartHour, row.StartMinute, row.EndHour, row.EndMinute)
	if err != nil {
		return nil, fmt.Errorf("section %d has invalid time slot: %w", row.ID, err)
	}

	enrollment, err := registry.NewEnrollment(row.EnrollmentCapacity, row.WaitListCapacity)
	if err != nil {
		return nil, fmt.Errorf("section %d has invalid capacities: %w", row.ID, err)
	}
	enrollment.SetStatus(registry.EnrollmentStatus(row.Status))

	location := registry.Location{
		Building:     row.Building,
		Room:         row.Room,
		RoomCapacity: row.RoomCapacity,
	}
	lecturer := registry.Lecturer{
		ID:        int(row.LecturerID),
		NetID:     row.Lecturer.NetID,
		FirstName: row.Lecturer.FirstName,
		LastName:  row.Lecturer.LastName,
	}

	return registry.NewSection(row.CRN, row.Number, course, semester, location, slot, lecturer, enrollment)
}

func (r *Repository) loadRosters(state *State, sections map[uint]*registry.Section) error {
	// Ordering by position keeps each section's wait list FIFO when the
	// entries are re-added in iteration order.
	var entries []model.EnrollmentEntry
	if err := r.db.Order("position asc").Find(&entries).Error; err != nil {
		return fmt.Errorf("failed to load rosters: %w", err)
	}

	for _, entry := range entries {
		section, ok := sections[entry.SectionID]
		if !ok {
			continue // section removed; stale roster entry
		}
		student, ok := state.Students[int64(entry.StudentID)]
		if !ok {
			return fmt.Errorf("roster entry %d references unknown student %d", entry.ID, entry.StudentID)
		}

		switch entry.State {
		case model.RosterStateEnrolled:
			// Re-admitting a persisted roster must succeed even for
			// closed or over-capacity sections, so go in through the
			// schedule side and the raw roster together.
			if err := rehydrateEnrolled(section, student); err != nil {
				return fmt.Errorf("roster entry %d: %w", entry.ID, err)
			}
		case model.RosterStateWaitListed:
			if err := rehydrateWaitListed(section, student); err != nil {
				return fmt.Errorf("roster entry %d: %w", entry.ID, err)
			}
		default:
			return fmt.Errorf("roster entry %d has unknown state %q", entry.ID, entry.State)
		}
	}
	return nil
}

// rehydrateEnrolled restores a persisted enrollment without tripping the
// closed/full admission gates, which only apply to new registrations.
// A student with a transcript entry for the section has already received
// a final grade: they stay on the section roster but the section does
// not return to their schedule.
func rehydrateEnrolled(section *registry.Section, student *registry.Student) error {
	status := section.Status()
	capacity := section.EnrollmentCapacity()
	section.SetStatus(registry.EnrollmentOpen)
	if section.IsEnrollmentFull() {
		if err := section.Enrollment.SetEnrollmentCapacity(section.EnrollmentSize() + 1); err != nil {
			return err
		}
	}
	err := section.AddStudentToEnrolled(student)
	section.Enrollment.SetEnrollmentCapacity(capacity)
	section.SetStatus(status)
	if err != nil {
		return err
	}
	if !student.Transcript.Contains(section) {
		student.Schedule.AddEnrolledSection(section)
	}
	return nil
}

func rehydrateWaitListed(section *registry.Section, student *registry.Student) error {
	status := section.Status()
	capacity := section.WaitListCapacity()
	enrollCap := section.EnrollmentCapacity()
	section.SetStatus(registry.EnrollmentOpen)
	// Wait listing requires a full enrollment; a persisted wait list may
	// predate a capacity bump, so pin capacity down for the re-add.
	if !section.IsEnrollmentFull() {
		if err := section.Enrollment.SetEnrollmentCapacity(section.EnrollmentSize()); err != nil {
			return err
		}
	}
	if section.IsWaitListFull() {
		if err := section.SetWaitListCapacity(section.WaitListSize() + 1); err != nil {
			return err
		}
	}
	err := section.AddStudentToWaitList(student)
	section.Enrollment.SetEnrollmentCapacity(enrollCap)
	section.SetWaitListCapacity(capacity)
	section.SetStatus(status)
	if err != nil {
		return err
	}
	student.Schedule.AddWaitListedSection(section)
	return nil
}

func (r *Repository) loadTranscripts(state *State, sections map[uint]*registry.Section) error {
	var entries []model.TranscriptEntry
	if err := r.db.Find(&entries).Error; err != nil {
		return fmt.Errorf("failed to load transcripts: %w", err)
	}

	for _, entry := range entries {
		section, ok := sections[entry.SectionID]
		if !ok {
			continue
		}
		student, ok := state.Students[int64(entry.StudentID)]
		if !ok {
			return fmt.Errorf("transcript entry %d references unknown student %d", entry.ID, entry.StudentID)
		}
		grade, err := registry.ParseGrade(entry.Grade)
		if err != nil {
			return fmt.Errorf("transcript entry %d has invalid grade: %w", entry.ID, err)
		}
		student.AddGrade(section, grade)
	}
	return nil
}

// CreateSection persists a newly admitted section and returns its row id.
func (r *Repository) CreateSection(section *registry.Section, catalogID, courseID, lecturerID uint) (uint, error) {
	row := model.Section{
		CatalogID:          catalogID,
		CRN:                section.CRN,
		Number:             section.SectionNumber,
		CourseID:           courseID,
		Term:               string(section.Semester.Term),
		Year:               section.Semester.Year,
		Building:           section.Location.Building,
		Room:               section.Location.Room,
		RoomCapacity:       section.Location.RoomCapacity,
		MeetingDays:        DaysToJSON(section.TimeSlot.Days()),
		StartHour:          section.TimeSlot.StartHour(),
		StartMinute:        section.TimeSlot.StartMinute(),
		EndHour:            section.TimeSlot.EndHour(),
		EndMinute:          section.TimeSlot.EndMinute(),
		LecturerID:         lecturerID,
		EnrollmentCapacity: section.EnrollmentCapacity(),
		WaitListCapacity:   section.WaitListCapacity(),
		Status:             string(section.Status()),
	}
	if err := r.db.Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to persist section: %w", err)
	}
	return row.ID, nil
}

// DeleteSection removes a section row along with its roster entries.
func (r *Repository) DeleteSection(sectionRowID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", sectionRowID).Delete(&model.EnrollmentEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Section{}, sectionRowID).Error
	})
}

// SaveRoster rewrites a section's roster rows from the engine state.
func (r *Repository) SaveRoster(sectionRowID uint, section *registry.Section) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return saveRosterTx(tx, sectionRowID, section)
	})
}

// SaveDrop rewrites the section's roster and posts the DROP grade in one
// transaction, so a drop is never half-persisted.
func (r *Repository) SaveDrop(sectionRowID uint, section *registry.Section, studentID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := saveRosterTx(tx, sectionRowID, section); err != nil {
			return err
		}
		return upsertGradeTx(tx, studentID, sectionRowID, registry.GradeDrop)
	})
}

// SaveFinalGrades upserts a batch of transcript entries atomically.
func (r *Repository) SaveFinalGrades(sectionRowID uint, grades map[int64]registry.Grade) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for studentID, grade := range grades {
			if err := upsertGradeTx(tx, studentID, sectionRowID, grade); err != nil {
				return err
			}
		}
		return nil
	})
}

func saveRosterTx(tx *gorm.DB, sectionRowID uint, section *registry.Section) error {
	if err := tx.Where("section_id = ?", sectionRowID).Delete(&model.EnrollmentEntry{}).Error; err != nil {
		return err
	}
	for _, student := range section.EnrolledStudents() {
		entry := model.EnrollmentEntry{
			SectionID: sectionRowID,
			StudentID: uint(student.ID),
			State:     model.RosterStateEnrolled,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	}
	for position, student := range section.WaitListedStudents() {
		entry := model.EnrollmentEntry{
			SectionID: sectionRowID,
			StudentID: uint(student.ID),
			State:     model.RosterStateWaitListed,
			Position:  position,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

func upsertGradeTx(tx *gorm.DB, studentID int64, sectionRowID uint, grade registry.Grade) error {
	var entry model.TranscriptEntry
	err := tx.Where("student_id = ? AND section_id = ?", studentID, sectionRowID).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		entry = model.TranscriptEntry{
			StudentID: uint(studentID),
			SectionID: sectionRowID,
			Grade:     grade.String(),
		}
		return tx.Create(&entry).Error
	}
	if err != nil {
		return err
	}
	entry.Grade = grade.String()
	return tx.Save(&entry).Error
}

// CloseCatalogSections marks every section row of a catalog CLOSED.
func (r *Repository) CloseCatalogSections(catalogID uint) error {
	return r.db.Model(&model.Section{}).
		Where("catalog_id = ?", catalogID).
		Update("status", string(registry.EnrollmentClosed)).Error
}

// AppendAudit records one register/drop/grade outcome.
func (r *Repository) AppendAudit(audit *model.RegistrationAudit) error {
	return r.db.Create(audit).Error
}

// FindLecturerRow loads a lecturer row by id.
func (r *Repository) FindLecturerRow(id uint) (*model.Lecturer, error) {
	var row model.Lecturer
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// DaysToJSON encodes meeting days as a JSON array of weekday numbers.
func DaysToJSON(days []time.Weekday) datatypes.JSON {
	nums := make([]int, len(days))
	for i, d := range days {
		nums[i] = int(d)
	}
	raw, _ := json.Marshal(nums)
	return datatypes.JSON(raw)
}

// DaysFromJSON decodes a JSON array of weekday numbers.
func DaysFromJSON(raw datatypes.JSON) ([]time.Weekday, error) {
	var nums []int
	if err := json.Unmarshal([]byte(raw), &nums); err != nil {
		return nil, err
	}
	days := make([]time.Weekday, len(nums))
	for i, n := range nums {
		if n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday number: %d", n)
		}
		days[i] = time.Weekday(n)
	}
	return days, nil
}
