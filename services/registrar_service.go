package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sfaraj/registrar/database"
	"github.com/sfaraj/registrar/model"
	"github.com/sfaraj/registrar/registry"
	"github.com/sfaraj/registrar/utils"
	"github.com/sfaraj/registrar/utils/cache"
)

// Lookup failures surfaced to handlers as 404s.
var (
	ErrSemesterNotFound = errors.New("no catalog exists for that semester")
	ErrSectionNotFound  = errors.New("no section with that CRN exists in the catalog")
	ErrStudentNotFound  = errors.New("no student with that id exists")
	ErrCourseNotFound   = errors.New("no course with that mnemonic and number exists")
	ErrLecturerNotFound = errors.New("no lecturer with that id exists")
)

const catalogCacheTTL = 5 * time.Minute

// RegistrarService owns the in-memory registration engine. All reads and
// writes go through one mutex, so registrations are serialized and the
// engine never sees concurrent mutation. Successful mutations are written
// back through the repository before the lock is released.
type RegistrarService struct {
	mu     sync.Mutex
	repo   *database.Repository
	cache  *cache.RedisCache
	logger *utils.Logger
	state  *database.State

	registration *registry.RegistrationService
	finalGrades  *registry.FinalGradesService
}

// NewRegistrarService loads the full engine state from the database.
// The cache may be nil; catalog listings then skip Redis.
func NewRegistrarService(repo *database.Repository, redisCache *cache.RedisCache, logger *utils.Logger) (*RegistrarService, error) {
	state, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load registrar state: %w", err)
	}
	logger.Log(fmt.Sprintf("Registrar state loaded: %d catalogs, %d courses, %d students",
		len(state.Catalogs), len(state.Courses), len(state.Students)))

	return &RegistrarService{
		repo:         repo,
		cache:        redisCache,
		logger:       logger,
		state:        state,
		registration: registry.NewRegistrationService(),
		finalGrades:  registry.NewFinalGradesService(),
	}, nil
}

// AddSectionInput carries everything needed to build a section. The
// course and lecturer must already exist.
type AddSectionInput struct {
	Term               string
	Year               int
	CRN                int
	SectionNumber      int
	CourseMnemonic     string
	CourseNumber       int
	Building           string
	Room               string
	RoomCapacity       int
	MeetingDays        []time.Weekday
	StartHour          int
	StartMinute        int
	EndHour            int
	EndMinute          int
	LecturerID         uint
	EnrollmentCapacity int
	WaitListCapacity   int
}

// AddSection builds a section from the input and offers it to the
// semester's catalog. Validation errors and unknown references return an
// error; admission policy failures return a result value.
func (s *RegistrarService) AddSection(in AddSectionInput) (registry.AddSectionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	semester, err := registry.NewSemester(registry.Term(in.Term), in.Year)
	if err != nil {
		return "", err
	}
	catalog, ok := s.state.Catalogs[semester]
	if !ok {
		return "", ErrSemesterNotFound
	}

	courseKey := registry.CourseKey{Mnemonic: in.CourseMnemonic, CourseNumber: in.CourseNumber}
	course, ok := s.state.Courses[courseKey]
	if !ok {
		return "", ErrCourseNotFound
	}

	lecturerRow, err := s.repo.FindLecturerRow(in.LecturerID)
	if err != nil {
		return "", ErrLecturerNotFound
	}
	lecturer := registry.Lecturer{
		ID:        int(lecturerRow.ID),
		NetID:     lecturerRow.NetID,
		FirstName: lecturerRow.FirstName,
		LastName:  lecturerRow.LastName,
	}

	slot, err := registry.NewTimeSlot(in.MeetingDays, in.StartHour, in.StartMinute, in.EndHour, in.EndMinute)
	if err != nil {
		return "", err
	}
	enrollment, err := registry.NewEnrollment(in.EnrollmentCapacity, in.WaitListCapacity)
	if err != nil {
		return "", err
	}
	location := registry.Location{Building: in.Building, Room: in.Room, RoomCapacity: in.RoomCapacity}

	section, err := registry.NewSection(in.CRN, in.SectionNumber, course, semester, location, slot, lecturer, enrollment)
	if err != nil {
		return "", err
	}

	result := registry.NewCatalogService(catalog).Add(section)
	if result != registry.AddSuccessful {
		return result, nil
	}

	rowID, err := s.repo.CreateSection(section,
		s.state.CatalogRowIDs[semester],
		s.state.CourseRowIDs[courseKey],
		in.LecturerID)
	if err != nil {
		// Roll the in-memory admit back so memory and rows agree.
		catalog.Remove(section)
		return "", err
	}
	s.state.SectionRowIDs[section.Key()] = rowID

	s.invalidateListing(semester)
	s.logger.Log(fmt.Sprintf("Section added: crn=%d course=%s semester=%s", section.CRN, course, semester))
	return registry.AddSuccessful, nil
}

// RemoveSection removes a section from its catalog, dropping it from the
// schedule of every enrolled and wait-listed student. Transcripts keep
// any grades already posted.
func (s *RegistrarService) RemoveSection(term string, year, crn int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	semester, catalog, section, err := s.lookupSection(term, year, crn)
	if err != nil {
		return err
	}

	affected := make([]*registry.Student, 0, section.EnrollmentSize()+section.WaitListSize())
	affected = append(affected, section.EnrolledStudents()...)
	affected = append(affected, section.WaitListedStudents()...)

	if err := registry.NewCatalogService(catalog).Remove(section); err != nil {
		return err
	}

	key := section.Key()
	rowID := s.state.SectionRowIDs[key]
	if err := s.repo.DeleteSection(rowID); err != nil {
		return err
	}
	delete(s.state.SectionRowIDs, key)

	s.invalidateListing(semester)
	s.logger.Log(fmt.Sprintf("Section removed: crn=%d semester=%s, %d schedules updated", crn, semester, len(affected)))
	return nil
}

// CloseSemester marks every section in the semester's catalog CLOSED.
// Returns the number of sections in the catalog. Idempotent.
func (s *RegistrarService) CloseSemester(term string, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	semester, err := registry.NewSemester(registry.Term(term), year)
	if err != nil {
		return 0, err
	}
	catalog, ok := s.state.Catalogs[semester]
	if !ok {
		return 0, ErrSemesterNotFound
	}

	registry.NewCatalogService(catalog).CloseAllSections()
	if err := s.repo.CloseCatalogSections(s.state.CatalogRowIDs[semester]); err != nil {
		return 0, err
	}

	s.invalidateListing(semester)
	return catalog.Size(), nil
}

// CloseAllCatalogs closes every section of every catalog. Used by the
// add-deadline cron job. Returns the total number of sections touched.
func (s *RegistrarService) CloseAllCatalogs() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for semester, catalog := range s.state.Catalogs {
		registry.NewCatalogService(catalog).CloseAllSections()
		if err := s.repo.CloseCatalogSections(s.state.CatalogRowIDs[semester]); err != nil {
			return total, err
		}
		s.invalidateListing(semester)
		total += catalog.Size()
	}
	return total, nil
}

// Register attempts to register a student for the section with the given
// CRN, enrolling or wait listing per seat availability. Every attempt is
// audited with its outcome.
func (s *RegistrarService) Register(studentID int64, term string, year, crn int) (registry.RegistrationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.state.Students[studentID]
	if !ok {
		return "", ErrStudentNotFound
	}
	semester, _, section, err := s.lookupSection(term, year, crn)
	if err != nil {
		return "", err
	}

	result, err := s.registration.Register(student, section)
	if err != nil {
		return "", err
	}

	s.audit(uuid.NewString(), studentID, section, "register", string(result))

	if result == registry.RegistrationSuccessEnrolled || result == registry.RegistrationSuccessWaitListed {
		if err := s.repo.SaveRoster(s.state.SectionRowIDs[section.Key()], section); err != nil {
			// Undo the in-memory registration so memory and rows agree.
			rollbackRegistration(student, section, result)
			return "", err
		}
		s.invalidateListing(semester)
	}
	return result, nil
}

// rollbackRegistration reverses a just-made registration on both the
// section roster and the student schedule.
func rollbackRegistration(student *registry.Student, section *registry.Section, result registry.RegistrationResult) {
	switch result {
	case registry.RegistrationSuccessEnrolled:
		_ = section.RemoveStudentFromEnrolled(student)
		student.Schedule.RemoveEnrolledSection(section)
	case registry.RegistrationSuccessWaitListed:
		_ = section.RemoveStudentFromWaitList(student)
		student.Schedule.RemoveWaitListedSection(section)
	}
}

// Drop removes a student from a section. Enrolled and wait-listed
// students both receive a DROP on their transcript, and an open seat is
// backfilled from the wait list.
func (s *RegistrarService) Drop(studentID int64, term string, year, crn int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.state.Students[studentID]
	if !ok {
		return false, ErrStudentNotFound
	}
	semester, _, section, err := s.lookupSection(term, year, crn)
	if err != nil {
		return false, err
	}

	dropped, err := s.registration.Drop(student, section)
	if err != nil {
		return false, err
	}
	if !dropped {
		s.audit(uuid.NewString(), studentID, section, "drop", "NOT_IN_SECTION")
		return false, nil
	}

	// A drop can promote from the wait list and posts a DROP grade, so
	// it cannot be cleanly unwound. Persist it atomically and, if the
	// write fails, rebuild the engine from the rows instead.
	rowID := s.state.SectionRowIDs[section.Key()]
	if err := s.repo.SaveDrop(rowID, section, studentID); err != nil {
		s.restoreFromRows()
		return false, err
	}

	s.audit(uuid.NewString(), studentID, section, "drop", "DROPPED")
	s.invalidateListing(semester)
	return true, nil
}

// PostFinalGrades posts a grade for every enrolled student of a section,
// all or nothing, and clears the section from each schedule. Grades are
// keyed by student id and given as letter strings. Returns the batch id
// grouping the audit rows.
func (s *RegistrarService) PostFinalGrades(term string, year, crn int, grades map[int64]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, section, err := s.lookupSection(term, year, crn)
	if err != nil {
		return "", err
	}

	finalGrades := make(map[*registry.Student]registry.Grade, len(grades))
	for studentID, letter := range grades {
		student, ok := s.state.Students[studentID]
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrStudentNotFound, studentID)
		}
		grade, err := registry.ParseGrade(letter)
		if err != nil {
			return "", err
		}
		finalGrades[student] = grade
	}

	if err := s.finalGrades.ProcessFinalGrades(section, finalGrades); err != nil {
		return "", err
	}

	gradeRows := make(map[int64]registry.Grade, len(finalGrades))
	for student, grade := range finalGrades {
		gradeRows[student.ID] = grade
	}
	rowID := s.state.SectionRowIDs[section.Key()]
	if err := s.repo.SaveFinalGrades(rowID, gradeRows); err != nil {
		s.restoreFromRows()
		return "", err
	}

	batchID := uuid.NewString()
	for student, grade := range finalGrades {
		s.audit(batchID, student.ID, section, "grade", grade.String())
	}

	s.logger.Log(fmt.Sprintf("Final grades posted: crn=%d count=%d batch=%s", crn, len(finalGrades), batchID))
	return batchID, nil
}

// ListSections returns the semester's catalog sorted by CRN, serving
// from Redis when a fresh listing is cached.
func (s *RegistrarService) ListSections(ctx context.Context, term string, year int) ([]SectionView, error) {
	semester, err := registry.NewSemester(registry.Term(term), year)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		var cached []SectionView
		if err := s.cache.GetJSON(ctx, listingKey(semester), &cached); err == nil {
			return cached, nil
		}
	}

	s.mu.Lock()
	catalog, ok := s.state.Catalogs[semester]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSemesterNotFound
	}
	views := make([]SectionView, 0, catalog.Size())
	for _, section := range catalog.Sections() {
		views = append(views, NewSectionView(section))
	}
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, listingKey(semester), views, catalogCacheTTL); err != nil {
			s.logger.Log(fmt.Sprintf("Failed to cache catalog listing for %s: %v", semester, err))
		}
	}
	return views, nil
}

// GetSection returns a single section by CRN.
func (s *RegistrarService) GetSection(term string, year, crn int) (SectionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, section, err := s.lookupSection(term, year, crn)
	if err != nil {
		return SectionView{}, err
	}
	return NewSectionView(section), nil
}

// StudentSchedule returns a student's enrolled and wait-listed sections.
func (s *RegistrarService) StudentSchedule(studentID int64) (ScheduleView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.state.Students[studentID]
	if !ok {
		return ScheduleView{}, ErrStudentNotFound
	}
	return NewScheduleView(student), nil
}

// StudentTranscript returns a student's full grade history and GPA.
func (s *RegistrarService) StudentTranscript(studentID int64) (TranscriptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.state.Students[studentID]
	if !ok {
		return TranscriptView{}, ErrStudentNotFound
	}
	return NewTranscriptView(student), nil
}

// lookupSection resolves a semester and CRN to a live section. Callers
// must hold the mutex.
func (s *RegistrarService) lookupSection(term string, year, crn int) (registry.Semester, *registry.Catalog, *registry.Section, error) {
	semester, err := registry.NewSemester(registry.Term(term), year)
	if err != nil {
		return registry.Semester{}, nil, nil, err
	}
	catalog, ok := s.state.Catalogs[semester]
	if !ok {
		return registry.Semester{}, nil, nil, ErrSemesterNotFound
	}
	section := catalog.SectionByCRN(crn)
	if section == nil {
		return registry.Semester{}, nil, nil, ErrSectionNotFound
	}
	return semester, catalog, section, nil
}

// restoreFromRows rebuilds the engine from the database after a failed
// write whose in-memory mutation cannot be reversed. Callers must hold
// the mutex.
func (s *RegistrarService) restoreFromRows() {
	state, err := s.repo.Load()
	if err != nil {
		s.logger.Log(fmt.Sprintf("Failed to reload registrar state after write failure: %v", err))
		return
	}
	s.state = state
}

func (s *RegistrarService) audit(batchID string, studentID int64, section *registry.Section, action, result string) {
	entry := &model.RegistrationAudit{
		BatchID:   batchID,
		StudentID: uint(studentID),
		SectionID: s.state.SectionRowIDs[section.Key()],
		Action:    action,
		Result:    result,
	}
	if err := s.repo.AppendAudit(entry); err != nil {
		s.logger.Log(fmt.Sprintf("Failed to append audit row: %v", err))
	}
}

func (s *RegistrarService) invalidateListing(semester registry.Semester) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, listingKey(semester)); err != nil {
		s.logger.Log(fmt.Sprintf("Failed to invalidate catalog listing for %s: %v", semester, err))
	}
}

func listingKey(semester registry.Semester) string {
	return fmt.Sprintf("catalog:listing:%s:%d", semester.Term, semester.Year)
}
