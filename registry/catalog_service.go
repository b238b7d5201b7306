package registry

import "fmt"

// AddSectionResult is the outcome of CatalogService.Add. Every failure
// mode a caller must branch on is a value here, not an error.
type AddSectionResult string

const (
	// AddSuccessful means the section was added to the catalog.
	AddSuccessful AddSectionResult = "SUCCESSFUL"

	// AddFailedSemesterMismatch means the section's semester doesn't
	// match the catalog's.
	AddFailedSemesterMismatch AddSectionResult = "FAILED_SEMESTER_MISMATCH"

	// AddFailedSectionAlreadyExists means the section is already in the
	// catalog.
	AddFailedSectionAlreadyExists AddSectionResult = "FAILED_SECTION_ALREADY_EXISTS"

	// AddFailedCRNConflict means another section already uses this CRN.
	AddFailedCRNConflict AddSectionResult = "FAILED_CRN_CONFLICT"

	// AddFailedLocationConflict means another section meets in the same
	// location at an overlapping time.
	AddFailedLocationConflict AddSectionResult = "FAILED_LOCATION_CONFLICT"

	// AddFailedLecturerConflict means the lecturer already teaches
	// another section at an overlapping time.
	AddFailedLecturerConflict AddSectionResult = "FAILED_LECTURER_CONFLICT"

	// AddFailedEnrollmentNotEmpty means students were already registered
	// for the section before it entered the catalog.
	AddFailedEnrollmentNotEmpty AddSectionResult = "FAILED_ENROLLMENT_NOT_EMPTY"
)

// CatalogService admits and removes sections for one catalog under the
// conflict rules of the registrar.
type CatalogService struct {
	Catalog *Catalog
}

// NewCatalogService returns a service for the given catalog.
func NewCatalogService(catalog *Catalog) *CatalogService {
	return &CatalogService{Catalog: catalog}
}

// Add attempts to add a section to the catalog. The checks run in order
// and the first failure wins; nothing is mutated unless every check
// passes:
//
//  1. the section's semester must match the catalog's
//  2. the section must not already be in the catalog
//  3. the CRN must be unique within the catalog
//  4. no section in the same location may overlap in time
//  5. no section with the same lecturer may overlap in time
//  6. the section's enrollment and wait list must both be empty
func (cs *CatalogService) Add(section *Section) AddSectionResult {
	if section.Semester != cs.Catalog.Semester {
		return AddFailedSemesterMismatch
	}

	if cs.Catalog.Contains(section) {
		return AddFailedSectionAlreadyExists
	}

	if cs.Catalog.SectionByCRN(section.CRN) != nil {
		return AddFailedCRNConflict
	}

	for _, existing := range cs.Catalog.Sections() {
		if existing.Location == section.Location && existing.OverlapsWith(section.TimeSlot) {
			return AddFailedLocationConflict
		}
	}

	for _, existing := range cs.Catalog.Sections() {
		if existing.Lecturer == section.Lecturer && existing.OverlapsWith(section.TimeSlot) {
			return AddFailedLecturerConflict
		}
	}

	if section.EnrollmentSize() > 0 || section.WaitListSize() > 0 {
		return AddFailedEnrollmentNotEmpty
	}

	// Semester match was already verified, so Add cannot fail here.
	_, _ = cs.Catalog.Add(section)
	return AddSuccessful
}

// Remove takes a section out of the catalog, first removing it from the
// schedule of every enrolled and wait-listed student. Transcripts are not
// touched. It is an error if the section is not in the catalog.
func (cs *CatalogService) Remove(section *Section) error {
	if !cs.Catalog.Contains(section) {
		return fmt.Errorf("section not found in catalog: %s", section)
	}

	for _, student := range section.EnrolledStudents() {
		student.Schedule.RemoveEnrolledSection(section)
	}
	for _, student := range section.WaitListedStudents() {
		student.Schedule.RemoveWaitListedSection(section)
	}

	cs.Catalog.Remove(section)
	return nil
}

// CloseAllSections sets every section in the catalog to CLOSED. Invoked
// once at the add deadline; it cannot fail and is idempotent.
func (cs *CatalogService) CloseAllSections() {
	for _, section := range cs.Catalog.Sections() {
		section.SetStatus(EnrollmentClosed)
	}
}
