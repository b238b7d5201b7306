package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Catalog represents the persisted set of sections offered in one semester
type Catalog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Term      string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_catalog_semester" json:"term"` // FALL, SPRING, SUMMER
	Year      int            `gorm:"not null;uniqueIndex:idx_catalog_semester" json:"year"`

	// Relationships
	Sections []Section `gorm:"foreignKey:CatalogID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
}

// Course represents a course as a whole (e.g., "CSE 30332")
type Course struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Mnemonic     string         `gorm:"type:varchar(4);not null;uniqueIndex:idx_course_identity" json:"mnemonic"`
	CourseNumber int            `gorm:"not null;uniqueIndex:idx_course_identity" json:"course_number"`
	Title        string         `gorm:"not null" json:"title"`
	CreditHours  int            `gorm:"default:0" json:"credit_hours"`

	// Relationships
	Prerequisites []CoursePrerequisite `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"prerequisites,omitempty"`
}

// CoursePrerequisite is one required-course/minimum-grade pair of a course
type CoursePrerequisite struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	CourseID         uint   `gorm:"not null;index" json:"course_id"`
	RequiredCourseID uint   `gorm:"not null" json:"required_course_id"`
	MinimumGrade     string `gorm:"type:varchar(4);not null" json:"minimum_grade"`

	// Relationships
	RequiredCourse Course `gorm:"foreignKey:RequiredCourseID" json:"required_course,omitempty"`
}

// Lecturer represents a lecturer or professor
type Lecturer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	NetID     string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"net_id"`
	FirstName string         `gorm:"not null" json:"first_name"`
	LastName  string         `json:"last_name"` // mononym lecturers have no last name
}

// Section represents one persisted offering of a course in a catalog
type Section struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	CatalogID uint           `gorm:"not null;index" json:"catalog_id"`
	CRN       int            `gorm:"not null;index" json:"crn"`
	Number    int            `gorm:"not null" json:"number"`
	CourseID  uint           `gorm:"not null;index" json:"course_id"`
	Term      string         `gorm:"type:varchar(10);not null" json:"term"`
	Year      int            `gorm:"not null" json:"year"`

	// Location
	Building     string `gorm:"not null" json:"building"`
	Room         string `gorm:"not null" json:"room"`
	RoomCapacity int    `gorm:"not null" json:"room_capacity"`

	// Time slot; meeting days stored as a JSON array of weekday numbers
	MeetingDays datatypes.JSON `gorm:"type:jsonb" json:"meeting_days"`
	StartHour   int            `json:"start_hour"`
	StartMinute int            `json:"start_minute"`
	EndHour     int            `json:"end_hour"`
	EndMinute   int            `json:"end_minute"`

	LecturerID uint `gorm:"not null;index" json:"lecturer_id"`

	// Enrollment
	EnrollmentCapacity int    `gorm:"not null" json:"enrollment_capacity"`
	WaitListCapacity   int    `gorm:"not null" json:"wait_list_capacity"`
	Status             string `gorm:"type:varchar(10);default:'OPEN'" json:"status"` // OPEN, CLOSED

	// Relationships
	Catalog  Catalog           `gorm:"foreignKey:CatalogID;constraint:OnDelete:CASCADE" json:"-"`
	Course   Course            `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Lecturer Lecturer          `gorm:"foreignKey:LecturerID" json:"lecturer,omitempty"`
	Roster   []EnrollmentEntry `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"-"`
}
