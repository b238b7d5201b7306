package model

import (
	"time"

	"gorm.io/gorm"
)

// Roster states for an EnrollmentEntry
const (
	RosterStateEnrolled   = "enrolled"
	RosterStateWaitListed = "waitlisted"
)

// Student represents a persisted student
type Student struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	NetID     string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"net_id"`
	FirstName string         `gorm:"not null" json:"first_name"`
	LastName  string         `json:"last_name"`
	Year      int            `gorm:"default:1" json:"year"`

	// Relationships
	Roster     []EnrollmentEntry `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Transcript []TranscriptEntry `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

// EnrollmentEntry links one student to one section's roster, either as
// enrolled or as wait listed. Position orders the wait list (0 = head)
// and is ignored for enrolled entries.
type EnrollmentEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	SectionID uint      `gorm:"not null;index;uniqueIndex:idx_roster_membership" json:"section_id"`
	StudentID uint      `gorm:"not null;index;uniqueIndex:idx_roster_membership" json:"student_id"`
	State     string    `gorm:"type:varchar(12);not null" json:"state"` // enrolled, waitlisted
	Position  int       `gorm:"default:0" json:"position"`

	// Relationships
	Section Section `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"-"`
	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TranscriptEntry is one section/grade pair on a student's transcript.
// A student has at most one grade per section; re-posting overwrites.
type TranscriptEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	StudentID uint      `gorm:"not null;index;uniqueIndex:idx_transcript_entry" json:"student_id"`
	SectionID uint      `gorm:"not null;uniqueIndex:idx_transcript_entry" json:"section_id"`
	Grade     string    `gorm:"type:varchar(4);not null" json:"grade"`

	// Relationships
	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Section Section `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"-"`
}
