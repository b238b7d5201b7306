package model

import (
	"time"

	"gorm.io/gorm"
)

// RegistrationAudit records every register/drop attempt and its outcome.
// BatchID groups grade uploads posted together.
type RegistrationAudit struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	BatchID   string         `gorm:"type:varchar(36);index" json:"batch_id"`
	StudentID uint           `gorm:"not null;index" json:"student_id"`
	SectionID uint           `gorm:"index" json:"section_id"`
	Action    string         `gorm:"type:varchar(20);not null" json:"action"` // register, drop, grade
	Result    string         `gorm:"type:varchar(40);not null" json:"result"`
}

// TableName specifies the table name for RegistrationAudit
func (RegistrationAudit) TableName() string {
	return "registration_audits"
}

// CronJobLog represents execution logs for background cron jobs
type CronJobLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	JobName     string         `gorm:"type:varchar(100);not null;index" json:"job_name"`
	Status      string         `gorm:"type:varchar(20);not null" json:"status"` // started, completed, failed
	StartedAt   time.Time      `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at"`
	Duration    int            `json:"duration_ms"` // Duration in milliseconds
	Message     string         `gorm:"type:text" json:"message"`
	ErrorMsg    string         `gorm:"type:text" json:"error_msg"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for CronJobLog
func (CronJobLog) TableName() string {
	return "cron_job_logs"
}
