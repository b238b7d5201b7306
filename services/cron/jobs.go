package cron

import (
	"fmt"
	"time"

	"github.com/sfaraj/registrar/model"
)

// How long audit and job log rows are kept before pruning.
const logRetention = 90 * 24 * time.Hour

// CloseEnrollment closes every section of every catalog once the add
// deadline passes. Sections already closed stay closed, so re-running
// after a missed tick is harmless.
func (m *CronManager) CloseEnrollment() {
	jobName := "close_enrollment"

	closed, err := m.registrar.CloseAllCatalogs()
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to close catalogs: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Closed enrollment on %d sections", closed))
}

// CleanupOldLogs prunes audit rows and cron job logs older than the
// retention window.
func (m *CronManager) CleanupOldLogs() {
	jobName := "cleanup_old_logs"

	cutoff := time.Now().Add(-logRetention)

	audits := m.db.Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&model.RegistrationAudit{})
	if audits.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to prune audit rows: %w", audits.Error))
		return
	}

	jobLogs := m.db.Unscoped().
		Where("started_at < ? AND status <> ?", cutoff, "running").
		Delete(&model.CronJobLog{})
	if jobLogs.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to prune job logs: %w", jobLogs.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Pruned %d audit rows and %d job logs",
		audits.RowsAffected, jobLogs.RowsAffected))
}
