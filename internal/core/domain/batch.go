package domain

import (
	"time"

	"github.com/google/uuid"
)

// BatchRun is the audit record written once per batch invocation.
type BatchRun struct {
	ID           uuid.UUID
	Platform     Platform
	RunDate      time.Time
	Total        int
	SuccessCount int
	WarningCount int
	FailureCount int
	Duration     time.Duration
	CreatedAt    time.Time
}

// AuditLog is a free-text entry for human-facing status displays.
type AuditLog struct {
	Kind    string
	Message string
	Details map[string]any
}
