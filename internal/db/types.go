package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a parse run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	SourceName  string     `json:"source_name"`
	ContentType string     `json:"content_type"`
	Status      string     `json:"status"`
	MethodUsed  string     `json:"method_used,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status constants
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
