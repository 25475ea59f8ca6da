// Package queue runs analyses requested over RabbitMQ: requests are consumed
// from one queue, analyzed, prepended to the history and answered on another.
package queue

import (
	"time"

	"github.com/jonathan/placement-prep/internal/types"
)

// Result statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// AnalysisRequest is the body of a message on the request queue.
type AnalysisRequest struct {
	RequestID string `json:"request_id"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	JDText    string `json:"jd_text"`
}

// AnalysisReply is the body of a message on the result queue.
type AnalysisReply struct {
	RequestID string                `json:"request_id"`
	Status    string                `json:"status"`
	Message   string                `json:"message"`
	Analysis  *types.AnalysisResult `json:"analysis,omitempty"`
	Error     string                `json:"error,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
}
