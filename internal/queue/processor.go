package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

// Processor turns request bodies into replies. It holds no broker state.
type Processor struct {
	analyzer *analysis.Analyzer
	history  *storage.History
	now      func() time.Time
}

// NewProcessor creates a Processor that records analyses in history.
func NewProcessor(analyzer *analysis.Analyzer, history *storage.History) *Processor {
	return &Processor{analyzer: analyzer, history: history, now: time.Now}
}

// Process analyzes one request body. Malformed and invalid requests, and a
// history that can no longer be decoded, produce a failed reply rather than an
// error; the returned error is reserved for storage failures that are worth
// redelivering.
func (p *Processor) Process(ctx context.Context, body []byte) (*AnalysisReply, error) {
	var req AnalysisRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return p.failed("", fmt.Sprintf("invalid request body: %v", err)), nil
	}

	result, err := p.analyzer.AnalyzeRequest(&types.AnalyzeRequest{
		Company: req.Company,
		Role:    req.Role,
		JDText:  req.JDText,
	})
	if err != nil {
		return p.failed(req.RequestID, err.Error()), nil
	}

	if err := retry(3, func() error {
		return p.history.Prepend(ctx, result)
	}); err != nil {
		var corrupt *storage.CorruptValueError
		if errors.As(err, &corrupt) {
			return p.failed(req.RequestID, fmt.Sprintf("failed to save analysis: %v", corrupt)), nil
		}
		return nil, fmt.Errorf("failed to save analysis %s: %w", result.ID, err)
	}

	return &AnalysisReply{
		RequestID: req.RequestID,
		Status:    StatusCompleted,
		Message:   "analysis completed",
		Analysis:  result,
		Timestamp: p.now().UTC(),
	}, nil
}

func (p *Processor) failed(requestID, reason string) *AnalysisReply {
	return &AnalysisReply{
		RequestID: requestID,
		Status:    StatusFailed,
		Message:   "analysis failed",
		Error:     reason,
		Timestamp: p.now().UTC(),
	}
}

// retryBackoff is the base delay between attempts.
var retryBackoff = 250 * time.Millisecond

// retry runs fn up to attempts times with linear backoff. A corrupt stored
// value fails the same way every time and is returned at once.
func retry(attempts int, fn func() error) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		var corrupt *storage.CorruptValueError
		if errors.As(lastErr, &corrupt) {
			return lastErr
		}
		if i < attempts-1 {
			time.Sleep(retryBackoff * time.Duration(i+1))
		}
	}
	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
