// Package pipeline orchestrates batch analysis: several job description files
// are ingested and analyzed concurrently, then saved to the history in input order.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/ingestion"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

// Steps reported through ProgressEvent.
const (
	StepIngest  = "ingest"
	StepAnalyze = "analyze"
	StepSave    = "save"
	StepFailed  = "failed"
)

// defaultConcurrency bounds the number of files processed at once.
const defaultConcurrency = 4

// ProgressEvent represents a progress update during batch execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Path    string `json:"path"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when batch progress occurs. It may be called from
// several goroutines, but never concurrently.
type ProgressCallback func(event ProgressEvent)

// BatchOptions holds configuration for a batch run
type BatchOptions struct {
	Paths       []string
	Company     string // Applied to every file; blank uses the generic company context
	Role        string // Blank derives a role from the file name
	Analyzer    *analysis.Analyzer
	History     *storage.History // Nil skips persistence
	Concurrency int
	OnProgress  ProgressCallback
}

// Item is the outcome for one input file.
type Item struct {
	Path     string                `json:"path"`
	Metadata *ingestion.Metadata   `json:"metadata,omitempty"`
	Analysis *types.AnalysisResult `json:"analysis,omitempty"`
	Err      error                 `json:"-"`
	Error    string                `json:"error,omitempty"`
}

// BatchResult holds the items in input order.
type BatchResult struct {
	Items     []Item `json:"items"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// RunBatch ingests and analyzes every path. A file that cannot be read or is
// empty is recorded as a failed item; a history write failure aborts the run.
func RunBatch(ctx context.Context, opts BatchOptions) (*BatchResult, error) {
	if len(opts.Paths) == 0 {
		return nil, fmt.Errorf("no job description files given")
	}
	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = analysis.New()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	var mu sync.Mutex
	emit := func(step, path, message string, content any) {
		if opts.OnProgress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		opts.OnProgress(ProgressEvent{Step: step, Path: path, Message: message, Content: content})
	}

	items := make([]Item, len(opts.Paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range opts.Paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			items[i] = analyzeFile(analyzer, path, opts.Company, opts.Role, emit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &BatchResult{Items: items}
	for i := range items {
		item := &items[i]
		if item.Err != nil {
			item.Error = item.Err.Error()
			result.Failed++
			continue
		}
		if opts.History != nil {
			if err := opts.History.Prepend(ctx, item.Analysis); err != nil {
				return nil, fmt.Errorf("failed to save analysis for %s: %w", item.Path, err)
			}
			emit(StepSave, item.Path, "Saved analysis "+item.Analysis.ID, nil)
		}
		result.Succeeded++
	}

	return result, nil
}

func analyzeFile(analyzer *analysis.Analyzer, path, company, role string, emit func(string, string, string, any)) Item {
	item := Item{Path: path}

	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		item.Err = err
		emit(StepFailed, path, err.Error(), nil)
		return item
	}
	item.Metadata = meta
	emit(StepIngest, path, fmt.Sprintf("Read %d characters (%s)", meta.Chars, meta.Format), meta)

	if role == "" {
		role = RoleFromPath(path)
	}
	result, err := analyzer.AnalyzeRequest(&types.AnalyzeRequest{Company: company, Role: role, JDText: text})
	if err != nil {
		item.Err = err
		emit(StepFailed, path, err.Error(), nil)
		return item
	}
	item.Analysis = result
	emit(StepAnalyze, path, fmt.Sprintf("Readiness %d/100", result.FinalScore), result)

	return item
}

// RoleFromPath turns "senior_backend-engineer.pdf" into "senior backend engineer".
func RoleFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}
