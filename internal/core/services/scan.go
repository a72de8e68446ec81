// Package services wires the scan pipeline together: resolve the
// identity, walk the tree, feed every file to the extraction engine,
// and hand the result collections to the exporter exactly once.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitsniff/internal/core/domain"
	"gitsniff/internal/core/ports/driven"
	"gitsniff/internal/extract"
	"gitsniff/internal/logger"
	"gitsniff/internal/report"
)

// ScanService runs one scan end to end.
type ScanService struct {
	resolver driven.Resolver
	walker   driven.Walker
	runs     driven.RunStore // nil disables history
}

// NewScanService creates a scan service. runs may be nil, in which
// case no history is recorded.
func NewScanService(resolver driven.Resolver, walker driven.Walker, runs driven.RunStore) *ScanService {
	return &ScanService{resolver: resolver, walker: walker, runs: runs}
}

// Scan resolves the identity, streams every scannable file through a
// fresh extraction engine and returns the accumulated report.
//
// On any traversal failure the partial collections are discarded and
// no report is returned: partial extraction results are considered
// misleading rather than useful.
func (s *ScanService) Scan(ctx context.Context, id domain.RepoIdentity, cfg extract.Config) (*report.Report, error) {
	startedAt := time.Now()

	endpoint, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Info("scanning %s", endpoint)

	engine := extract.NewEngine(cfg)
	docs, errs := s.walker.Walk(ctx, endpoint)

	files := 0
	for doc := range docs {
		engine.Ingest(doc.Text)
		files++
	}

	if err := <-errs; err != nil {
		logger.Warn("traversal of %s aborted after %d files: %v", endpoint, files, err)
		s.record(ctx, endpoint, startedAt, cfg, 0, domain.RunStatusFailed)
		return nil, err
	}

	rep := engine.Report()
	logger.Info("scanned %d files, %d findings", files, rep.Total())
	s.record(ctx, endpoint, startedAt, cfg, rep.Total(), domain.RunStatusOK)

	return rep, nil
}

// record writes the run to history, best effort. A history failure
// never fails the scan.
func (s *ScanService) record(ctx context.Context, ep domain.Endpoint, startedAt time.Time, cfg extract.Config, findings int, status string) {
	if s.runs == nil {
		return
	}

	run := domain.ScanRun{
		ID:         uuid.NewString(),
		Repo:       ep.String(),
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Categories: cfg.EnabledCategories(),
		Findings:   findings,
		Status:     status,
	}
	if err := s.runs.SaveRun(ctx, run); err != nil {
		logger.Warn("recording run history: %v", err)
	}
}
