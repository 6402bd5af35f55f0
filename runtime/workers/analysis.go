package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sentence-lab/contract"
	"sentence-lab/domain"
	"sentence-lab/errors"

	"github.com/google/uuid"
)

var _ contract.Worker = (*AnalysisWorker)(nil)

// Job is one sentence waiting for validation. Line is 1-based.
type Job struct {
	BatchID  uuid.UUID
	Line     int
	Sentence string
}

type AnalysisWorker struct {
	analyzer contract.IAnalyzer
	jobs     <-chan Job
	reports  chan<- domain.Report
	log      *slog.Logger
}

func NewAnalysisWorker(analyzer contract.IAnalyzer,
	jobs <-chan Job, reports chan<- domain.Report, log *slog.Logger) *AnalysisWorker {
	return &AnalysisWorker{
		analyzer: analyzer,
		jobs:     jobs,
		reports:  reports,
		log:      log,
	}
}

// Run returns nil once the job channel is closed and drained.
// A panicking analyzer ends the run with ErrWorkerPanic naming the lost line.
func (w *AnalysisWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			report, err := w.analyze(job)
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				w.log.Debug("Stopping worker")
				return ctx.Err()
			case w.reports <- report:
			}
		}
	}
}

func (w *AnalysisWorker) analyze(job Job) (report domain.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: batch %s line %d: %v", errors.ErrWorkerPanic, job.BatchID, job.Line, r)
		}
	}()

	report = domain.Report{
		ID:      uuid.New(),
		BatchID: job.BatchID,
		Line:    job.Line,
		Result:  w.analyzer.Analyze(job.Sentence),
	}
	w.log.Debug("Sentence analyzed",
		"report", report.ID,
		"batch", report.BatchID,
		"line", report.Line,
		"verdict", report.Result.Verdict.String(),
		"violation", report.Result.Violation.String())
	return report, nil
}
