// Package runtime fans sentences out to analysis workers and gathers their reports.
// It orchestrates the run without containing any validation rule.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sentence-lab/contract"
	"sentence-lab/domain"
	"sentence-lab/errors"
	"sentence-lab/runtime/workers"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Pipeline struct {
	log             *slog.Logger
	analyzer        contract.IAnalyzer
	numWorkers      int
	bufferSize      int
	restartInterval time.Duration
}

func NewPipeline(log *slog.Logger, analyzer contract.IAnalyzer,
	numWorkers, bufferSize int, restartInterval time.Duration) *Pipeline {
	return &Pipeline{
		log:             log,
		analyzer:        analyzer,
		numWorkers:      max(numWorkers, 1),
		bufferSize:      max(bufferSize, 0),
		restartInterval: restartInterval,
	}
}

// Validate analyzes every sentence and returns one report per sentence, in input order.
// Sentences are independent, so workers share the analyzer without locking.
func (p *Pipeline) Validate(ctx context.Context, sentences []string) ([]domain.Report, error) {
	batchID := uuid.New()
	jobs := make(chan workers.Job, p.bufferSize)
	reports := make(chan domain.Report, p.bufferSize)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sup := workers.NewSupervisor(p.log, p.restartInterval)
	for range p.numWorkers {
		sup.Add(workers.NewAnalysisWorker(p.analyzer, jobs, reports, p.log))
	}

	go func() {
		sup.Run(runCtx)
		close(reports)
	}()

	go func() {
		defer close(jobs)
		for i, s := range sentences {
			select {
			case <-runCtx.Done():
				return
			case jobs <- workers.Job{BatchID: batchID, Line: i + 1, Sentence: s}:
			}
		}
	}()

	p.log.Debug("Batch started", "batch", batchID, "sentences", len(sentences), "workers", p.numWorkers)
	ordered := make([]domain.Report, len(sentences))
	received := 0
	for r := range reports {
		ordered[r.Line-1] = r
		received++
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if received != len(sentences) {
		return nil, fmt.Errorf("%w: %d of %d sentences analyzed", errors.ErrIncompleteBatch, received, len(sentences))
	}

	invalid := lo.CountBy(ordered, func(r domain.Report) bool { return !r.Result.IsValid() })
	p.log.Info("Batch analyzed", "batch", batchID, "sentences", len(sentences), "invalid", invalid)
	return ordered, nil
}
