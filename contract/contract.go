//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"sentence-lab/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IAnalyzer validates one sentence. Implementations must be safe for concurrent use.
type IAnalyzer interface {
	Analyze(sentence string) domain.Result
}

// SentenceSource supplies the sentences to validate, in input order.
type SentenceSource interface {
	Sentences() ([]string, error)
}

// ReportSink receives reports in input order and renders them on Flush.
type ReportSink interface {
	Consume(ctx context.Context, report domain.Report) error
	Flush() error
}
