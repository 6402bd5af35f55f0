package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrFileNotFound    = fmt.Errorf("file not found")
	ErrInvalidConfig   = fmt.Errorf("invalid configuration")
	ErrNotAnalyzed     = fmt.Errorf("sentence has not been analyzed")
	ErrNoDiagnostic    = fmt.Errorf("no diagnostic for this sentence")
	ErrIncompleteBatch = fmt.Errorf("incomplete batch")
)
