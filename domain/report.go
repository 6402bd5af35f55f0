package domain

import "github.com/google/uuid"

// Report ties a Result to its position in the input and to the batch that produced it.
type Report struct {
	ID      uuid.UUID
	BatchID uuid.UUID
	Line    int
	Result  Result
}
