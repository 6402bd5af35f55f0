// Package domain contains core concepts of the sentence checker.
// This file defines rule violations and the outcome of a validation.
// Results are immutable once returned by the analyzer.
package domain

import (
	"fmt"
	"sentence-lab/errors"
)

const NotAnalyzedMessage = "Sentence has not been analyzed"

type Violation int

const (
	NoViolation Violation = iota
	EmptySentence
	Capitalization
	MissingTerminalPeriod
	UnspelledNumeral
	UnbalancedQuotation
	MultiplePeriods
)

var violationMessages = map[Violation]string{
	Capitalization:        "Sentence must start with a capital letter.",
	MissingTerminalPeriod: "Sentence must end with a period.",
	UnspelledNumeral:      "Numbers below 13 must be spelled out.",
	UnbalancedQuotation:   "Sentence must have an even number of quotations.",
	MultiplePeriods:       "Periods may only be used at the end of a sentence.",
}

var violationNames = map[Violation]string{
	NoViolation:           "None",
	EmptySentence:         "EmptySentence",
	Capitalization:        "Capitalization",
	MissingTerminalPeriod: "MissingTerminalPeriod",
	UnspelledNumeral:      "UnspelledNumeral",
	UnbalancedQuotation:   "UnbalancedQuotation",
	MultiplePeriods:       "MultiplePeriods",
}

// Message returns the human-readable reason for the violation.
// EmptySentence and NoViolation carry no message.
func (v Violation) Message() (string, bool) {
	msg, ok := violationMessages[v]
	return msg, ok
}

func (v Violation) String() string {
	if name, ok := violationNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Violation(%d)", int(v))
}

type Verdict int

const (
	Unevaluated Verdict = iota
	Valid
	Invalid
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "Valid"
	case Invalid:
		return "Invalid"
	default:
		return "Unevaluated"
	}
}

// Result is the outcome of validating one sentence.
// The zero value is an unevaluated result.
type Result struct {
	Sentence  string
	Verdict   Verdict
	Violation Violation
}

func NewValidResult(sentence string) Result {
	return Result{Sentence: sentence, Verdict: Valid, Violation: NoViolation}
}

func NewInvalidResult(sentence string, violation Violation) Result {
	return Result{Sentence: sentence, Verdict: Invalid, Violation: violation}
}

func (r Result) IsValid() bool {
	return r.Verdict == Valid
}

// Message returns the violation message, if the result carries one.
func (r Result) Message() (string, bool) {
	if r.Verdict != Invalid {
		return "", false
	}
	return r.Violation.Message()
}

// Diagnostic renders the block shown to the user for an invalid sentence.
// An unevaluated result yields the placeholder text with ErrNotAnalyzed.
// Asking for the diagnostic of a valid or empty sentence is a misuse and yields ErrNoDiagnostic.
func (r Result) Diagnostic() (string, error) {
	if r.Verdict == Unevaluated {
		return NotAnalyzedMessage, errors.ErrNotAnalyzed
	}
	msg, ok := r.Message()
	if !ok {
		return "", fmt.Errorf("%w: %s (%s)", errors.ErrNoDiagnostic, r.Verdict, r.Violation)
	}
	return fmt.Sprintf("Invalid sentence: %s\n\tReason: %s\n", r.Sentence, msg), nil
}
