// Package analyzer checks a single sentence against a fixed, ordered rule set.
// The first failing rule decides the verdict and no further rule runs.
package analyzer

import (
	"log/slog"
	"sentence-lab/domain"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// MinNumberNotSpelled is the first number that may be written with digits.
const MinNumberNotSpelled = 13

type Analyzer struct {
	numerals map[string]struct{}
	rules    []rule
	log      *slog.Logger
}

// sentence is the view every rule inspects: the raw text and its space-delimited words.
type sentence struct {
	raw   string
	words []string
}

// NewAnalyzer builds the numeral set once; it is only read afterward,
// so a single Analyzer can be shared between goroutines.
func NewAnalyzer(log *slog.Logger) *Analyzer {
	numerals := lo.SliceToMap(lo.Range(MinNumberNotSpelled), func(n int) (string, struct{}) {
		return strconv.Itoa(n), struct{}{}
	})
	a := &Analyzer{numerals: numerals, log: log}
	a.rules = []rule{
		{violation: domain.Capitalization, holds: startsWithCapital},
		{violation: domain.MissingTerminalPeriod, holds: endsWithPeriod},
		{violation: domain.UnspelledNumeral, holds: a.numbersSpelledOut},
		{violation: domain.UnbalancedQuotation, holds: quotationsBalanced},
		{violation: domain.MultiplePeriods, holds: singlePeriod},
	}
	return a
}

// Analyze runs the rules in order and stops at the first failure.
func (a *Analyzer) Analyze(raw string) domain.Result {
	if len(raw) == 0 {
		a.log.Debug("Empty sentence")
		return domain.NewInvalidResult(raw, domain.EmptySentence)
	}

	s := sentence{raw: raw, words: strings.Split(raw, " ")}
	for _, r := range a.rules {
		if !r.holds(s) {
			a.log.Debug("Sentence rejected", "violation", r.violation.String(), "sentence", raw)
			return domain.NewInvalidResult(raw, r.violation)
		}
	}
	return domain.NewValidResult(raw)
}

// numbersSpelledOut only matches whole words: "12." or "12," are left alone.
func (a *Analyzer) numbersSpelledOut(s sentence) bool {
	_, found := lo.Find(s.words, func(word string) bool {
		_, ok := a.numerals[word]
		return ok
	})
	return !found
}
