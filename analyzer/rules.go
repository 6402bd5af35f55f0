package analyzer

import (
	"sentence-lab/domain"
	"strings"
	"unicode/utf8"
)

const (
	period    = "."
	quotation = `"`
)

type rule struct {
	violation domain.Violation
	holds     func(s sentence) bool
}

// startsWithCapital only accepts the basic Latin range A-Z.
// A sentence opening with a space has an empty first word and fails.
func startsWithCapital(s sentence) bool {
	first, _ := utf8.DecodeRuneInString(s.words[0])
	if first == utf8.RuneError {
		return false
	}
	return 'A' <= first && first <= 'Z'
}

func endsWithPeriod(s sentence) bool {
	return strings.HasSuffix(s.raw, period)
}

func quotationsBalanced(s sentence) bool {
	return strings.Count(s.raw, quotation)%2 == 0
}

// singlePeriod runs after endsWithPeriod, so at least one period is always present here.
func singlePeriod(s sentence) bool {
	return strings.Count(s.raw, period) <= 1
}
