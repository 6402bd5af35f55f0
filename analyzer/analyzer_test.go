package analyzer

import (
	"log/slog"
	"sentence-lab/domain"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Analyze(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	a := NewAnalyzer(log)

	tests := []struct {
		name      string
		input     string
		verdict   domain.Verdict
		violation domain.Violation
	}{
		{name: "Valid sentence", input: "The cat sat on the mat.", verdict: domain.Valid, violation: domain.NoViolation},
		{name: "Single capital letter and period", input: "A.", verdict: domain.Valid, violation: domain.NoViolation},
		{name: "Lowercase start", input: "the cat sat on the mat.", verdict: domain.Invalid, violation: domain.Capitalization},
		{name: "Leading space gives an empty first word", input: " The cat sat on the mat.", verdict: domain.Invalid, violation: domain.Capitalization},
		{name: "Accented capital is outside A-Z", input: "Ünder the sea.", verdict: domain.Invalid, violation: domain.Capitalization},
		{name: "Starts with punctuation", input: ".", verdict: domain.Invalid, violation: domain.Capitalization},
		{name: "Capitalization is checked before the period", input: "the cat", verdict: domain.Invalid, violation: domain.Capitalization},
		{name: "Missing period", input: "The cat sat on the mat", verdict: domain.Invalid, violation: domain.MissingTerminalPeriod},
		{name: "Trailing space after period", input: "The cat sat on the mat. ", verdict: domain.Invalid, violation: domain.MissingTerminalPeriod},
		{name: "Unspelled numeral", input: "The cat has 4 legs.", verdict: domain.Invalid, violation: domain.UnspelledNumeral},
		{name: "Zero is a numeral", input: "There are 0 dogs.", verdict: domain.Invalid, violation: domain.UnspelledNumeral},
		{name: "Twelve is a numeral", input: "I ate 12 eggs.", verdict: domain.Invalid, violation: domain.UnspelledNumeral},
		{name: "Thirteen may use digits", input: "I ate 13 eggs.", verdict: domain.Valid, violation: domain.NoViolation},
		{name: "Numeral glued to a period is not matched", input: "The count is 12.", verdict: domain.Valid, violation: domain.NoViolation},
		{name: "Numeral glued to a comma is not matched", input: "Take 12, not more.", verdict: domain.Valid, violation: domain.NoViolation},
		{name: "Leading zero is not matched", input: "Agent 007 reported.", verdict: domain.Valid, violation: domain.NoViolation},
		{name: "Numeral is checked before quotations", input: `The 4 cats said "hi.`, verdict: domain.Invalid, violation: domain.UnspelledNumeral},
		{name: "Odd quotations", input: `She said "hello.`, verdict: domain.Invalid, violation: domain.UnbalancedQuotation},
		{name: "Even quotations", input: `She said "hello" to me.`, verdict: domain.Valid, violation: domain.NoViolation},
		{name: "Multiple periods", input: "He has twelve cats. He likes them.", verdict: domain.Invalid, violation: domain.MultiplePeriods},
		{name: "Quotations are checked before periods", input: `He said "no. Really.`, verdict: domain.Invalid, violation: domain.UnbalancedQuotation},
		{name: "Empty sentence", input: "", verdict: domain.Invalid, violation: domain.EmptySentence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := a.Analyze(tt.input)
			req.Equal(tt.verdict, result.Verdict)
			req.Equal(tt.violation, result.Violation)
			req.Equal(tt.input, result.Sentence)
		})
	}
}

func TestAnalyzer_EmptySentenceHasNoMessage(t *testing.T) {
	req := require.New(t)
	a := NewAnalyzer(logs.GetLoggerFromLevel(slog.LevelDebug))

	result := a.Analyze("")
	req.False(result.IsValid())
	_, ok := result.Message()
	req.False(ok)
}

func TestAnalyzer_MessagePerViolation(t *testing.T) {
	req := require.New(t)
	a := NewAnalyzer(logs.GetLoggerFromLevel(slog.LevelDebug))

	msg, ok := a.Analyze("He has twelve cats. He likes them.").Message()
	req.True(ok)
	req.Equal("Periods may only be used at the end of a sentence.", msg)

	msg, ok = a.Analyze("The cat has 4 legs.").Message()
	req.True(ok)
	req.Equal("Numbers below 13 must be spelled out.", msg)
}

func TestAnalyzer_IsIdempotent(t *testing.T) {
	req := require.New(t)
	a := NewAnalyzer(logs.GetLoggerFromLevel(slog.LevelDebug))

	for _, input := range []string{"The cat sat on the mat.", "the cat", "", `She said "hello.`} {
		req.Equal(a.Analyze(input), a.Analyze(input))
	}
}

func TestAnalyzer_SharedAcrossGoroutines(t *testing.T) {
	req := require.New(t)
	a := NewAnalyzer(logs.GetLoggerFromLevel(slog.LevelError))
	inputs := []string{
		"The cat sat on the mat.",
		"the cat sat on the mat.",
		"The cat has 4 legs.",
		"He has twelve cats. He likes them.",
	}
	expected := make([]domain.Result, len(inputs))
	for i, input := range inputs {
		expected[i] = a.Analyze(input)
	}

	var wg sync.WaitGroup
	results := make([][]domain.Result, 8)
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, input := range inputs {
				results[g] = append(results[g], a.Analyze(input))
			}
		}()
	}
	wg.Wait()

	for _, got := range results {
		req.Equal(expected, got)
	}
}
