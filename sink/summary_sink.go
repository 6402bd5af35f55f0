package sink

import (
	"context"
	"io"
	"sentence-lab/contract"
	"sentence-lab/domain"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

var _ contract.ReportSink = (*SummarySink)(nil)

// summaryRows fixes the display order of the table.
var summaryRows = []domain.Violation{
	domain.NoViolation,
	domain.EmptySentence,
	domain.Capitalization,
	domain.MissingTerminalPeriod,
	domain.UnspelledNumeral,
	domain.UnbalancedQuotation,
	domain.MultiplePeriods,
}

// SummarySink counts reports per violation and renders them as a table on Flush.
type SummarySink struct {
	mu      sync.Mutex
	out     io.Writer
	reports []domain.Report
}

func NewSummarySink(out io.Writer) *SummarySink {
	return &SummarySink{out: out}
}

func (s *SummarySink) Consume(_ context.Context, report domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
	return nil
}

// Counts returns how many reports fell into each violation, valid sentences being NoViolation.
func (s *SummarySink) Counts() map[domain.Violation]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.CountValuesBy(s.reports, func(r domain.Report) domain.Violation {
		return r.Result.Violation
	})
}

func (s *SummarySink) Flush() error {
	counts := s.Counts()
	total := lo.Sum(lo.Values(counts))

	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Rule", "Sentences"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetFooter([]string{"Total", strconv.Itoa(total)})

	for _, v := range summaryRows {
		count, ok := counts[v]
		if !ok {
			continue
		}
		table.Append([]string{label(v), strconv.Itoa(count)})
	}
	table.Render()
	return nil
}

func label(v domain.Violation) string {
	if v == domain.NoViolation {
		return "Valid"
	}
	return v.String()
}
