package sink

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sentence-lab/contract"
	"sentence-lab/domain"
	"sentence-lab/errors"
	"strings"
	"sync"

	"github.com/gookit/color"
)

var _ contract.ReportSink = (*ConsoleSink)(nil)

// ConsoleSink prints the diagnostic of every invalid sentence followed by a blank line.
// Valid and empty sentences print nothing.
type ConsoleSink struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
	header  color.Style
	log     *slog.Logger
}

func NewConsoleSink(out io.Writer, colours bool, log *slog.Logger) *ConsoleSink {
	return &ConsoleSink{
		out:     out,
		colours: colours,
		header:  color.New(color.FgRed, color.OpBold),
		log:     log,
	}
}

func (c *ConsoleSink) Consume(_ context.Context, report domain.Report) error {
	diagnostic, err := report.Result.Diagnostic()
	if goerrors.Is(err, errors.ErrNoDiagnostic) {
		if report.Result.Violation == domain.EmptySentence {
			c.log.Debug("Empty sentence skipped", "line", report.Line)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", report.Line, err)
	}

	if c.colours {
		diagnostic = c.colourHeader(diagnostic)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err = fmt.Fprintln(c.out, diagnostic)
	return err
}

func (c *ConsoleSink) Flush() error {
	return nil
}

// colourHeader only paints the "Invalid sentence" line, the reason stays plain.
func (c *ConsoleSink) colourHeader(diagnostic string) string {
	header, rest, found := strings.Cut(diagnostic, "\n")
	if !found {
		return c.header.Render(diagnostic)
	}
	return c.header.Render(header) + "\n" + rest
}
