package sink_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sentence-lab/domain"
	"sentence-lab/errors"
	"sentence-lab/sink"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleSink_Consume(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("Invalid sentence prints its diagnostic and a blank line", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		s := sink.NewConsoleSink(&out, false, logger)

		err := s.Consume(ctx, domain.Report{Line: 1, Result: domain.NewInvalidResult("The cat has 4 legs.", domain.UnspelledNumeral)})
		req.NoError(err)
		req.Equal("Invalid sentence: The cat has 4 legs.\n\tReason: Numbers below 13 must be spelled out.\n\n", out.String())
	})

	t.Run("Valid sentence prints nothing", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		s := sink.NewConsoleSink(&out, false, logger)

		req.NoError(s.Consume(ctx, domain.Report{Line: 1, Result: domain.NewValidResult("The cat sat on the mat.")}))
		req.Empty(out.String())
	})

	t.Run("Empty sentence prints nothing", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		s := sink.NewConsoleSink(&out, false, logger)

		req.NoError(s.Consume(ctx, domain.Report{Line: 1, Result: domain.NewInvalidResult("", domain.EmptySentence)}))
		req.Empty(out.String())
	})

	t.Run("Unevaluated result is rejected", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		s := sink.NewConsoleSink(&out, false, logger)

		err := s.Consume(ctx, domain.Report{Line: 3})
		req.ErrorIs(err, errors.ErrNotAnalyzed)
		req.Empty(out.String())
	})

	t.Run("Colours keep the text intact", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		s := sink.NewConsoleSink(&out, true, logger)

		req.NoError(s.Consume(ctx, domain.Report{Line: 1, Result: domain.NewInvalidResult("the cat.", domain.Capitalization)}))
		req.Contains(out.String(), "Invalid sentence: the cat.")
		req.True(strings.HasSuffix(out.String(), "\tReason: Sentence must start with a capital letter.\n\n"))
		req.NoError(s.Flush())
	})
}
