package e2e

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sentence-lab/analyzer"
	"sentence-lab/domain"
	"sentence-lab/runtime"
	"sentence-lab/sink"
	"sentence-lab/source"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

// BaseSentenceSuite runs the whole chain: file on disk, line source, pipeline, console sink.
type BaseSentenceSuite struct {
	suite.Suite
	Config Config
	log    *slog.Logger
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSentenceSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WriteInput stores the lines as an input file and returns its path.
func (s *BaseSentenceSuite) WriteInput(lines ...string) string {
	path := filepath.Join(s.T().TempDir(), "input.txt")
	content := strings.Join(lines, "\n") + "\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

// Check validates the file at path and returns the reports and the console output.
func (s *BaseSentenceSuite) Check(name, path string) ([]domain.Report, string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	sentences, err := source.NewLineSource(path, nil, s.log).Sentences()
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := runtime.NewPipeline(s.log, analyzer.NewAnalyzer(s.log), s.Config.Workers, 0, 10*time.Millisecond)
	reports, err := pipeline.Validate(ctx, sentences)
	s.Require().NoError(err)

	var out bytes.Buffer
	console := sink.NewConsoleSink(&out, false, s.log)
	for _, r := range reports {
		s.Require().NoError(console.Consume(ctx, r))
	}
	s.Require().NoError(console.Flush())

	if s.Config.DebugOutput {
		s.T().Log("\n" + out.String())
	}
	return reports, out.String()
}
