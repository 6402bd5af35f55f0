package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sentence-lab/analyzer"
	"sentence-lab/contract"
	apperrors "sentence-lab/errors"
	"sentence-lab/internal"
	"sentence-lab/runtime"
	"sentence-lab/sink"
	"sentence-lab/source"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the tool together and returns instead of exiting so deferred cleanup always runs.
// A missing input file is not fatal: the fixed message is printed and nothing is validated.
func run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Sentences
	sentences, err := source.NewLineSource(config.InputFilepath, stdin, log).Sentences()
	if errors.Is(err, apperrors.ErrFileNotFound) {
		fmt.Fprintf(stdout, "File %s not found\n", config.InputFilepath)
		return nil
	}
	if err != nil {
		return err
	}

	// 3. Validation
	pipeline := runtime.NewPipeline(log, analyzer.NewAnalyzer(log),
		config.NumberOfWorkers, config.BufferSize, config.RestartInterval)
	reports, err := pipeline.Validate(ctx, sentences)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// 4. Output, in input order
	sinks := []contract.ReportSink{sink.NewConsoleSink(stdout, config.Colours, log)}
	if config.Summary {
		sinks = append(sinks, sink.NewSummarySink(stdout))
	}
	for _, report := range reports {
		for _, s := range sinks {
			if err := s.Consume(ctx, report); err != nil {
				return err
			}
		}
	}
	for _, s := range sinks {
		if err := s.Flush(); err != nil {
			return err
		}
	}
	return nil
}
