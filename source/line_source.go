// Package source reads the sentences to validate, one per line.
package source

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sentence-lab/contract"
	"sentence-lab/errors"
	"strings"
	"unicode/utf8"
)

// Stdin is the path value that makes a LineSource read standard input.
const Stdin = "-"

var _ contract.SentenceSource = (*LineSource)(nil)

type LineSource struct {
	path  string
	stdin io.Reader
	log   *slog.Logger
}

func NewLineSource(path string, stdin io.Reader, log *slog.Logger) *LineSource {
	return &LineSource{path: path, stdin: stdin, log: log}
}

// Sentences returns every line of the input verbatim.
// A path that cannot be opened or that names a directory is reported as ErrFileNotFound.
func (s *LineSource) Sentences() ([]string, error) {
	if s.path == Stdin {
		return ReadLines(s.stdin)
	}

	f, err := os.Open(s.path)
	if err != nil {
		s.log.Debug("Cannot open input", "path", s.path, "error", err)
		return nil, fmt.Errorf("%w: %s", errors.ErrFileNotFound, s.path)
	}
	defer func() { _ = f.Close() }()

	if info, err := f.Stat(); err != nil || info.IsDir() {
		s.log.Debug("Input is not a readable file", "path", s.path, "error", err)
		return nil, fmt.Errorf("%w: %s", errors.ErrFileNotFound, s.path)
	}

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	s.log.Debug("Input loaded", "path", s.path, "sentences", len(lines))
	return lines, nil
}

// ReadLines splits r into lines without trimming them. Lines have no length limit.
// A line ends at \n, \r\n, a lone \r, U+2028, U+2029 or U+0085.
// Blank lines inside the input are kept as empty sentences,
// whitespace-only lines at the very end are not sentences.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var (
		lines   []string
		line    strings.Builder
		pending bool
	)
	for {
		c, size, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch {
		case c == utf8.RuneError && size == 1:
			// Invalid UTF-8 is kept byte for byte
			_ = br.UnreadRune()
			b, _ := br.ReadByte()
			line.WriteByte(b)
			pending = true
		case isLineBreak(c):
			if c == '\r' {
				if err := skipNewline(br); err != nil {
					return nil, err
				}
			}
			lines = append(lines, line.String())
			line.Reset()
			pending = false
		default:
			line.WriteRune(c)
			pending = true
		}
	}
	if pending {
		lines = append(lines, line.String())
	}

	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end], nil
}

func isLineBreak(c rune) bool {
	switch c {
	case '\n', '\r', '\u2028', '\u2029', '\u0085':
		return true
	}
	return false
}

// skipNewline consumes the \n of a \r\n pair.
func skipNewline(br *bufio.Reader) error {
	next, err := br.Peek(1)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if next[0] == '\n' {
		_, _ = br.ReadByte()
	}
	return nil
}
