package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// JSONWriterStrategy emits raw zerolog JSON lines
type JSONWriterStrategy struct{}

// CreateWriter returns the writer unchanged; zerolog output is already JSON
func (s *JSONWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return out
}

// ConsoleWriterStrategy emits human-readable console output
type ConsoleWriterStrategy struct {
	NoColor bool
}

// CreateWriter wraps the output in a zerolog console writer
func (s *ConsoleWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    s.NoColor,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// TextWriterStrategy emits plain text output without color
type TextWriterStrategy struct{}

// CreateWriter wraps the output in a colorless console writer
func (s *TextWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05",
	}
}
