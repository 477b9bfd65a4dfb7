// Package textin resolves the input text for lnk commands: a
// positional argument, a file, or stdin, with optional HTML conversion.
package textin

import (
	"fmt"
	"io"
	"os"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Source describes where a command's input text comes from.
type Source struct {
	Arg   string    // positional argument; wins when non-empty
	File  string    // --file path; used when Arg is empty
	HTML  bool      // input is HTML; convert to markdown text first
	Stdin io.Reader // fallback reader; defaults to os.Stdin
}

// Read resolves the input text. File and stdin input lose their
// trailing newline so it does not surface as a stray text segment.
func (s Source) Read() (string, error) {
	var text string
	switch {
	case s.Arg != "":
		text = s.Arg
	case s.File != "":
		data, err := os.ReadFile(s.File)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	default:
		in := s.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}

	if s.HTML {
		converted, err := htmltomarkdown.ConvertString(text)
		if err != nil {
			return "", fmt.Errorf("failed to convert HTML input: %w", err)
		}
		text = strings.TrimSpace(converted)
	}
	return text, nil
}
