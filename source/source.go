/*
Package source holds input texts for parsing and maps byte offsets of tokens
to line and column positions, for diagnostics.

Lines and columns start at 1. Columns count runes, not bytes. An offset
pointing to the first byte of a line is at column 1 of that line; a newline
character belongs to the line it terminates.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package source

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
)

// tracer traces with key 'topdown.source'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.source")
}

// Source is an input text with a name.
type Source struct {
	Name  string
	text  string
	lines *treemap.Map // offset of line start -> line number
	count int          // number of lines
}

// FromString creates a source from a string.
func FromString(name, text string) *Source {
	src := &Source{Name: name, text: text, lines: treemap.NewWithIntComparator()}
	src.lines.Put(0, 1)
	src.count = 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' && i+1 < len(text) {
			src.count++
			src.lines.Put(i+1, src.count)
		}
	}
	tracer().Debugf("source %s has %d lines", name, src.count)
	return src
}

// Load reads a source from a file.
func Load(path string) (*Source, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load source: %w", err)
	}
	return FromString(path, string(text)), nil
}

// Text returns the complete text.
func (src *Source) Text() string {
	return src.text
}

// Reader returns a reader for the text.
func (src *Source) Reader() io.Reader {
	return strings.NewReader(src.text)
}

// Len returns the length of the text in bytes.
func (src *Source) Len() int {
	return len(src.text)
}

// LineCount returns the number of lines. The empty text has one line.
func (src *Source) LineCount() int {
	return src.count
}

// Locate returns the line and column of a byte offset. Offsets out of range
// are clamped to the start or end of the text.
func (src *Source) Locate(offset int) topdown.Location {
	if offset < 0 {
		offset = 0
	} else if offset > len(src.text) {
		offset = len(src.text)
	}
	start, line := src.lines.Floor(offset)
	from := start.(int)
	col := utf8.RuneCountInString(src.text[from:offset]) + 1
	return topdown.Location{Line: line.(int), Column: col}
}

// Line returns the text of line n without its newline, or the empty string
// if there is no such line.
func (src *Source) Line(n int) string {
	if n < 1 || n > src.count {
		return ""
	}
	start := src.lines.Keys()[n-1].(int) // keys are ordered, lines are consecutive
	line := src.text[start:]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSuffix(line, "\r")
}

// Position sets the location of a token from its span.
func (src *Source) Position(tok topdown.Token) topdown.Token {
	tok.Loc = src.Locate(int(tok.Span.From()))
	return tok
}
