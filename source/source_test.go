package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/topdown"
	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	src := FromString("test", "ab\ncde\n\nf")
	var tests = []struct {
		offset     int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // newline belongs to line 1
		{3, 2, 1}, // exact line start
		{5, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
		{9, 4, 2}, // end of text
		{100, 4, 2},
		{-5, 1, 1},
	}
	for _, tt := range tests {
		loc := src.Locate(tt.offset)
		assert.Equal(t, topdown.Location{Line: tt.line, Column: tt.col}, loc, "offset %d", tt.offset)
	}
	assert.Equal(t, 4, src.LineCount())
}

func TestLocateRunes(t *testing.T) {
	src := FromString("test", "äö\nü")
	assert.Equal(t, "1:3", src.Locate(4).String()) // after two 2-byte runes
	assert.Equal(t, "2:1", src.Locate(5).String())
}

func TestLines(t *testing.T) {
	src := FromString("test", "first\r\nsecond\nthird\n")
	assert.Equal(t, 3, src.LineCount())
	assert.Equal(t, "first", src.Line(1))
	assert.Equal(t, "second", src.Line(2))
	assert.Equal(t, "third", src.Line(3))
	assert.Equal(t, "", src.Line(4))
	empty := FromString("empty", "")
	assert.Equal(t, 1, empty.LineCount())
	assert.Equal(t, "1:1", empty.Locate(0).String())
}

func TestLoadAndPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("x\n  y"), 0644); err != nil {
		t.Fatal(err)
	}
	src, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	tok := src.Position(topdown.Token{Name: "ident", Value: "y", Span: topdown.Span{4, 5}})
	assert.Equal(t, "2:3", tok.Loc.String())
	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
