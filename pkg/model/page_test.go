package model

import (
	"bytes"
	"testing"
)

func TestNewPage(t *testing.T) {
	page := NewPage(7)

	if page.Index != 7 {
		t.Errorf("Expected page index to be 7, got %d", page.Index)
	}
	if page.Lines() != 0 {
		t.Errorf("Expected a new page to have no lines, got %d", page.Lines())
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		row, column int
		want        int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{0, 42, 42},
		{1, 42, 42},
		{2, 0, LineSize},
		{2, 5, LineSize + 5},
		{10, 99, 9*LineSize + 99},
	}

	for _, tt := range tests {
		if got := Offset(tt.row, tt.column); got != tt.want {
			t.Errorf("Offset(%d, %d): expected %d, got %d", tt.row, tt.column, tt.want, got)
		}
	}
}

func TestPageGrow(t *testing.T) {
	page := NewPage(0)

	if added := page.Grow(3); added != 3 {
		t.Errorf("Expected 3 lines to be added, got %d", added)
	}
	if len(page.Data) != 3*LineSize {
		t.Errorf("Expected data length %d, got %d", 3*LineSize, len(page.Data))
	}

	// Growing to a smaller height is a no-op
	if added := page.Grow(1); added != 0 {
		t.Errorf("Expected no lines to be added, got %d", added)
	}
	if page.Lines() != 3 {
		t.Errorf("Expected page to keep 3 lines, got %d", page.Lines())
	}

	for i := 0; i < page.Lines(); i++ {
		line := page.Line(i)
		if !bytes.Equal(line, bytes.Repeat([]byte{Blank}, RowWidth)) {
			t.Errorf("Expected line %d to be blank, got %q", i, line)
		}
		if page.Data[i*LineSize+RowWidth] != LineTerminator {
			t.Errorf("Expected line %d to end with a terminator", i)
		}
	}
}

func TestPageCellAt(t *testing.T) {
	page := NewPage(0)
	page.Grow(1)
	page.Data[4] = 'x'

	if c := page.CellAt(4); c != 'x' {
		t.Errorf("Expected 'x', got %q", c)
	}
	if c := page.CellAt(5 * LineSize); c != Blank {
		t.Errorf("Expected cells past the height to read as blank, got %q", c)
	}
}

func TestPageCloneAndChecksum(t *testing.T) {
	page := NewPage(3)
	page.Grow(2)
	sum := page.Checksum()

	clone := page.Clone()
	if clone.Index != page.Index {
		t.Errorf("Expected clone index %d, got %d", page.Index, clone.Index)
	}
	if clone.Checksum() != sum {
		t.Error("Expected clone to have the same checksum")
	}

	clone.Data[0] = 'a'
	if page.Data[0] != Blank {
		t.Error("Expected clone to not share data with the original")
	}
	if clone.Checksum() == sum {
		t.Error("Expected checksum to change after modification")
	}
	if page.Checksum() != sum {
		t.Error("Expected checksum of untouched page to be stable")
	}
}
