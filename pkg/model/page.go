package model

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

const (
	// RowWidth is the number of writable cells in every line of a page
	RowWidth = 100

	// LineSize is the stored size of one line: the cells plus the terminator
	LineSize = RowWidth + 1

	// Blank marks a cell that has never been written
	Blank byte = '_'

	// Erased marks a cell that was erased; it can never be written again
	Erased byte = '~'

	// LineTerminator ends every stored line
	LineTerminator byte = '\n'
)

// Page is a single notebook page stored as a flat buffer of fixed-width lines
type Page struct {
	Index uint64 // Position of the page in the notebook
	Data  []byte // Lines of RowWidth cells, each followed by LineTerminator
}

// NewPage creates an empty page (zero lines) with the given index
func NewPage(index uint64) *Page {
	return &Page{Index: index}
}

// Offset maps a row and column to a position in a page buffer.
//
// Rows are 1-based and columns 0-based, except that row 0 is accepted as an
// alias of row 1: both address the first physical line.
func Offset(row, column int) int {
	if row <= 1 {
		return column
	}
	return LineSize*(row-1) + column
}

// Lines returns the current height of the page
func (p *Page) Lines() int {
	return len(p.Data) / LineSize
}

// Grow appends blank lines until the page is at least lines tall and
// returns the number of lines added
func (p *Page) Grow(lines int) int {
	added := lines - p.Lines()
	if added <= 0 {
		return 0
	}

	line := append(bytes.Repeat([]byte{Blank}, RowWidth), LineTerminator)
	for i := 0; i < added; i++ {
		p.Data = append(p.Data, line...)
	}
	return added
}

// CellAt returns the cell stored at offset. Offsets past the current height
// are reported as Blank, since growth would fill them with it.
func (p *Page) CellAt(offset int) byte {
	if offset >= len(p.Data) {
		return Blank
	}
	return p.Data[offset]
}

// Line returns the cells of a physical line (0-based), without the terminator
func (p *Page) Line(i int) []byte {
	start := i * LineSize
	return p.Data[start : start+RowWidth]
}

// Clone returns a deep copy of the page
func (p *Page) Clone() *Page {
	return &Page{
		Index: p.Index,
		Data:  bytes.Clone(p.Data),
	}
}

// Checksum returns an xxhash64 digest of the page contents
func (p *Page) Checksum() uint64 {
	return xxhash.Sum64(p.Data)
}
