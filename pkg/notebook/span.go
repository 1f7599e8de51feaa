package notebook

import (
	"fmt"
	"math"

	"git.canoozie.net/riddling/notebook/pkg/model"
)

// span is a validated run of cells starting at (row, column)
type span struct {
	row    int
	column int
	dir    model.Direction
	length int
}

func newSpan(row, column int, dir model.Direction, length int) (span, error) {
	if dir != model.Horizontal && dir != model.Vertical {
		return span{}, fmt.Errorf("invalid direction: %s", dir)
	}
	outOfRange := model.ErrOutOfRange{Row: row, Column: column, Length: length, Width: model.RowWidth}
	if row < 0 || column < 0 || length < 0 || column >= model.RowWidth {
		return span{}, outOfRange
	}
	// Lines never widen, so a horizontal span must end by the last column.
	if dir == model.Horizontal && column+length > model.RowWidth {
		return span{}, outOfRange
	}
	// The grown page must stay addressable: (row+length)*LineSize fits in an int.
	if row > math.MaxInt/model.LineSize-length {
		return span{}, outOfRange
	}
	return span{row: row, column: column, dir: dir, length: length}, nil
}

// offset returns the buffer position of the i-th cell of the span
func (s span) offset(i int) int {
	return model.Offset(s.row, s.column) + i*s.dir.Stride()
}

// height returns the number of lines a page needs before the span can be
// accessed. Vertical spans reserve row+length lines, one more than strictly
// needed when row > 0.
func (s span) height() int {
	if s.length == 0 {
		return 0
	}
	if s.dir == model.Vertical {
		return s.row + s.length
	}
	return max(s.row, 1)
}

// position converts a buffer offset back to a 1-based line and a column
func position(offset int) (line, column int) {
	return offset/model.LineSize + 1, offset % model.LineSize
}
