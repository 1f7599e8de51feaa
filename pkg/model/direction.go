package model

import (
	"fmt"
	"strings"
)

// Direction is the axis along which a span of cells is addressed
type Direction uint8

const (
	// Horizontal spans run left to right along a single line
	Horizontal Direction = iota
	// Vertical spans run top to bottom down a single column
	Vertical
)

// String returns the lower-case name of the direction
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Stride returns the buffer distance between consecutive cells of a span
func (d Direction) Stride() int {
	if d == Vertical {
		return LineSize
	}
	return 1
}

// ParseDirection parses "horizontal"/"h" or "vertical"/"v", ignoring case
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown direction: %q", s)
	}
}
