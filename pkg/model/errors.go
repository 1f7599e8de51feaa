package model

import (
	"fmt"
)

// ErrOutOfRange is returned when an addressed span does not fit in a line,
// when a coordinate or length is negative, or when a row is too far down
// for the page to be addressed
type ErrOutOfRange struct {
	Row    int
	Column int
	Length int
	Width  int
}

func (e ErrOutOfRange) Error() string {
	switch {
	case e.Row < 0 || e.Column < 0 || e.Length < 0:
		return fmt.Sprintf("negative coordinate: row %d, column %d, length %d", e.Row, e.Column, e.Length)
	case e.Column >= e.Width || e.Column+e.Length > e.Width:
		return fmt.Sprintf("span of length %d at column %d exceeds row width %d", e.Length, e.Column, e.Width)
	default:
		return fmt.Sprintf("span of length %d at row %d exceeds the addressable page height", e.Length, e.Row)
	}
}

// ErrOverwrite is returned when a write targets a cell that is not blank
type ErrOverwrite struct {
	Page   uint64
	Row    int
	Column int
	Found  byte
}

func (e ErrOverwrite) Error() string {
	return fmt.Sprintf("cell at page %d row %d column %d is not blank (found %q)", e.Page, e.Row, e.Column, e.Found)
}

// ErrPageNotFound is returned when an operation that cannot create pages
// addresses a page that does not exist
type ErrPageNotFound struct {
	Page uint64
}

func (e ErrPageNotFound) Error() string {
	return fmt.Sprintf("page not found: %d", e.Page)
}

// ErrInvalidWord is returned when a word is empty or holds a symbol that
// cannot be stored in a cell
type ErrInvalidWord struct {
	Word  string
	Index int
}

func (e ErrInvalidWord) Error() string {
	if e.Word == "" {
		return "invalid word: empty"
	}
	return fmt.Sprintf("invalid word %q: symbol %q at index %d", e.Word, e.Word[e.Index], e.Index)
}

// ValidateWord checks that every symbol of word can be stored in a cell:
// printable ASCII other than the Erased sentinel. Blank is accepted and
// leaves the cell writable.
func ValidateWord(word string) error {
	if word == "" {
		return ErrInvalidWord{}
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < ' ' || c > '~' || c == Erased {
			return ErrInvalidWord{Word: word, Index: i}
		}
	}
	return nil
}
