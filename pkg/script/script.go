// Package script replays notebook operations described in a TOML document.
//
// A script is a list of [[step]] tables:
//
//	[[step]]
//	op = "write"
//	page = 0
//	row = 0
//	column = 0
//	direction = "horizontal"
//	word = "hey_there"
//
//	[[step]]
//	op = "read"
//	column = 1
//	direction = "h"
//	length = 3
//	expect = "eyN"
//
// Supported ops are write, read, erase and show. A step with fail = true
// must be rejected by the notebook.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"git.canoozie.net/riddling/notebook/pkg/model"
	"github.com/pelletier/go-toml/v2"
)

// Op names understood by Run
const (
	OpWrite = "write"
	OpRead  = "read"
	OpErase = "erase"
	OpShow  = "show"
)

// Step is one notebook operation
type Step struct {
	Op        string  `toml:"op"`
	Page      uint64  `toml:"page"`
	Row       int     `toml:"row"`
	Column    int     `toml:"column"`
	Direction string  `toml:"direction"`
	Word      string  `toml:"word"`
	Length    int     `toml:"length"`
	Expect    *string `toml:"expect"`
	Fail      bool    `toml:"fail"`
}

// Script is an ordered list of steps
type Script struct {
	Steps []Step `toml:"step"`
}

// ParseError represents an error while parsing a script
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and parses the script at path
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return parse(path, data)
}

// Parse parses a script from r
func Parse(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, &ParseError{Path: source, Message: fmt.Sprintf("step %d: %v", i+1, err), Err: err}
		}
	}
	return &s, nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpWrite, OpRead, OpErase:
		_, err := s.direction()
		return err
	case OpShow:
		return nil
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
}

// direction defaults to horizontal when the step leaves it out
func (s Step) direction() (model.Direction, error) {
	if strings.TrimSpace(s.Direction) == "" {
		return model.Horizontal, nil
	}
	return model.ParseDirection(s.Direction)
}
