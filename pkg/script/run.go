package script

import (
	"fmt"
	"io"

	"git.canoozie.net/riddling/notebook/pkg/model"
)

// Notebook is the set of operations a script can drive
type Notebook interface {
	Write(page uint64, row, column int, dir model.Direction, word string) error
	Read(page uint64, row, column int, dir model.Direction, length int) (string, error)
	Erase(page uint64, row, column int, dir model.Direction, length int) error
	Show(w io.Writer, page uint64) error
}

// Run executes the steps of s in order against nb. Read results and page
// renderings go to w. Run stops at the first step that does not behave as
// the script says.
func Run(nb Notebook, s *Script, w io.Writer) error {
	for i, step := range s.Steps {
		err := runStep(nb, step, w)
		if step.Fail {
			if err == nil {
				return fmt.Errorf("step %d (%s): expected failure", i+1, step.Op)
			}
			fmt.Fprintf(w, "%s page %d rejected: %v\n", step.Op, step.Page, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return nil
}

func runStep(nb Notebook, step Step, w io.Writer) error {
	dir, err := step.direction()
	if err != nil {
		return err
	}

	switch step.Op {
	case OpWrite:
		return nb.Write(step.Page, step.Row, step.Column, dir, step.Word)
	case OpErase:
		return nb.Erase(step.Page, step.Row, step.Column, dir, step.Length)
	case OpShow:
		return nb.Show(w, step.Page)
	case OpRead:
		text, err := nb.Read(step.Page, step.Row, step.Column, dir, step.Length)
		if err != nil {
			return err
		}
		if step.Expect != nil && text != *step.Expect {
			return fmt.Errorf("read %q, expected %q", text, *step.Expect)
		}
		_, err = fmt.Fprintf(w, "read page %d row %d column %d %s: %s\n", step.Page, step.Row, step.Column, dir, text)
		return err
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}
