package notebook

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"git.canoozie.net/riddling/notebook/pkg/model"
)

// Dump renders a page one physical line at a time. Each line is prefixed by
// its 1-based number, right-aligned to the width of the largest one:
//
//	 9: ___a______...
//	10: ___b______...
//
// The rendering works on a copy taken when Dump is called.
func (n *Notebook) Dump(page uint64) (iter.Seq[string], error) {
	n.mu.RLock()
	p, ok := n.pages[page]
	if !ok {
		n.mu.RUnlock()
		return nil, model.ErrPageNotFound{Page: page}
	}
	snapshot := p.Clone()
	n.mu.RUnlock()

	return func(yield func(string) bool) {
		lines := snapshot.Lines()
		width := len(strconv.Itoa(lines))
		for i := 0; i < lines; i++ {
			if !yield(fmt.Sprintf("%*d: %s", width, i+1, snapshot.Line(i))) {
				return
			}
		}
	}, nil
}

// Show writes the rendering of a page to w
func (n *Notebook) Show(w io.Writer, page uint64) error {
	lines, err := n.Dump(page)
	if err != nil {
		return err
	}
	for line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
