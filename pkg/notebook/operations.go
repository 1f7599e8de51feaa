package notebook

import (
	"git.canoozie.net/riddling/notebook/pkg/model"
)

// Write stores word on page starting at (row, column) along dir.
//
// Every target cell must be blank. If any is occupied or erased the write
// fails with model.ErrOverwrite and the notebook is left exactly as it was;
// a page that did not exist before is not created.
func (n *Notebook) Write(page uint64, row, column int, dir model.Direction, word string) error {
	s, err := newSpan(row, column, dir, len(word))
	if err != nil {
		return err
	}
	if err := model.ValidateWord(word); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	p, err := n.acquire(page, s, true, func(p *model.Page) error {
		for i := 0; i < s.length; i++ {
			offset := s.offset(i)
			if c := p.CellAt(offset); c != model.Blank {
				line, col := position(offset)
				n.logger.Warn("Rejected write of %q on page %d: cell at line %d column %d holds %q", word, page, line, col, c)
				return model.ErrOverwrite{Page: page, Row: line, Column: col, Found: c}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i := 0; i < s.length; i++ {
		p.Data[s.offset(i)] = word[i]
	}
	return nil
}

// Erase marks length cells on an existing page as erased, whatever they held
// before. Erasing is idempotent.
func (n *Notebook) Erase(page uint64, row, column int, dir model.Direction, length int) error {
	s, err := newSpan(row, column, dir, length)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	p, err := n.acquire(page, s, false, nil)
	if err != nil {
		return err
	}

	for i := 0; i < s.length; i++ {
		p.Data[s.offset(i)] = model.Erased
	}
	return nil
}

// Read returns length cells from page starting at (row, column) along dir,
// sentinels included.
//
// Reading creates the page if needed and grows it to cover the span, so a
// read past the current height returns blanks and leaves the page taller.
// An absent page is treated as blank rather than reported with
// model.ErrPageNotFound, so reads never fail on page existence.
func (n *Notebook) Read(page uint64, row, column int, dir model.Direction, length int) (string, error) {
	s, err := newSpan(row, column, dir, length)
	if err != nil {
		return "", err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	p, err := n.acquire(page, s, true, nil)
	if err != nil {
		return "", err
	}

	out := make([]byte, s.length)
	for i := range out {
		out[i] = p.Data[s.offset(i)]
	}
	return string(out), nil
}
