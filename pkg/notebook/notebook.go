package notebook

import (
	"slices"
	"sync"

	"git.canoozie.net/riddling/notebook/pkg/model"
	"github.com/google/uuid"
)

// Config holds configuration options for a notebook
type Config struct {
	Logger model.Logger // Logger for page creation, growth and rejected writes
}

// DefaultConfig returns a default configuration for a notebook
func DefaultConfig() Config {
	return Config{
		Logger: model.DefaultLoggerInstance,
	}
}

// Notebook is an ordered collection of fixed-width character grid pages.
//
// Pages are created lazily by Write and Read; Erase and Dump require the
// page to exist already. Every operation grows the addressed page when it
// reaches past the current height.
type Notebook struct {
	id     string
	pages  map[uint64]*model.Page
	mu     sync.RWMutex
	logger model.Logger
}

// New creates an empty notebook
func New(config Config) *Notebook {
	if config.Logger == nil {
		config.Logger = DefaultConfig().Logger
	}

	id := uuid.NewString()
	logger := config.Logger
	if dl, ok := logger.(*model.DefaultLogger); ok {
		logger = dl.WithPrefix("notebook " + id)
	}

	return &Notebook{
		id:     id,
		pages:  make(map[uint64]*model.Page),
		logger: logger,
	}
}

// ID returns the unique identifier of the notebook
func (n *Notebook) ID() string {
	return n.id
}

// acquire resolves the page at index for an operation on span s and grows
// it to fit. Absent pages are created only when create is set. validate,
// if given, runs before anything is changed; a page created for a failed
// operation is discarded.
func (n *Notebook) acquire(index uint64, s span, create bool, validate func(*model.Page) error) (*model.Page, error) {
	p, exists := n.pages[index]
	if !exists {
		if !create {
			return nil, model.ErrPageNotFound{Page: index}
		}
		p = model.NewPage(index)
	}

	if validate != nil {
		if err := validate(p); err != nil {
			return nil, err
		}
	}

	if !exists {
		n.pages[index] = p
		n.logger.Debug("Created page %d", index)
	}

	before := p.Lines()
	if added := p.Grow(s.height()); added > 0 {
		n.logger.Debug("Grew page %d from %d to %d lines", index, before, p.Lines())
	}
	return p, nil
}

// Pages returns the indices of all created pages in ascending order
func (n *Notebook) Pages() []uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	indices := make([]uint64, 0, len(n.pages))
	for index := range n.pages {
		indices = append(indices, index)
	}
	slices.Sort(indices)
	return indices
}

// HasPage returns true if the page at index has been created
func (n *Notebook) HasPage(index uint64) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.pages[index]
	return ok
}

// Lines returns the current height of a page
func (n *Notebook) Lines(index uint64) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	p, ok := n.pages[index]
	if !ok {
		return 0, model.ErrPageNotFound{Page: index}
	}
	return p.Lines(), nil
}

// Checksum returns a digest of the page contents. Two calls return the same
// value only if the page was not changed in between.
func (n *Notebook) Checksum(index uint64) (uint64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	p, ok := n.pages[index]
	if !ok {
		return 0, model.ErrPageNotFound{Page: index}
	}
	return p.Checksum(), nil
}
