package table

import (
	"io"
	"sync"

	"github.com/mrlokans/bookshelf/internal/catalog"
)

// Surface draws a complete table body. Every call replaces whatever was
// drawn before; there is no incremental update.
type Surface interface {
	Draw(w io.Writer, rows []Row) error
}

// Renderer reads the catalog and redraws it after every mutation.
//
// Mutations and the redraw that follows them run under one lock, so every
// event is applied and drawn before the next one starts.
type Renderer struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	surface Surface
}

func NewRenderer(c *catalog.Catalog, surface Surface) *Renderer {
	return &Renderer{
		catalog: c,
		surface: surface,
	}
}

func (r *Renderer) Catalog() *catalog.Catalog {
	return r.catalog
}

// Redraw rebuilds the whole table from the current catalog contents.
func (r *Renderer) Redraw(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draw(w)
}

// Apply runs mutate against the catalog and redraws on success. A failed
// mutation draws nothing.
func (r *Renderer) Apply(w io.Writer, mutate func(c *catalog.Catalog) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := mutate(r.catalog); err != nil {
		return err
	}
	return r.draw(w)
}

// Click handles a row control: the tagged position is acted on, then the
// table is redrawn.
func (r *Renderer) Click(w io.Writer, action Action, position int) error {
	return r.Apply(w, func(c *catalog.Catalog) error {
		switch action {
		case ActionToggleRead:
			_, err := c.ToggleRead(position)
			return err
		case ActionDelete:
			_, err := c.Remove(position)
			return err
		}
		_, err := ParseAction(string(action))
		return err
	})
}

func (r *Renderer) draw(w io.Writer) error {
	return r.surface.Draw(w, Rows(r.catalog.Books()))
}
