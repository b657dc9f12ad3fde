package dashboard

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/libdash/internal/entity"
)

// Source binds one entity kind's descriptor to its fetch and delete
// operations. Fetch returns display-ready rows; the same Source serves
// every screen of that kind.
type Source struct {
	Descriptor entity.Descriptor
	Fetch      func() ([]Row, error)
	Delete     func(id int64) error
}

// Controller drives the list/mutate/re-fetch cycle shared by every entity
// screen. Within one user action the sequence mutate → refetch → re-render
// is strictly sequential.
type Controller struct {
	out     io.Writer
	confirm func(prompt string) bool
	sources map[entity.Kind]*Source
}

// NewController creates a Controller writing tables to out and asking
// confirm before destructive operations.
func NewController(out io.Writer, confirm func(prompt string) bool) *Controller {
	return &Controller{
		out:     out,
		confirm: confirm,
		sources: make(map[entity.Kind]*Source),
	}
}

// Register adds a Source. One per entity kind.
func (c *Controller) Register(src *Source) {
	c.sources[src.Descriptor.Kind] = src
}

// Source returns the registered source for a kind, or nil.
func (c *Controller) Source(kind entity.Kind) *Source {
	return c.sources[kind]
}

// Render fetches and renders one entity list. A fetch failure aborts
// silently — the API client has already surfaced the error once — and the
// previously rendered output is simply not replaced.
func (c *Controller) Render(kind entity.Kind) error {
	src, ok := c.sources[kind]
	if !ok {
		return fmt.Errorf("no source registered for %s", kind)
	}
	rows, err := src.Fetch()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\n%s\n", kind)
	RenderTable(c.out, src.Descriptor.Columns, rows)
	return nil
}

// RenderAll renders every registered list in a stable order.
func (c *Controller) RenderAll() {
	for _, kind := range []entity.Kind{entity.Books, entity.Publishers, entity.Authors, entity.Reviews} {
		if _, ok := c.sources[kind]; ok {
			_ = c.Render(kind)
		}
	}
}

// Delete confirms, deletes, then re-fetches the affected lists: the
// entity's own and any dependent ones (deleting a publisher can cascade
// into books). Declining the confirmation is not an error.
func (c *Controller) Delete(kind entity.Kind, id int64) error {
	src, ok := c.sources[kind]
	if !ok {
		return fmt.Errorf("no source registered for %s", kind)
	}
	if !c.confirm(fmt.Sprintf("Delete %s id=%d?", kind, id)) {
		return nil
	}
	if err := src.Delete(id); err != nil {
		// Already reported by the client; the list stays unrefreshed.
		return err
	}
	if err := c.Render(kind); err != nil {
		return err
	}
	for _, dep := range src.Descriptor.Dependents {
		if _, ok := c.sources[dep]; ok {
			_ = c.Render(dep)
		}
	}
	return nil
}
