package renderer

import (
	"termcraft/internal/profiling"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	cols, rows  int
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	r := &Renderer{renderables: rs}

	// Initialize all renderables
	for _, rr := range rs {
		if err := rr.Init(); err != nil {
			r.Dispose()
			return nil, err
		}
	}

	return r, nil
}

// Render draws every feature onto ctx.Surface in registration order, so
// later features paint over earlier ones.
func (r *Renderer) Render(ctx RenderContext) {
	defer profiling.Track("renderer.Render")()

	if cols, rows := ctx.Surface.Size(); cols != r.cols || rows != r.rows {
		r.UpdateViewport(cols, rows)
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport forwards a surface resize to every renderable
func (r *Renderer) UpdateViewport(cols, rows int) {
	r.cols, r.rows = cols, rows
	for _, renderable := range r.renderables {
		renderable.SetViewport(cols, rows)
	}
}
