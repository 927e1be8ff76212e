// Package export turns a scored profile into a downloadable document.
package export

import (
	"context"
	"time"

	"github.com/okian/careerpath/internal/domain/catalog"
	"github.com/okian/careerpath/internal/domain/types"
)

// Report is the content placed in an exported document.
type Report struct {
	Title       string
	Profile     types.Profile
	Careers     []catalog.Career
	GeneratedAt time.Time
}

// Renderer turns a Report into document bytes. It is the only place that
// needs a document/graphics capability; scoring never depends on it.
type Renderer interface {
	Render(ctx context.Context, r Report) ([]byte, error)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(ctx context.Context, r Report) ([]byte, error)

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, r Report) ([]byte, error) {
	return f(ctx, r)
}
