package render

import (
	"context"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Renderer turns the current session snapshot into a byte representation
// (HTML, JSON, ...). Renderers never mutate the session.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, def model.Definition, snap model.Snapshot) ([]byte, error)
}
