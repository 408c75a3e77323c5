// Package renderer is the 3D preview collaborator boundary. The core only
// hands out a descriptor; mesh loading, rotation, and shading happen client
// side. Nothing here feeds back into cart or configurator state.
package renderer

import (
	"context"

	"github.com/emberworks/forgefront-backend/internal/catalog"
	"github.com/emberworks/forgefront-backend/pkg/logger"
)

// Input is everything the renderer needs for one surface.
type Input struct {
	ModelRef        string `json:"model_ref"`
	ColorOrMaterial string `json:"color_or_material"`
}

// Describe builds the render descriptor for a product.
func Describe(p catalog.Product) Input {
	return Input{
		ModelRef:        p.ModelRef,
		ColorOrMaterial: p.ColorOrMaterial,
	}
}

// Collaborator absorbs renderer-side signals. Hover events are discarded and
// load failures are only logged; neither ever becomes a core error.
type Collaborator struct {
	logg *logger.Logger
}

func NewCollaborator(logg *logger.Logger) *Collaborator {
	return &Collaborator{logg: logg}
}

// OnHover ignores the pointer-hover signal.
func (c *Collaborator) OnHover(ctx context.Context, productID string, entered bool) {
	if c.logg == nil {
		return
	}
	ctx = c.logg.WithFields(ctx, map[string]any{"product_id": productID, "entered": entered})
	c.logg.Debug(ctx, "renderer.hover")
}

// ReportLoadFailure records a failed mesh load. Core state stays untouched.
func (c *Collaborator) ReportLoadFailure(ctx context.Context, modelRef string, cause error) {
	if c.logg == nil {
		return
	}
	ctx = c.logg.WithField(ctx, "model_ref", modelRef)
	c.logg.Error(ctx, "renderer.load_failed", cause)
}
