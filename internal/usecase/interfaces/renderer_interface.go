package interfaces

import (
	"context"

	"woodshop_builds/internal/domain/entities"
)

// IRenderer abstracts the external render pipeline. Render may take arbitrary
// latency and may fail; output is an opaque image handle (data URL).
// Re-rendering identical inputs need not produce byte-identical output.

type IRenderer interface {
	Render(ctx context.Context, view entities.RenderView, dims entities.Dimensions, opts entities.BuildOptions, notes string) (string, error)
}
