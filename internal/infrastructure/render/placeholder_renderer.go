package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"

	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/usecase/interfaces"
)

// PlaceholderRenderer stands in for the external 3D render pipeline. It
// produces a small flat-color PNG data URL whose tint is derived from the
// render inputs, so distinct specs are visually distinguishable in the
// preview UI without a real renderer attached.

type PlaceholderRenderer struct {
	width  int
	height int
}

var _ interfaces.IRenderer = (*PlaceholderRenderer)(nil)

func NewPlaceholderRenderer() *PlaceholderRenderer {
	return &PlaceholderRenderer{width: 64, height: 48}
}

func (r *PlaceholderRenderer) Render(ctx context.Context, view entities.RenderView, dims entities.Dimensions, opts entities.BuildOptions, notes string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%.2f|%.2f|%.2f|%s|%s|%s|%s",
		view, dims.LengthIn, dims.WidthIn, dims.HeightIn,
		opts.WoodSpecies, opts.Finish, opts.Joinery, notes)
	seed := h.Sum32()

	tint := color.RGBA{
		R: uint8(96 + seed%96),
		G: uint8(64 + (seed>>8)%96),
		B: uint8(32 + (seed>>16)%64),
		A: 255,
	}

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			img.SetRGBA(x, y, tint)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode placeholder render: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
