package frame

import (
	"image"
	"image/gif"

	"golang.org/x/image/draw"
)

// Coalesce flattens an animation onto its full logical canvas. GIF
// encoders may store each frame as a sub-image covering only the
// changed region, positioned by its bounds; Coalesce composites every
// frame onto a persistent canvas, honoring its disposal method, so the
// returned images all share the same full-canvas bounds.
func Coalesce(g *gif.GIF) []image.Image {
	w, h := g.Config.Width, g.Config.Height
	// Older encoders leave the logical screen unset; grow it to cover
	// every frame.
	for _, m := range g.Image {
		if r := m.Bounds(); r.Max.X > w {
			w = r.Max.X
		}
		if r := m.Bounds(); r.Max.Y > h {
			h = r.Max.Y
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	out := make([]image.Image, 0, len(g.Image))
	for i, src := range g.Image {
		var saved *image.RGBA
		if disposalOf(g, i) == gif.DisposalPrevious {
			saved = image.NewRGBA(canvas.Bounds())
			draw.Draw(saved, saved.Bounds(), canvas, image.Point{}, draw.Src)
		}

		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)

		snap := image.NewRGBA(canvas.Bounds())
		draw.Draw(snap, snap.Bounds(), canvas, image.Point{}, draw.Src)
		out = append(out, snap)

		switch disposalOf(g, i) {
		case gif.DisposalBackground:
			draw.Draw(canvas, src.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = saved
		}
	}
	return out
}

// disposalOf reads frame i's disposal method; missing entries mean the
// frame persists.
func disposalOf(g *gif.GIF, i int) byte {
	if i < len(g.Disposal) {
		return g.Disposal[i]
	}
	return gif.DisposalNone
}
