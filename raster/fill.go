package raster

import (
	"image"
	"math"

	"github.com/SH20RAJ/icons/svgpath"
	"github.com/SH20RAJ/icons/utils"
	"golang.org/x/image/vector"
)

// maxMaskSize bounds the longest side of the masks built by Equivalent.
const maxMaskSize = 256

// Transform maps path coordinates to pixels: p' = (p - Origin) * Scale.
type Transform struct {
	OriginX, OriginY float64
	Scale            float64
}

func (t Transform) apply(x, y float64) (float32, float32) {
	return float32((x - t.OriginX) * t.Scale), float32((y - t.OriginY) * t.Scale)
}

// Fill rasterizes the outline of p into a w×h coverage mask using the
// non-zero winding rule. Open sub-paths are closed, as a fill would.
func Fill(p svgpath.Path, w, h int, t Transform) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	open := false
	for _, s := range p.Normalize() {
		a := s.Args
		switch s.Cmd {
		case 'M':
			if open {
				z.ClosePath()
			}
			z.MoveTo(t.apply(a[0], a[1]))
			open = true
		case 'L':
			z.LineTo(t.apply(a[0], a[1]))
		case 'Q':
			bx, by := t.apply(a[0], a[1])
			cx, cy := t.apply(a[2], a[3])
			z.QuadTo(bx, by, cx, cy)
		case 'C':
			bx, by := t.apply(a[0], a[1])
			cx, cy := t.apply(a[2], a[3])
			dx, dy := t.apply(a[4], a[5])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case 'Z':
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Bounds returns the bounding box of every point of the normalized path,
// control points included.
func Bounds(p svgpath.Path) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, s := range p.Normalize() {
		for i := 0; i+1 < len(s.Args); i += 2 {
			minX, maxX = math.Min(minX, s.Args[i]), math.Max(maxX, s.Args[i])
			minY, maxY = math.Min(minY, s.Args[i+1]), math.Max(maxY, s.Args[i+1])
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}

// Xor returns the per-pixel coverage difference of two masks of equal size.
func Xor(a, b *image.Alpha) *image.Alpha {
	r := a.Bounds().Intersect(b.Bounds())
	dst := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d := int(a.AlphaAt(x, y).A) - int(b.AlphaAt(x, y).A)
			dst.Pix[dst.PixOffset(x, y)] = uint8(utils.Abs(d))
		}
	}
	return dst
}

// Coverage counts the pixels of m whose alpha exceeds tolerance.
func Coverage(m *image.Alpha, tolerance uint8) int {
	n := 0
	for _, v := range m.Pix {
		if v > tolerance {
			n++
		}
	}
	return n
}

// Equivalent reports whether two path data strings fill the same area,
// comparing coverage masks rendered over their joint bounding box.
// Pixels differing by no more than tolerance alpha levels are ignored.
func Equivalent(a, b string, tolerance uint8) (bool, error) {
	pa, err := svgpath.Parse(a)
	if err != nil {
		return false, err
	}
	pb, err := svgpath.Parse(b)
	if err != nil {
		return false, err
	}

	ax0, ay0, ax1, ay1, okA := Bounds(pa)
	bx0, by0, bx1, by1, okB := Bounds(pb)
	if !okA || !okB {
		return okA == okB, nil
	}
	minX, minY := math.Min(ax0, bx0), math.Min(ay0, by0)
	maxX, maxY := math.Max(ax1, bx1), math.Max(ay1, by1)

	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = (maxMaskSize - 2) / extent
	}
	t := Transform{OriginX: minX - 1/scale, OriginY: minY - 1/scale, Scale: scale}
	w := int(math.Ceil((maxX-minX)*scale)) + 2
	h := int(math.Ceil((maxY-minY)*scale)) + 2

	diff := Xor(Fill(pa, w, h, t), Fill(pb, w, h, t))
	return Coverage(diff, tolerance) == 0, nil
}
