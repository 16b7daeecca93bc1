package text

import (
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/ggplot/scene"
)

// GlyphPath returns the outline of glyph gid scaled to size pixels per em,
// with the origin on the baseline and y pointing down.
// Glyphs without an outline (spaces, bitmap-only glyphs) yield an empty path.
func GlyphPath(face *font.Face, gid font.GID, size float64) *scene.Path {
	p := scene.NewPath()
	if face == nil || gid == font.EmptyGlyph {
		return p
	}
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return p
	}

	scale := size / float64(face.Upem())
	pt := func(sp ot.SegmentPoint) (float64, float64) {
		return float64(sp.X) * scale, -float64(sp.Y) * scale
	}

	open := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			x, y := pt(seg.Args[0])
			p.MoveTo(x, y)
			open = true

		case ot.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			p.LineTo(x, y)

		case ot.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			p.QuadTo(cx, cy, x, y)

		case ot.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		p.Close()
	}
	return p
}
