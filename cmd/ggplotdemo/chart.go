package main

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/ggplot"
)

// chart describes a single-series line chart.
type chart struct {
	caption string
	font    ggplot.FontFamily // caption family
	label   string
	xMin    float64
	xMax    float64
	yMin    float64
	yMax    float64
	points  [][2]float64
}

// squareChart samples y = x^2 on [-1, 1].
func squareChart(caption string, samples int) chart {
	samples = max(samples, 2)
	c := chart{
		caption: caption,
		font:    ggplot.FamilySansSerif,
		label:   "y = x^2",
		xMin:    -1,
		xMax:    1,
		yMin:    -0.1,
		yMax:    1,
	}
	for i := range samples {
		x := -1 + 2*float64(i)/float64(samples-1)
		c.points = append(c.points, [2]float64{x, x * x})
	}
	return c
}

const (
	margin      = 5
	marginRight = 15
	labelArea   = 30
	tickLen     = 5
)

// plotArea maps data coordinates into the pixel rectangle of the plot.
type plotArea struct {
	c              chart
	x0, y0, x1, y1 int32
}

func (p plotArea) coord(x, y float64) ggplot.BackendCoord {
	fx := (x - p.c.xMin) / (p.c.xMax - p.c.xMin)
	fy := (y - p.c.yMin) / (p.c.yMax - p.c.yMin)
	return ggplot.Coord(
		p.x0+int32(math.Round(fx*float64(p.x1-p.x0))),
		p.y1-int32(math.Round(fy*float64(p.y1-p.y0))),
	)
}

// draw renders c onto a; the area is filled with white first.
func (c chart) draw(a *ggplot.DrawingArea[*ggplot.TextBackend]) error {
	b := a.Backend()
	w, h := a.Size()
	if err := a.Fill(ggplot.White); err != nil {
		return err
	}

	captionStyle := ggplot.NewTextStyle(c.font, 50).WithAnchor(ggplot.HPosCenter, ggplot.VPosTop)
	_, ch, err := b.EstimateTextSize(c.caption, captionStyle)
	if err != nil {
		return err
	}
	if err := a.DrawText(c.caption, captionStyle, ggplot.Coord(int32(w)/2, margin)); err != nil {
		return err
	}

	p := plotArea{
		c:  c,
		x0: margin + labelArea,
		y0: margin + int32(ch) + margin,
		x1: int32(w) - marginRight,
		y1: int32(h) - margin - labelArea,
	}
	if p.x1 <= p.x0 || p.y1 <= p.y0 {
		return fmt.Errorf("area %dx%d too small for the chart", w, h)
	}

	if err := c.drawMesh(b, p); err != nil {
		return err
	}

	series := func(yield func(ggplot.BackendCoord) bool) {
		for _, pt := range c.points {
			if !yield(p.coord(pt[0], pt[1])) {
				return
			}
		}
	}
	if err := b.DrawPath(series, ggplot.Red); err != nil {
		return err
	}

	return c.drawLegend(b, p)
}

func (c chart) drawMesh(b *ggplot.TextBackend, p plotArea) error {
	light := ggplot.Black.Mix(0.1)
	bold := ggplot.Black.Mix(0.2)
	labelStyle := ggplot.NewTextStyle(ggplot.FamilySansSerif, 12)

	for i := 0; i <= 50; i++ {
		x := c.xMin + (c.xMax-c.xMin)*float64(i)/50
		style := light
		if i%5 == 0 {
			style = bold
		}
		top, bottom := p.coord(x, c.yMax), p.coord(x, c.yMin)
		if err := b.DrawLine(top, bottom, style); err != nil {
			return err
		}
		if i%5 != 0 {
			continue
		}
		tick := ggplot.Coord(bottom.X, p.y1+tickLen)
		if err := b.DrawLine(ggplot.Coord(bottom.X, p.y1), tick, ggplot.Black); err != nil {
			return err
		}
		s := labelStyle.WithAnchor(ggplot.HPosCenter, ggplot.VPosTop)
		if err := b.DrawText(tickLabel(x), s, ggplot.Coord(tick.X, tick.Y+2)); err != nil {
			return err
		}
	}

	for i := 0; i <= 55; i++ {
		y := c.yMin + (c.yMax-c.yMin)*float64(i)/55
		style := light
		if i%5 == 0 {
			style = bold
		}
		left, right := p.coord(c.xMin, y), p.coord(c.xMax, y)
		if err := b.DrawLine(left, right, style); err != nil {
			return err
		}
		if i%5 != 0 {
			continue
		}
		tick := ggplot.Coord(p.x0-tickLen, left.Y)
		if err := b.DrawLine(tick, ggplot.Coord(p.x0, left.Y), ggplot.Black); err != nil {
			return err
		}
		s := labelStyle.WithAnchor(ggplot.HPosRight, ggplot.VPosCenter)
		if err := b.DrawText(tickLabel(y), s, ggplot.Coord(tick.X-2, tick.Y)); err != nil {
			return err
		}
	}

	// axes
	if err := b.DrawLine(ggplot.Coord(p.x0, p.y0), ggplot.Coord(p.x0, p.y1), ggplot.Black); err != nil {
		return err
	}
	return b.DrawLine(ggplot.Coord(p.x0, p.y1), ggplot.Coord(p.x1, p.y1), ggplot.Black)
}

func (c chart) drawLegend(b *ggplot.TextBackend, p plotArea) error {
	const pad, sample = 5, 20
	style := ggplot.NewTextStyle(ggplot.FamilySansSerif, 14).WithAnchor(ggplot.HPosLeft, ggplot.VPosCenter)
	tw, th, err := b.EstimateTextSize(c.label, style)
	if err != nil {
		return err
	}

	boxW := int32(pad + sample + pad + tw + pad)
	boxH := int32(th + 2*pad)
	ul := ggplot.Coord(p.x1-boxW-10, p.y0+10)
	br := ggplot.Coord(ul.X+boxW, ul.Y+boxH)

	if err := b.DrawRect(ul, br, ggplot.White.Filled(), true); err != nil {
		return err
	}
	if err := b.DrawRect(ul, br, ggplot.Black, false); err != nil {
		return err
	}

	mid := ul.Y + boxH/2
	sampleFrom := ggplot.Coord(ul.X+pad, mid)
	sampleTo := ggplot.Coord(sampleFrom.X+sample, mid)
	if err := b.DrawPath(slices.Values([]ggplot.BackendCoord{sampleFrom, sampleTo}), ggplot.Red); err != nil {
		return err
	}
	return b.DrawText(c.label, style, ggplot.Coord(sampleTo.X+pad, mid))
}

func tickLabel(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return fmt.Sprintf("%.1f", v)
}
