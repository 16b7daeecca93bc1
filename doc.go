// Package ggplot is a chart drawing backend that records into a retained
// vector scene.
//
// # Overview
//
// A charting library draws with a small set of primitives: pixels, lines,
// rectangles, paths, circles, polygons, text and bitmaps, all in integer
// device coordinates. ggplot implements those primitives as the
// DrawingBackend interface and turns each call into fills, strokes, image
// draws and glyph runs on a [scene.Scene]. The host owns the scene and
// plays it back with any registered renderer.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggplot"
//	    "github.com/gogpu/ggplot/raster"
//	    "github.com/gogpu/ggplot/scene"
//	    "github.com/gogpu/ggplot/text"
//	)
//
//	s := scene.NewScene()
//	err := ggplot.Paint(640, 480, s, text.NewContext(), func(a *ggplot.DrawingArea[*ggplot.TextBackend]) error {
//	    if err := a.Fill(ggplot.White); err != nil {
//	        return err
//	    }
//	    b := a.Backend()
//	    return b.DrawLine(ggplot.Coord(10, 10), ggplot.Coord(630, 470), ggplot.Red.StrokeWidthOf(2))
//	})
//
//	r, err := raster.Render(s, 640, 480, raster.Options{})
//
// # Backends
//
// SceneBackend draws geometry only. TextBackend adds a [text.Context] for
// DrawText and EstimateTextSize and hands every other call to its
// SceneBackend.
//
// # Coordinate System
//
// Backend coordinates name pixels. Strokes go through pixel centers
// (x+0.5, y+0.5) so that one pixel wide lines cover exactly one pixel
// row or column. Fills use pixel corners and treat rectangle bounds as
// inclusive, so a filled rectangle from (0,0) to (2,2) covers 3x3 pixels.
//
// # Errors
//
// Every error returned by a backend matches ErrBackend. Drawing
// primitives only fail when the backend has been released or, for
// BlitBitmap, when the pixel buffer is too short. Text operations also
// report text engine failures.
package ggplot
