// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster plays a scene back into an in-memory RGBA image.
//
// It is the reference renderer for ggplot scenes: it lets a chart be
// inspected in tests or exported as PNG without a GPU. Importing the
// package registers it under the name "raster":
//
//	import _ "github.com/gogpu/ggplot/raster"
//
//	r, err := scene.NewRenderer("raster", 800, 600)
//
// Or use it directly:
//
//	r, err := raster.Render(s, 800, 600, raster.Options{Background: color.White})
//	if err != nil {
//	    return err
//	}
//	err = r.EncodePNG(f)
//
// Fills use golang.org/x/image/vector coverage accumulation. Strokes are
// expanded into fill outlines by internal/stroke and filled the same way.
// Images are drawn through golang.org/x/image/draw affine transforms and
// glyph runs through their outlines.
package raster
