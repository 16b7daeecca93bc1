// Package scene provides the retained vector scene that ggplot backends draw into.
//
// A Scene is an ordered, append-only list of drawing commands. Each command
// carries its own transform and brush, so the list can be replayed in order
// to any [Renderer] without any shared graphics state:
//
//	s := scene.NewScene()
//	s.Fill(scene.FillNonZero, scene.Identity(), scene.SolidBrush(scene.White),
//	    scene.NewRect(0, 0, 100, 100))
//	s.Stroke(scene.DefaultStrokeStyle(), scene.Identity(), scene.SolidBrush(scene.Black),
//	    scene.Line{P0: scene.Point{X: 0.5, Y: 0.5}, P1: scene.Point{X: 99.5, Y: 99.5}})
//
//	r, _ := scene.NewRenderer("raster", 100, 100)
//	_ = s.Playback(r)
//
// # Architecture
//
// The package follows the command pattern of gg's recording system:
//
//   - Shapes: Rect, Line, Circle and Path, all convertible to a Path
//   - Commands: FillCommand, StrokeCommand, ImageCommand, GlyphsCommand
//   - Resources: Image (immutable RGBA8 pixels) and GlyphRun (shaped text)
//   - Renderers: registered by name, database/sql driver style
//
// # Ownership
//
// A Scene is owned by the host for the duration of one frame. Drawing code
// borrows it for a single paint pass and must not keep a reference once the
// pass is over. Scene is not safe for concurrent use.
package scene
