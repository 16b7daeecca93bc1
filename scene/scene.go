package scene

import "fmt"

// Scene is an ordered, append-only list of drawing commands.
//
// The zero value is not usable; create scenes with NewScene.
type Scene struct {
	commands []Command
	bounds   Rect
	version  uint64
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{bounds: EmptyRect()}
}

// Fill appends a fill of shape using the given rule, transform and brush.
// A nil shape is ignored.
func (s *Scene) Fill(style FillStyle, transform Affine, brush Brush, shape Shape) {
	if shape == nil {
		return
	}
	s.push(&FillCommand{Style: style, Transform: transform, Brush: brush, Shape: shape})
}

// Stroke appends a stroke of shape. The style is copied.
// A nil style or shape is ignored.
func (s *Scene) Stroke(style *StrokeStyle, transform Affine, brush Brush, shape Shape) {
	if style == nil || shape == nil {
		return
	}
	s.push(&StrokeCommand{Style: *style, Transform: transform, Brush: brush, Shape: shape})
}

// DrawImage appends an image draw. The image origin maps through transform.
func (s *Scene) DrawImage(img *Image, transform Affine) {
	if img == nil {
		return
	}
	s.push(&ImageCommand{Image: img, Transform: transform})
}

// DrawGlyphs appends a glyph run draw. Empty runs are ignored.
func (s *Scene) DrawGlyphs(run *GlyphRun, transform Affine, brush Brush) {
	if run.IsEmpty() {
		return
	}
	s.push(&GlyphsCommand{Run: run, Transform: transform, Brush: brush})
}

func (s *Scene) push(cmd Command) {
	s.commands = append(s.commands, cmd)
	s.bounds = s.bounds.Union(cmd.Bounds())
	s.version++
}

// Commands returns the recorded commands in submission order.
// The returned slice must not be modified.
func (s *Scene) Commands() []Command {
	return s.commands
}

// Len returns the number of recorded commands.
func (s *Scene) Len() int {
	return len(s.commands)
}

// IsEmpty returns true if no commands have been recorded.
func (s *Scene) IsEmpty() bool {
	return len(s.commands) == 0
}

// Version returns a counter that changes whenever the scene is modified.
func (s *Scene) Version() uint64 {
	return s.version
}

// Bounds returns the union of all command bounds, or an empty Rect if the
// scene has no commands.
func (s *Scene) Bounds() Rect {
	if s.IsEmpty() {
		return Rect{}
	}
	return s.bounds
}

// Reset clears all commands so the scene can be reused for the next frame.
func (s *Scene) Reset() {
	clear(s.commands)
	s.commands = s.commands[:0]
	s.bounds = EmptyRect()
	s.version++
}

// Playback replays every command, in order, to the renderer.
// It stops at the first error.
func (s *Scene) Playback(r Renderer) error {
	for i, cmd := range s.commands {
		var err error
		switch c := cmd.(type) {
		case *FillCommand:
			err = r.Fill(c)
		case *StrokeCommand:
			err = r.Stroke(c)
		case *ImageCommand:
			err = r.DrawImage(c)
		case *GlyphsCommand:
			err = r.DrawGlyphs(c)
		default:
			err = fmt.Errorf("scene: unsupported command %T", cmd)
		}
		if err != nil {
			return fmt.Errorf("scene: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
