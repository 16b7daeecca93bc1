package scene

import (
	"fmt"
	"sort"
	"sync"
)

// Renderer consumes scene commands during Playback.
//
// Renderers are created via the registry using NewRenderer(name, w, h) and
// registered via Register() in their init() functions.
type Renderer interface {
	// Fill renders a fill command.
	Fill(cmd *FillCommand) error

	// Stroke renders a stroke command.
	Stroke(cmd *StrokeCommand) error

	// DrawImage renders an image command.
	DrawImage(cmd *ImageCommand) error

	// DrawGlyphs renders a glyph run command.
	DrawGlyphs(cmd *GlyphsCommand) error
}

// RendererFactory creates a renderer for a target of the given pixel size.
type RendererFactory func(width, height int) Renderer

var (
	registryMu sync.RWMutex
	renderers  = make(map[string]RendererFactory)
)

// Register registers a renderer factory with the given name,
// following the database/sql driver pattern:
//
//	func init() {
//	    scene.Register("raster", func(w, h int) scene.Renderer {
//	        return New(w, h)
//	    })
//	}
//
// Register panics if factory is nil or the name is already registered.
func Register(name string, factory RendererFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("scene: Register factory is nil")
	}
	if _, dup := renderers[name]; dup {
		panic("scene: Register called twice for " + name)
	}
	renderers[name] = factory
}

// Unregister removes a renderer from the registry.
// It is primarily useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(renderers, name)
}

// NewRenderer creates a renderer by name for a width x height target.
func NewRenderer(name string, width, height int) (Renderer, error) {
	registryMu.RLock()
	factory, ok := renderers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("scene: unknown renderer %q (forgotten import?)", name)
	}
	return factory(width, height), nil
}

// Renderers returns a sorted list of registered renderer names.
func Renderers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
