// Package text provides the font and text-layout engine used by ggplot.
//
// A Context owns a font collection and a HarfBuzz shaper. It turns a
// Request (string, size, family, weight, slant) into a Layout: the full
// advance width, the line height and the positioned glyphs, ready to be
// submitted to a scene as a GlyphRun.
//
//	tctx := text.NewContext()
//	l, err := tctx.Layout(text.Request{Text: "Hello", Size: 14, Family: text.FamilySansSerif})
//	if err != nil {
//	    return err
//	}
//	s.DrawGlyphs(l.GlyphRun(), scene.Translate(10, 10), scene.SolidBrush(scene.Black))
//
// # Fonts
//
// Three generic families are always available from embedded data:
//
//   - sans-serif: the Go fonts
//   - monospace: Go Mono
//   - serif: Latin Modern Roman
//
// Named families are looked up among fonts added with RegisterFont, then
// among system fonts when the context was created with WithSystemFonts.
// Unknown families fall back to sans-serif.
//
// A Context is not safe for concurrent use. It is meant to be borrowed by a
// single paint pass at a time.
package text
