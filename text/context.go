package text

import (
	"log/slog"
	"math"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/ggplot/scene"
)

// Context is a font collection plus a shaper.
type Context struct {
	logger   *slog.Logger
	lang     language.Language
	builtin  map[string]*family
	user     map[string]*family
	fontMap  *fontscan.FontMap
	shaper   shaping.HarfbuzzShaper
	fallback map[string]bool
}

// NewContext creates a text context with the embedded generic families.
func NewContext(opts ...Option) *Context {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Context{
		logger:   cfg.logger,
		lang:     language.NewLanguage(cfg.language),
		builtin:  builtinFamilies(),
		user:     make(map[string]*family),
		fallback: make(map[string]bool),
	}

	if cfg.systemFonts {
		fm := fontscan.NewFontMap(fontscanLogger{l: cfg.logger})
		if err := fm.UseSystemFonts(cfg.cacheDir); err != nil {
			c.logger.Warn("text: system fonts unavailable", "error", err)
		} else {
			c.fontMap = fm
		}
	}
	return c
}

// RegisterFont adds a TrueType/OpenType font to family. The face slot
// (regular, bold, italic, bold italic) comes from the font's own metadata.
// Registered fonts take precedence over system fonts of the same family.
func (c *Context) RegisterFont(familyName string, data []byte) error {
	name := normalizeFamily(familyName)
	face, err := parseFace(name, data)
	if err != nil {
		return err
	}
	slot := slotForAspect(face.Describe().Aspect)

	fam, ok := c.user[name]
	if !ok {
		fam = &family{name: name}
		c.user[name] = fam
	}
	fam.set(slot, data, face)
	c.logger.Debug("text: font registered", "family", name, "slot", slot)
	return nil
}

// Layout shapes req into a positioned line of glyphs.
// A non-positive size yields an empty layout.
func (c *Context) Layout(req Request) (*Layout, error) {
	if !(req.Size > 0) || math.IsInf(req.Size, 0) {
		return &Layout{Size: req.Size}, nil
	}
	if req.Weight == 0 {
		req.Weight = WeightNormal
	}

	face, err := c.resolveFace(req)
	if err != nil {
		return nil, err
	}

	l := &Layout{Face: face, Size: req.Size}
	scale := req.Size / float64(face.Upem())
	if ext, ok := face.FontHExtents(); ok {
		l.Ascent = float64(ext.Ascender) * scale
		l.Descent = -float64(ext.Descender) * scale
		l.Height = l.Ascent + l.Descent + float64(ext.LineGap)*scale
	} else {
		l.Ascent = req.Size
		l.Height = req.Size
	}

	runes := []rune(req.Text)
	if len(runes) == 0 {
		return l, nil
	}

	out := c.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: paragraphDirection(req.Text),
		Face:      face,
		Size:      floatToFixed(req.Size),
		Script:    detectScript(runes),
		Language:  c.lang,
	})

	l.Glyphs = make([]scene.Glyph, 0, len(out.Glyphs))
	var x float64
	for _, g := range out.Glyphs {
		l.Glyphs = append(l.Glyphs, scene.Glyph{
			ID: g.GlyphID,
			X:  x + fixedToFloat(g.XOffset),
			Y:  l.Ascent - fixedToFloat(g.YOffset),
		})
		x += fixedToFloat(g.Advance)
	}
	l.Width = x
	return l, nil
}

// resolveFace picks the face for a request: generic families from the
// embedded collection, named families from registered then system fonts,
// and sans-serif otherwise.
func (c *Context) resolveFace(req Request) (*font.Face, error) {
	name := normalizeFamily(req.Family)
	slot := slotFor(req.Weight, req.Slant)

	if name == "" {
		name = FamilySansSerif
	}
	if fam, ok := c.builtin[name]; ok {
		return fam.face(slot)
	}
	if fam, ok := c.user[name]; ok {
		return fam.face(slot)
	}
	if face := c.systemFace(name, req); face != nil {
		return face, nil
	}

	if !c.fallback[name] {
		c.fallback[name] = true
		c.logger.Debug("text: unknown font family, using sans-serif", "family", req.Family)
	}
	return c.builtin[FamilySansSerif].face(slot)
}

func (c *Context) systemFace(name string, req Request) *font.Face {
	if c.fontMap == nil {
		return nil
	}
	if _, ok := c.fontMap.FindSystemFont(name); !ok {
		return nil
	}
	aspect := font.Aspect{Style: font.StyleNormal, Weight: font.Weight(req.Weight)}
	if req.Slant != SlantNormal {
		aspect.Style = font.StyleItalic
	}
	c.fontMap.SetQuery(fontscan.Query{Families: []string{name}, Aspect: aspect})

	r, _ := utf8.DecodeRuneInString(req.Text)
	if r == utf8.RuneError {
		r = 'a'
	}
	return c.fontMap.ResolveFace(r)
}

// paragraphDirection returns RTL when the first bidi run is right-to-left,
// LTR otherwise.
func paragraphDirection(s string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return di.DirectionLTR
	}
	if o.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
