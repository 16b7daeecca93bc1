package text

import (
	"bytes"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Generic family names.
const (
	FamilySerif     = "serif"
	FamilySansSerif = "sans-serif"
	FamilyMonospace = "monospace"
)

// Face slots within a family, indexed by style bits.
const (
	slotBold   = 1
	slotItalic = 2
	slotCount  = 4
)

// family holds up to four faces of one typeface. Faces are parsed on first use.
type family struct {
	name  string
	data  [slotCount][]byte
	faces [slotCount]*font.Face
	errs  [slotCount]error
}

func newFamily(name string, regular, bold, italic, boldItalic []byte) *family {
	f := &family{name: name}
	f.data[0] = regular
	f.data[slotBold] = bold
	f.data[slotItalic] = italic
	f.data[slotBold|slotItalic] = boldItalic
	return f
}

// face returns the face for slot, falling back to the closest populated slot.
func (f *family) face(slot int) (*font.Face, error) {
	for _, s := range [...]int{slot, slot &^ slotBold, slot &^ slotItalic, 0, 1, 2, 3} {
		if f.faces[s] != nil {
			return f.faces[s], nil
		}
		if f.data[s] == nil {
			continue
		}
		if f.errs[s] == nil {
			f.faces[s], f.errs[s] = parseFace(f.name, f.data[s])
		}
		if f.errs[s] != nil {
			return nil, f.errs[s]
		}
		return f.faces[s], nil
	}
	return nil, ErrNoFace
}

// set stores an already parsed face.
func (f *family) set(slot int, data []byte, face *font.Face) {
	f.data[slot] = data
	f.faces[slot] = face
	f.errs[slot] = nil
}

func parseFace(name string, data []byte) (*font.Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Family: name, Err: err}
	}
	return face, nil
}

// builtinFamilies returns the embedded generic families.
func builtinFamilies() map[string]*family {
	return map[string]*family{
		FamilySansSerif: newFamily(FamilySansSerif,
			goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF),
		FamilyMonospace: newFamily(FamilyMonospace,
			gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF),
		FamilySerif: newFamily(FamilySerif,
			lmroman10regular.TTF, lmroman10bold.TTF, lmroman10italic.TTF, lmroman10bolditalic.TTF),
	}
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// slotFor maps a weight and slant to a face slot.
func slotFor(w Weight, s Slant) int {
	slot := 0
	if w >= WeightSemiBold {
		slot |= slotBold
	}
	if s != SlantNormal {
		slot |= slotItalic
	}
	return slot
}

// slotForAspect maps a parsed font's own description to a face slot.
func slotForAspect(a font.Aspect) int {
	slot := 0
	if a.Weight >= font.WeightSemibold {
		slot |= slotBold
	}
	if a.Style == font.StyleItalic {
		slot |= slotItalic
	}
	return slot
}
