package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFace is returned when no face can be resolved for a request.
	ErrNoFace = errors.New("text: no font face available")
)

// FontError is returned when font data for a family cannot be parsed.
type FontError struct {
	Family string
	Err    error
}

func (e *FontError) Error() string {
	return "text: font " + e.Family + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error {
	return e.Err
}
