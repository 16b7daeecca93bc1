package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrImageData is returned when a pixel buffer is too short for its dimensions.
var ErrImageData = errors.New("scene: image data too short")

// Image is an immutable RGBA8 pixel resource.
//
// Pixels are stored row by row, 4 bytes per pixel, non-premultiplied.
// NewImage copies the caller's buffer, so the caller may reuse it.
type Image struct {
	width  int
	height int
	pix    []byte
}

// NewImage creates an image by copying the first width*height*4 bytes of pix.
func NewImage(width, height int, pix []byte) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("scene: invalid image size %dx%d", width, height)
	}
	n := width * height * 4
	if len(pix) < n {
		return nil, fmt.Errorf("%w: need %d bytes for %dx%d, got %d",
			ErrImageData, n, width, height, len(pix))
	}
	buf := make([]byte, n)
	copy(buf, pix)
	return &Image{width: width, height: height, pix: buf}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Pix returns the pixel buffer. It must not be modified.
func (img *Image) Pix() []byte { return img.pix }

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image.
func (img *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return color.NRGBA{}
	}
	i := (y*img.width + x) * 4
	return color.NRGBA{R: img.pix[i], G: img.pix[i+1], B: img.pix[i+2], A: img.pix[i+3]}
}
