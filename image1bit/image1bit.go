package image1bit

import (
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Bit is a single pixel, On or Off.
type Bit = image1bit.Bit

// Possible pixel values.
const (
	On  = image1bit.On
	Off = image1bit.Off
)

// BitModel converts colors to Bit.
var BitModel = image1bit.BitModel

// Frame geometry accepted by the SSD1325.
const (
	frameW    = 128
	frameH    = 64
	frameSize = frameW * frameH / 8
)

// HorizontalMSB is a 1-bit image where pixels are packed horizontally, 8 per
// byte, most significant bit first.
type HorizontalMSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewHorizontalMSB creates a new HorizontalMSB image with the specified
// bounds. The width must be a multiple of 8.
func NewHorizontalMSB(r image.Rectangle) *HorizontalMSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &HorizontalMSB{Rect: r}
	}
	if w%8 != 0 {
		panic("image1bit: width must be a multiple of 8")
	}
	stride := w / 8
	return &HorizontalMSB{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *HorizontalMSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *HorizontalMSB) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *HorizontalMSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *HorizontalMSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	if offset >= len(p.Pix) {
		return Off
	}
	return Bit(p.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (p *HorizontalMSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y). It skips the color conversion of Set.
func (p *HorizontalMSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if offset >= len(p.Pix) {
		return
	}
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Frame returns the pixels as a full SSD1325 frame, sharing memory with Pix.
// It returns nil unless the image is 128x64.
func (p *HorizontalMSB) Frame() *[frameSize]byte {
	if p.Rect.Dx() != frameW || p.Rect.Dy() != frameH || len(p.Pix) != frameSize {
		return nil
	}
	return (*[frameSize]byte)(p.Pix)
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// The leftmost pixel of each byte is bit 7.
func (p *HorizontalMSB) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx&7)
	return
}
