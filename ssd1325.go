// Package ssd1325 drives a SSD1325 OLED controller as a 128x64 monochrome
// display.
//
// The driver only sequences bytes. Delivering them is left to an io.Writer
// and switching between command, data and reset is left to a ControlChannel,
// so the same Dev works over SPI, a USB-serial bridge or a test double.
//
// See the examples for how to use this package.
package ssd1325

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/flavioheleno/ssd1325/image1bit"
)

// Display geometry.
const (
	Width  = 128
	Height = 64
	// FrameSize is the size in bytes of a packed 1-bit frame.
	FrameSize = Width * Height / 8
)

// Hardware mandated delays.
const (
	resetPulse  = 10 * time.Millisecond
	resetSettle = 500 * time.Millisecond
	powerSettle = 100 * time.Millisecond
)

var sleep = time.Sleep

// DisplayMode is the mode of the side-band control lines.
type DisplayMode int

// Possible display modes.
const (
	// Idle is the interface at rest. Dev never requests it.
	Idle DisplayMode = iota
	// Reset holds the controller in hardware reset.
	Reset
	// Data makes the controller store written bytes in display RAM.
	Data
	// Command makes the controller interpret written bytes as opcodes.
	Command
)

func (m DisplayMode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Reset:
		return "Reset"
	case Data:
		return "Data"
	case Command:
		return "Command"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// ControlChannel places the display interface in a mode before bytes are
// written to it.
type ControlChannel interface {
	// RunInMode asserts mode, runs f and returns its result.
	//
	// The interface must be left in a mode other than Reset once RunInMode
	// returns, whether f failed or not.
	RunInMode(mode DisplayMode, f func() error) error
}

// Opts is the configuration for the SSD1325 display.
type Opts struct {
	// Logger traces every sequence sent to the display. nil disables logging.
	Logger *zap.Logger
}

// Dev is a command adapter for a SSD1325 display.
//
// Dev is not safe for concurrent use. Command and data sequences are not
// atomic from the controller's point of view, callers sharing a Dev must
// serialize access to it.
type Dev struct {
	// Communication
	w  io.Writer
	cc ControlChannel

	log  *zap.Logger
	rect image.Rectangle

	// next is lazy initialized on first partial Draw().
	next *image1bit.HorizontalMSB

	// State
	initialized bool
	on          bool
	inverted    bool
}

// New returns a Dev writing to w once cc has put the display in the
// requested mode.
//
// w is typically a SPI connection, cc typically drives the D/C and RES GPIO
// pins. No I/O is performed: the display must be initialized with Init before
// use and is left off.
//
// opts can be nil.
func New(w io.Writer, cc ControlChannel, opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Dev{
		w:    w,
		cc:   cc,
		log:  log,
		rect: image.Rect(0, 0, Width, Height),
	}
}

// Init resets and initializes the display. It blocks for approximately
// 600ms.
//
// The display is left off and not inverted.
func (d *Dev) Init() error {
	d.initialized = false
	if err := d.reset(); err != nil {
		return err
	}
	d.on, d.inverted = false, false

	if err := d.writeSequence(Command, initSequence[:]); err != nil {
		return err
	}
	// Let the DC/DC converter and VCOMH regulator settle.
	sleep(powerSettle)

	d.initialized = true
	return nil
}

// Clear blanks the display RAM.
func (d *Dev) Clear() error {
	var zero [FrameSize]byte
	if err := d.BlitL1(&zero); err != nil {
		return err
	}
	if d.next != nil {
		copy(d.next.Pix, zero[:])
	}
	return nil
}

// SetOn turns the display on or off. It is off after Init.
//
// The controller documents no settling time after this command.
func (d *Dev) SetOn(on bool) error {
	cmd := byte(displayOff)
	if on {
		cmd = displayOn
	}
	if err := d.writeSequence(Command, []byte{cmd}); err != nil {
		return err
	}
	d.on = on
	return nil
}

// SetInverted inverts the display colors or restores them. It is normal
// after Init.
func (d *Dev) SetInverted(inverted bool) error {
	cmd := byte(normalDisplay)
	if inverted {
		cmd = invertDisplay
	}
	if err := d.writeSequence(Command, []byte{cmd}); err != nil {
		return err
	}
	d.inverted = inverted
	return nil
}

// SetContrast sets the contrast current. Only the lower 7 bits are used.
func (d *Dev) SetContrast(level byte) error {
	return d.writeSequence(Command, []byte{setContrast, level & contrastMask})
}

// BlitL1 sends an entire frame to the display.
//
// The frame is a 1-bit bitmap arranged as 64 rows of 128 pixels, packed 8
// pixels per byte with the most significant bit being the leftmost pixel of
// the group. It is sent as is. A nil frame is rejected before any I/O.
func (d *Dev) BlitL1(frame *[FrameSize]byte) error {
	if frame == nil {
		return ErrWriteFailed
	}
	if err := d.writeSequence(Command, windowSequence[:]); err != nil {
		return err
	}
	return d.writeSequence(Data, frame[:])
}

// IsOn reports whether the display was last turned on.
func (d *Dev) IsOn() bool {
	return d.on
}

// IsInverted reports whether the display colors are inverted.
func (d *Dev) IsInverted() bool {
	return d.inverted
}

// Initialized reports whether Init completed successfully.
func (d *Dev) Initialized() bool {
	return d.initialized
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// The whole frame is sent on every call, the controller is never addressed
// through a partial window.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if img, ok := src.(*image1bit.HorizontalMSB); ok && r == d.rect && img.Rect == d.rect && sp.X == 0 && sp.Y == 0 && img.Frame() != nil {
		// Exact size, full frame, wire encoding: fast path!
		if err := d.BlitL1(img.Frame()); err != nil {
			return err
		}
		if d.next != nil {
			copy(d.next.Pix, img.Pix)
		}
		return nil
	}

	if d.next == nil {
		d.next = image1bit.NewHorizontalMSB(d.rect)
	}
	if r.Intersect(d.rect).Empty() {
		return nil
	}
	// draw clips r and shifts sp accordingly.
	draw.Src.Draw(d.next, r, src, sp)
	return d.BlitL1(d.next.Frame())
}

// Halt implements conn.Resource. It turns the display off.
func (d *Dev) Halt() error {
	return d.SetOn(false)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1325.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// reset pulses the reset line and waits for the controller to restart.
func (d *Dev) reset() error {
	d.log.Debug("reset", zap.Duration("pulse", resetPulse))
	err := d.cc.RunInMode(Reset, func() error {
		sleep(resetPulse)
		return nil
	})
	if err != nil {
		d.log.Warn("reset failed", zap.Error(err))
		return writeFailed(err)
	}
	// The interface is held idle while the controller restarts.
	sleep(resetSettle)
	return nil
}

// writeSequence sends b to the display in mode.
func (d *Dev) writeSequence(mode DisplayMode, b []byte) error {
	d.log.Debug("write sequence", zap.Stringer("mode", mode), zap.Int("len", len(b)))
	err := d.cc.RunInMode(mode, func() error {
		n, err := d.w.Write(b)
		if err != nil {
			return err
		}
		if n < len(b) {
			return io.ErrShortWrite
		}
		return nil
	})
	if err != nil {
		d.log.Warn("write sequence failed", zap.Stringer("mode", mode), zap.Int("len", len(b)), zap.Error(err))
		return writeFailed(err)
	}
	return nil
}
