// Package ssd1325 controls a SSD1325 OLED display as a 128x64 monochrome
// screen.
//
// The driver implements the display.Drawer interface from periph.io and
// exposes the raw controller operations: Init, Clear, SetOn, SetInverted,
// SetContrast and BlitL1.
//
// # Transport and Control Lines
//
// The driver never touches hardware directly. Bytes go through any
// io.Writer and the D/C and RES lines are driven by a ControlChannel, which
// runs a write while the display is held in a DisplayMode:
//
//	Command  D/C low, bytes are opcodes
//	Data     D/C high, bytes go to display RAM
//	Reset    RES low, the controller restarts
//
// A ControlChannel must never leave the display in Reset. Package bus
// provides SPI, serial and TinyGo transports, and GPIO and serial modem line
// control channels.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/ssd1325"
//		"github.com/flavioheleno/ssd1325/bus"
//		"github.com/flavioheleno/ssd1325/image1bit"
//	)
//
//	func main() {
//		host.Init()
//		p, _ := spireg.Open("")
//		t, _ := bus.NewSPI(p)
//		cc, _ := bus.NewGPIOControl(gpioreg.ByName("GPIO25"), gpioreg.ByName("GPIO24"), nil)
//
//		dev := ssd1325.New(t, cc, nil)
//		dev.Init() // ~600ms, display left off
//		dev.Clear()
//		dev.SetOn(true)
//		defer dev.Halt()
//
//		img := image1bit.NewHorizontalMSB(dev.Bounds())
//		img.SetBit(10, 10, image1bit.On)
//		dev.BlitL1(img.Frame())
//	}
//
// # Frame Format
//
// BlitL1 takes 1024 bytes: 64 rows of 128 pixels, 8 pixels per byte, most
// significant bit first. image1bit.HorizontalMSB stores pixels in that
// layout. Draw accepts any image and always transfers the whole frame.
//
// # Errors
//
// Every failure is reported as ErrWriteFailed, test for it with errors.Is.
// The sequence in progress is abandoned and the display may show a partial
// update. All operations are safe to retry.
//
// # Timing
//
// Init blocks for about 600ms of mandated reset and power settling delays.
// SetOn and SetInverted are sent without any delay; the controller
// documentation does not state how long they take to apply.
//
// # Concurrency
//
// A Dev is not safe for concurrent use. Serialize access when sharing it.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1325.pdf
package ssd1325
