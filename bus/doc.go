// Package bus provides the transports and control channels ssd1325.Dev
// writes through.
//
// Transports are io.Writer implementations that report a short write as a
// failure:
//
//   - SPI sends over a periph.io SPI connection.
//   - Serial sends over a serial port, typically a USB-serial bridge.
//   - TinySPI sends over a TinyGo drivers.SPI bus.
//
// Control channels implement ssd1325.ControlChannel:
//
//   - GPIOControl drives the D/C and RES pins through periph.io GPIO.
//   - ModemControl drives D/C through DTR and RES through RTS of a serial port.
//
// A typical 4-wire SPI setup:
//
//	p, _ := spireg.Open("")
//	t, _ := bus.NewSPI(p)
//	cc, _ := bus.NewGPIOControl(gpioreg.ByName("GPIO25"), gpioreg.ByName("GPIO24"), nil)
//	dev := ssd1325.New(t, cc, nil)
//	dev.Init()
package bus
