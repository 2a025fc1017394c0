package bus

import (
	"github.com/pkg/errors"
	"tinygo.org/x/drivers"
)

// TinySPI is a transport over a TinyGo SPI bus, such as machine.SPI0.
//
// The bus must already be configured for the SSD1325, see spiSpeed.
type TinySPI struct {
	bus drivers.SPI
}

// NewTinySPI returns a transport writing to b.
func NewTinySPI(b drivers.SPI) *TinySPI {
	return &TinySPI{bus: b}
}

// Write implements io.Writer. The bus either takes all of p or nothing.
func (t *TinySPI) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := t.bus.Tx(p, nil); err != nil {
		return 0, errors.Wrap(err, "bus: SPI transfer failed")
	}
	return len(p), nil
}
