package bus

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// The SSD1325 serial interface runs at up to 4MHz, Mode0, MSB first.
const (
	spiSpeed = 4 * physic.MegaHertz
	spiMode  = spi.Mode0
	spiBits  = 8
)

// defaultMaxTxSize is used when the connection does not report its limits.
const defaultMaxTxSize = 4096

// SPI is a transport over a periph.io connection.
type SPI struct {
	c         conn.Conn
	maxTxSize int
}

// NewSPI connects to p with the settings required by the SSD1325.
func NewSPI(p spi.Port) (*SPI, error) {
	c, err := p.Connect(spiSpeed, spiMode, spiBits)
	if err != nil {
		return nil, errors.Wrap(err, "bus: failed to connect SPI port")
	}
	return NewSPIConn(c), nil
}

// NewSPIConn returns a transport over an already configured connection.
//
// Writes larger than the connection's conn.Limits are split.
func NewSPIConn(c conn.Conn) *SPI {
	size := defaultMaxTxSize
	if l, ok := c.(conn.Limits); ok && l.MaxTxSize() > 0 {
		size = l.MaxTxSize()
	}
	return &SPI{c: c, maxTxSize: size}
}

// Write implements io.Writer. It returns the number of bytes transferred
// before a failure.
func (s *SPI) Write(p []byte) (int, error) {
	n := 0
	for _, chunk := range lo.Chunk(p, s.maxTxSize) {
		if err := s.c.Tx(chunk, nil); err != nil {
			return n, errors.Wrap(err, "bus: SPI transfer failed")
		}
		n += len(chunk)
	}
	return n, nil
}

func (s *SPI) String() string {
	return s.c.String()
}
