package bus

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.bug.st/serial"
	"go.uber.org/zap"

	"github.com/flavioheleno/ssd1325"
)

// ModemLines are the serial port handshake lines used as side-band control
// lines. serial.Port implements it.
type ModemLines interface {
	SetDTR(dtr bool) error
	SetRTS(rts bool) error
}

// Port is the subset of serial.Port used by Serial.
type Port interface {
	io.WriteCloser
	ModemLines
}

// Serial is a transport over a serial port.
type Serial struct {
	port Port
	name string
}

// OpenSerial opens the first serial port whose name contains name.
func OpenSerial(name string, baud int) (*Serial, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, errors.Wrap(err, "bus: failed to list serial ports")
	}

	var matched string
	for _, p := range ports {
		if strings.Contains(p, name) {
			matched = p
			break
		}
	}
	if matched == "" {
		return nil, errors.Errorf("bus: serial port %q not found", name)
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "bus: failed to open %s", matched)
	}
	return NewSerial(port, matched), nil
}

// NewSerial returns a transport over an already opened port.
func NewSerial(port Port, name string) *Serial {
	return &Serial{port: port, name: name}
}

// Write implements io.Writer. It keeps writing until p is sent or the port
// fails.
func (s *Serial) Write(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := s.port.Write(p[n:])
		n += m
		if err != nil {
			return n, errors.Wrap(err, "bus: serial write failed")
		}
		if m == 0 {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// Lines returns the handshake lines of the port, for use with
// NewModemControl.
func (s *Serial) Lines() ModemLines {
	return s.port
}

// Close closes the port.
func (s *Serial) Close() error {
	return s.port.Close()
}

func (s *Serial) String() string {
	return fmt.Sprintf("Serial{%s}", s.name)
}

// ModemControl is a ssd1325.ControlChannel for displays behind a USB-serial
// bridge: DTR drives D/C and RTS drives RES.
//
// DTR asserted selects data, released selects commands. RTS asserted holds
// the display in reset.
type ModemControl struct {
	lines ModemLines
	log   *zap.Logger
}

// NewModemControl returns a control channel using lines. RES is released
// immediately. log can be nil.
func NewModemControl(lines ModemLines, log *zap.Logger) (*ModemControl, error) {
	if lines == nil {
		return nil, errors.New("bus: modem lines are required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := lines.SetRTS(false); err != nil {
		return nil, errors.Wrap(err, "bus: failed to release RTS")
	}
	return &ModemControl{lines: lines, log: log}, nil
}

// RunInMode implements ssd1325.ControlChannel.
func (m *ModemControl) RunInMode(mode ssd1325.DisplayMode, f func() error) (err error) {
	m.log.Debug("run in mode", zap.Stringer("mode", mode))
	switch mode {
	case ssd1325.Idle:
	case ssd1325.Reset:
		if err := m.lines.SetRTS(true); err != nil {
			return errors.Wrap(err, "bus: failed to assert RTS")
		}
		defer func() {
			if rerr := m.lines.SetRTS(false); rerr != nil && err == nil {
				err = errors.Wrap(rerr, "bus: failed to release RTS")
			}
		}()
	case ssd1325.Command:
		if err := m.lines.SetDTR(false); err != nil {
			return errors.Wrapf(err, "bus: failed to enter %s mode", mode)
		}
	case ssd1325.Data:
		if err := m.lines.SetDTR(true); err != nil {
			return errors.Wrapf(err, "bus: failed to enter %s mode", mode)
		}
	default:
		return errors.Errorf("bus: unknown display mode %s", mode)
	}
	return f()
}
