package bus

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"

	"github.com/flavioheleno/ssd1325"
)

// GPIOControl is a ssd1325.ControlChannel driving the D/C and RES pins of a
// 4-wire SPI display.
//
// D/C is low for commands and high for data. RES is active low.
type GPIOControl struct {
	dc  gpio.PinOut
	rst gpio.PinOut
	log *zap.Logger

	// dcLevel caches the D/C level to skip redundant pin writes.
	dcLevel gpio.Level
	dcKnown bool
}

// NewGPIOControl returns a control channel using dc and rst.
//
// rst can be nil when the RES pin is wired to the host reset, Reset is then
// a no-op around the callback. The RES pin is released immediately. log can
// be nil.
func NewGPIOControl(dc, rst gpio.PinOut, log *zap.Logger) (*GPIOControl, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("bus: dc pin is required")
	}
	if rst == gpio.INVALID {
		return nil, errors.New("bus: use nil for rst when it is not connected, do not use gpio.INVALID")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if rst != nil {
		if err := rst.Out(gpio.High); err != nil {
			return nil, errors.Wrap(err, "bus: failed to release RST")
		}
	}
	return &GPIOControl{dc: dc, rst: rst, log: log}, nil
}

// RunInMode implements ssd1325.ControlChannel.
func (g *GPIOControl) RunInMode(mode ssd1325.DisplayMode, f func() error) error {
	g.log.Debug("run in mode", zap.Stringer("mode", mode))
	switch mode {
	case ssd1325.Idle:
	case ssd1325.Reset:
		return g.pulseReset(f)
	case ssd1325.Command:
		if err := g.updateDC(gpio.Low); err != nil {
			return errors.Wrapf(err, "bus: failed to enter %s mode", mode)
		}
	case ssd1325.Data:
		if err := g.updateDC(gpio.High); err != nil {
			return errors.Wrapf(err, "bus: failed to enter %s mode", mode)
		}
	default:
		return errors.Errorf("bus: unknown display mode %s", mode)
	}
	return f()
}

func (g *GPIOControl) String() string {
	if g.rst == nil {
		return fmt.Sprintf("GPIOControl{dc: %s}", g.dc)
	}
	return fmt.Sprintf("GPIOControl{dc: %s, rst: %s}", g.dc, g.rst)
}

// pulseReset holds RES low while f runs. RES is released on every path out.
func (g *GPIOControl) pulseReset(f func() error) (err error) {
	if g.rst == nil {
		return f()
	}
	if err := g.rst.Out(gpio.Low); err != nil {
		return errors.Wrap(err, "bus: failed to assert RST")
	}
	defer func() {
		if rerr := g.rst.Out(gpio.High); rerr != nil && err == nil {
			err = errors.Wrap(rerr, "bus: failed to release RST")
		}
	}()
	return f()
}

func (g *GPIOControl) updateDC(l gpio.Level) error {
	if g.dcKnown && g.dcLevel == l {
		return nil
	}
	if err := g.dc.Out(l); err != nil {
		g.dcKnown = false
		return err
	}
	g.dcLevel, g.dcKnown = l, true
	return nil
}
