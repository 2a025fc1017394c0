package bus

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/flavioheleno/ssd1325"
)

type lineEvent struct {
	line  string
	value bool
}

// fakePort is a serial port that accepts at most chunk bytes per Write and
// records handshake line changes.
type fakePort struct {
	chunk  int
	err    error
	w      []byte
	lines  []lineEvent
	dtr    bool
	rts    bool
	closed bool
}

func (f *fakePort) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := len(p)
	if f.chunk > 0 && n > f.chunk {
		n = f.chunk
	}
	f.w = append(f.w, p[:n]...)
	return n, nil
}

func (f *fakePort) Close() error {
	f.closed = true
	return nil
}

func (f *fakePort) SetDTR(v bool) error {
	f.dtr = v
	f.lines = append(f.lines, lineEvent{"DTR", v})
	return nil
}

func (f *fakePort) SetRTS(v bool) error {
	f.rts = v
	f.lines = append(f.lines, lineEvent{"RTS", v})
	return nil
}

type stuckPort struct{ fakePort }

func (*stuckPort) Write(p []byte) (int, error) { return 0, nil }

func TestSerialWrite(t *testing.T) {
	port := &fakePort{chunk: 7}
	s := NewSerial(port, "/dev/ttyUSB0")

	want := make([]byte, 100)
	for i := range want {
		want[i] = byte(i)
	}
	n, err := s.Write(want)
	if err != nil || n != len(want) {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if diff := cmp.Diff(port.w, want); diff != "" {
		t.Errorf("port bytes difference (-got +want):\n%s", diff)
	}
	if got := s.String(); got != "Serial{/dev/ttyUSB0}" {
		t.Errorf("String() = %q", got)
	}
	if err := s.Close(); err != nil || !port.closed {
		t.Errorf("Close() = %v, closed = %v", err, port.closed)
	}
}

func TestSerialWriteFailure(t *testing.T) {
	port := &fakePort{err: errors.New("serial: device unplugged")}
	s := NewSerial(port, "ttyACM0")
	if n, err := s.Write([]byte{1, 2, 3}); err == nil || n != 0 {
		t.Errorf("Write() = %d, %v, want failure", n, err)
	}

	s = NewSerial(&stuckPort{}, "ttyACM0")
	if _, err := s.Write([]byte{1}); err != io.ErrShortWrite {
		t.Errorf("Write() on a stuck port = %v, want io.ErrShortWrite", err)
	}
}

func TestModemControl(t *testing.T) {
	if _, err := NewModemControl(nil, nil); err == nil {
		t.Error("NewModemControl() accepted nil lines")
	}

	port := &fakePort{}
	m, err := NewModemControl(port, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, mode := range []ssd1325.DisplayMode{ssd1325.Reset, ssd1325.Command, ssd1325.Data, ssd1325.Idle} {
		if err := m.RunInMode(mode, func() error { return nil }); err != nil {
			t.Fatalf("RunInMode(%s) failed: %v", mode, err)
		}
	}

	want := []lineEvent{
		{"RTS", false},
		{"RTS", true},
		{"RTS", false},
		{"DTR", false},
		{"DTR", true},
	}
	if diff := cmp.Diff(port.lines, want, cmp.AllowUnexported(lineEvent{})); diff != "" {
		t.Errorf("line changes difference (-got +want):\n%s", diff)
	}
	if port.rts {
		t.Error("RTS left asserted")
	}

	if err := m.RunInMode(ssd1325.DisplayMode(42), func() error { return nil }); err == nil {
		t.Error("RunInMode() accepted an unknown mode")
	}
}

func TestModemControlResetReleasedOnError(t *testing.T) {
	port := &fakePort{}
	m, err := NewModemControl(port, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := errors.New("callback failed")
	if err := m.RunInMode(ssd1325.Reset, func() error {
		if !port.rts {
			t.Error("RTS not asserted during Reset")
		}
		return want
	}); err != want {
		t.Errorf("RunInMode() = %v, want %v", err, want)
	}
	if port.rts {
		t.Error("RTS left asserted after a failing callback")
	}
}

// TestDevOverSerial runs a Dev over a serial bridge.
func TestDevOverSerial(t *testing.T) {
	port := &fakePort{chunk: 64}
	s := NewSerial(port, "ttyUSB0")
	m, err := NewModemControl(s.Lines(), nil)
	if err != nil {
		t.Fatal(err)
	}

	dev := ssd1325.New(s, m, nil)
	var frame [ssd1325.FrameSize]byte
	frame[0] = 0x80
	if err := dev.BlitL1(&frame); err != nil {
		t.Fatal(err)
	}
	if !port.dtr {
		t.Error("DTR not asserted for the data phase")
	}
	want := append([]byte{0x15, 0x00, 0x3F, 0x75, 0x00, 0x3F}, frame[:]...)
	if diff := cmp.Diff(port.w, want); diff != "" {
		t.Errorf("port bytes difference (-got +want):\n%s", diff)
	}

	port.err = errors.New("serial: device unplugged")
	if err := dev.SetOn(true); !errors.Is(err, ssd1325.ErrWriteFailed) {
		t.Errorf("SetOn() = %v, want ErrWriteFailed", err)
	}
}
