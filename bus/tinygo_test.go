package bus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

type fakeTinySPI struct {
	err error
	w   []byte
}

func (f *fakeTinySPI) Tx(w, r []byte) error {
	if f.err != nil {
		return f.err
	}
	f.w = append(f.w, w...)
	return nil
}

func (f *fakeTinySPI) Transfer(b byte) (byte, error) {
	return 0, f.Tx([]byte{b}, nil)
}

func TestTinySPI(t *testing.T) {
	b := &fakeTinySPI{}
	s := NewTinySPI(b)

	n, err := s.Write([]byte{0xAF, 0xA4})
	if err != nil || n != 2 {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if diff := cmp.Diff(b.w, []byte{0xAF, 0xA4}); diff != "" {
		t.Errorf("bus bytes difference (-got +want):\n%s", diff)
	}

	if n, err := s.Write(nil); n != 0 || err != nil {
		t.Errorf("Write(nil) = %d, %v", n, err)
	}

	b.err = errors.New("tinygo: bus error")
	if n, err := s.Write([]byte{0xAE}); err == nil || n != 0 {
		t.Errorf("Write() on a failing bus = %d, %v", n, err)
	}
}
