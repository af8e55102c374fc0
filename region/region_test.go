package region_test

import (
	"errors"
	"testing"

	"github.com/momentics/reusebuf/api"
	"github.com/momentics/reusebuf/region"
)

func TestAllocSlab(t *testing.T) {
	s, err := region.AllocSlab(4096)
	if err != nil {
		t.Fatalf("AllocSlab: %v", err)
	}
	defer s.Release()

	if s.Size() != 4096 {
		t.Errorf("slab size = %d, want 4096", s.Size())
	}
	if len(s.Bytes()) != 4096 {
		t.Errorf("Bytes() length = %d", len(s.Bytes()))
	}
}

func TestAllocSlabNegative(t *testing.T) {
	if _, err := region.AllocSlab(-1); !errors.Is(err, api.ErrSlabSize) {
		t.Errorf("AllocSlab(-1) error = %v, want ErrSlabSize", err)
	}
}

func TestAllocSlabZero(t *testing.T) {
	s, err := region.AllocSlab(0)
	if err != nil {
		t.Fatalf("AllocSlab(0): %v", err)
	}
	if s.Size() != 0 {
		t.Errorf("empty slab size = %d", s.Size())
	}
	if err := s.Release(); err != nil {
		t.Errorf("Release: %v", err)
	}
}

func TestAdoptAndHints(t *testing.T) {
	s, err := region.AllocSlab(256)
	if err != nil {
		t.Fatalf("AllocSlab: %v", err)
	}
	defer s.Release()

	b := s.Adopt()
	if b.Len() != 0 || b.Cap() != 256 {
		t.Fatalf("adopted buffer len=%d cap=%d", b.Len(), b.Cap())
	}

	b.WriteString("slab-backed")
	b.SetLen(0)
	b.WriteString("refill")
	if got := b.String(); got != "refill" {
		t.Errorf("contents = %q", got)
	}
	// one hint per append/shrink: write, reset, write
	if s.OverwriteHints() != 3 {
		t.Errorf("overwrite hints = %d, want 3", s.OverwriteHints())
	}
}

func TestDoubleRelease(t *testing.T) {
	s, err := region.AllocSlab(64)
	if err != nil {
		t.Fatalf("AllocSlab: %v", err)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("first Release: %v", err)
	}
	if err := s.Release(); !errors.Is(err, api.ErrSlabReleased) {
		t.Errorf("second Release error = %v, want ErrSlabReleased", err)
	}
}

func TestUseAfterReleasePanics(t *testing.T) {
	s, err := region.AllocSlab(64)
	if err != nil {
		t.Fatalf("AllocSlab: %v", err)
	}
	s.Release()
	defer func() {
		if recover() == nil {
			t.Error("Bytes() on released slab did not panic")
		}
	}()
	s.Bytes()
}
