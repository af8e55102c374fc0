package buffer_test

import (
	"fmt"
	"io"
	"testing"
	"unsafe"

	"github.com/momentics/reusebuf/buffer"
)

func bytesStorage(b *buffer.Bytes) *byte {
	return unsafe.SliceData(b.Raw())
}

func TestBytesWriterSurface(t *testing.T) {
	b := buffer.NewBytes(64)
	id := bytesStorage(b)

	n, err := b.Write([]byte("hello"))
	if n != 5 || err != nil {
		t.Fatalf("Write = (%d, %v)", n, err)
	}
	if err := b.WriteByte(' '); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	n, err = b.WriteString("world")
	if n != 5 || err != nil {
		t.Fatalf("WriteString = (%d, %v)", n, err)
	}

	if b.String() != "hello world" {
		t.Errorf("String() = %q", b.String())
	}
	if b.Len() != 11 {
		t.Errorf("length = %d, want 11", b.Len())
	}
	if bytesStorage(b) != id {
		t.Error("writer surface reallocated within capacity")
	}
}

func TestBytesAsGenericWriter(t *testing.T) {
	b := buffer.NewBytes(32)
	var w io.Writer = b
	fmt.Fprintf(w, "seq=%d", 7)
	if b.String() != "seq=7" {
		t.Errorf("contents = %q", b.String())
	}
}

func TestBytesReset(t *testing.T) {
	b := buffer.NewBytes(16)
	b.WriteString("first")
	id := bytesStorage(b)

	b.SetLen(0)
	b.WriteString("second")
	if b.String() != "second" {
		t.Errorf("contents after refill = %q", b.String())
	}
	if bytesStorage(b) != id {
		t.Error("reset-and-refill reallocated")
	}
}

func TestAdoptBytes(t *testing.T) {
	region := make([]byte, 3, 24)
	copy(region, "abc")
	b := buffer.AdoptBytes(region)
	if b.Len() != 3 || b.Cap() != 24 {
		t.Errorf("adopted len=%d cap=%d", b.Len(), b.Cap())
	}
	b.WriteString("def")
	if b.String() != "abcdef" {
		t.Errorf("contents = %q", b.String())
	}
}

func BenchmarkBytesWrite(b *testing.B) {
	buf := buffer.NewBytes(4096)
	line := []byte("a moderately sized log line for the sink")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.SetLen(0)
		buf.Write(line)
	}
}
