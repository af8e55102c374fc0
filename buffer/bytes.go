// File: buffer/bytes.go
// Package buffer
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte specialization with the standard writer surfaces.

package buffer

import "io"

// Bytes is a Reusable[byte] with io.Writer, io.ByteWriter and
// io.StringWriter on top, so it plugs into fmt, encoders and any other
// sink-shaped API. Growth and reset semantics are those of Reusable.
type Bytes struct {
	Reusable[byte]
}

// NewBytes allocates an empty byte buffer of exactly capacity bytes.
func NewBytes(capacity int) *Bytes {
	if capacity <= 0 {
		return &Bytes{}
	}
	return &Bytes{Reusable[byte]{s: make([]byte, 0, capacity)}}
}

// AdoptBytes takes ownership of region. Same contract as Adopt.
func AdoptBytes(region []byte) *Bytes {
	return &Bytes{Reusable[byte]{s: region}}
}

// Write appends p. The error is always nil; it exists for io.Writer.
func (b *Bytes) Write(p []byte) (int, error) {
	b.Append(p...)
	return len(p), nil
}

// WriteByte appends a single byte.
func (b *Bytes) WriteByte(c byte) error {
	b.Append(c)
	return nil
}

// WriteString appends s without an intermediate []byte conversion.
func (b *Bytes) WriteString(s string) (int, error) {
	b.permitOverwrite()
	b.s = append(b.s, s...)
	return len(s), nil
}

// String copies the live region into a string.
func (b *Bytes) String() string {
	return string(b.s)
}

var (
	_ io.Writer       = (*Bytes)(nil)
	_ io.ByteWriter   = (*Bytes)(nil)
	_ io.StringWriter = (*Bytes)(nil)
)
