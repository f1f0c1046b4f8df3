// Package wire holds the fixed-width primitives shared by the options
// decoder and encoder. Integers use host byte order; producer and consumer
// are expected to agree on it out of band.
package wire

import (
	"encoding/binary"
	"math"
)

// ByteOrder is the order every multi-byte field is read and written in.
var ByteOrder = binary.NativeEndian

// Fixed widths of the primitives used by the layout.
const (
	SizeU8  = 1
	SizeU32 = 4
	SizeS32 = 4
)

// Cursor walks a buffer front to back. It never reads past len(buf);
// a short read reports ok == false and leaves the cursor where it was.
type Cursor struct {
	buf []byte
	off int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Reset points the cursor at the start of buf.
func (c *Cursor) Reset(buf []byte) {
	c.buf = buf
	c.off = 0
}

func (c *Cursor) Offset() int    { return c.off }
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// U32 reads an unsigned 32-bit integer. The bytes are assembled one at a
// time so the alignment of the backing array is irrelevant.
func (c *Cursor) U32() (uint32, bool) {
	if c.Remaining() < SizeU32 {
		return 0, false
	}
	v := ByteOrder.Uint32(c.buf[c.off:])
	c.off += SizeU32
	return v, true
}

func (c *Cursor) S32() (int32, bool) {
	v, ok := c.U32()
	return int32(v), ok
}

func (c *Cursor) U8() (byte, bool) {
	if c.Remaining() < SizeU8 {
		return 0, false
	}
	v := c.buf[c.off]
	c.off++
	return v, true
}

// Bytes returns the next n bytes without copying. The slice aliases the
// cursor's buffer and is capped so appends cannot clobber what follows.
func (c *Cursor) Bytes(n uint32) ([]byte, bool) {
	if uint64(n) > uint64(c.Remaining()) {
		return nil, false
	}
	end := c.off + int(n)
	b := c.buf[c.off:end:end]
	c.off = end
	return b, true
}

// AppendU32 appends v in host byte order.
func AppendU32(dst []byte, v uint32) []byte {
	return ByteOrder.AppendUint32(dst, v)
}

func AppendS32(dst []byte, v int32) []byte {
	return ByteOrder.AppendUint32(dst, uint32(v))
}

// AppendBytes appends a u32 length prefix followed by b.
func AppendBytes(dst []byte, b []byte) ([]byte, bool) {
	if uint64(len(b)) > math.MaxUint32 {
		return dst, false
	}
	dst = AppendU32(dst, uint32(len(b)))
	return append(dst, b...), true
}

// FitsU32 reports whether n can be written as a u32 count.
func FitsU32(n int) bool {
	return n >= 0 && uint64(n) <= math.MaxUint32
}
