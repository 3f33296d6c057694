package bmp

import "encoding/binary"

// reader walks a byte slice field by field. Callers check the length up front;
// reading past the end panics.
type reader struct {
	b   []byte
	off int
}

func (r *reader) bytes(n int) []byte {
	v := r.b[r.off : r.off+n]
	r.off += n
	return v
}

func (r *reader) u16() uint16 {
	return binary.LittleEndian.Uint16(r.bytes(2))
}

func (r *reader) u32() uint32 {
	return binary.LittleEndian.Uint32(r.bytes(4))
}

func (r *reader) i32() int32 {
	return int32(r.u32())
}
