package vecfile

import (
	"encoding/binary"
	"math"
)

// byteOrder is the byte order of every multi-byte field in a vector file.
var byteOrder = binary.LittleEndian

// reader provides bounds-checked little-endian reads from a byte slice.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// Len returns the number of unread bytes.
func (r *reader) Len() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

func (r *reader) ReadBytesInto(dst []byte) error {
	n := len(dst)
	if r.pos+n > len(r.data) {
		return ErrTruncated
	}
	copy(dst, r.data[r.pos:r.pos+n])
	r.pos += n
	return nil
}

func (r *reader) ReadUint8() (uint8, error) {
	if r.pos >= len(r.data) {
		return 0, ErrTruncated
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) ReadUint16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, ErrTruncated
	}
	v := byteOrder.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) ReadUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, ErrTruncated
	}
	v := byteOrder.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// writer appends little-endian values to a growing buffer.
type writer struct {
	buf []byte
}

func newWriter(capacity int) *writer {
	return &writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the written data.
func (w *writer) Bytes() []byte {
	return w.buf
}

func (w *writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) WriteUint16(v uint16) {
	w.buf = byteOrder.AppendUint16(w.buf, v)
}

func (w *writer) WriteUint32(v uint32) {
	w.buf = byteOrder.AppendUint32(w.buf, v)
}

func (w *writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

func (w *writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}
