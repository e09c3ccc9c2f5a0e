// Package vecfile reads and writes conformance vector files: sets of
// input blocks paired with the output an accurate transform produces.
//
// A vector file is little-endian:
//
//	magic    [4]byte "DCTV"
//	version  uint16  (1)
//	kind     uint8   (1 inverse, 2 forward)
//	reserved uint8
//	count    uint32
//	records  count × record
//
// An inverse record holds 64 int32 coefficients followed by 64 expected
// samples. A forward record holds 64 samples followed by 64 expected
// float32 coefficients. The whole stream may be wrapped in zlib or zstd.
package vecfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/mrjoshuak/go-dct/dct"
)

var (
	// ErrBadMagic is returned when the input starts with neither the
	// vector file magic nor a zlib or zstd header.
	ErrBadMagic = errors.New("vecfile: bad magic number")

	// ErrUnsupportedVersion is returned for a header version other than Version.
	ErrUnsupportedVersion = errors.New("vecfile: unsupported version")

	// ErrUnknownKind is returned for a record kind other than KindInverse
	// or KindForward.
	ErrUnknownKind = errors.New("vecfile: unknown record kind")

	// ErrTruncated is returned when the input ends before the header or
	// the last record.
	ErrTruncated = errors.New("vecfile: truncated data")

	// ErrUnknownCompression is returned for a compression name or value
	// this package does not implement.
	ErrUnknownCompression = errors.New("vecfile: unknown compression")

	// ErrTooLarge is returned when a file holds more than MaxRecords
	// records, or decompresses to more than such a file would take.
	ErrTooLarge = errors.New("vecfile: file too large")
)

var magic = [4]byte{'D', 'C', 'T', 'V'}

// Version is the only format version this package reads and writes.
const Version = 1

const (
	headerSize        = 12
	inverseRecordSize = dct.BlockSize*4 + dct.BlockSize
	forwardRecordSize = dct.BlockSize + dct.BlockSize*4

	// MaxRecords bounds the record count accepted by Decode.
	MaxRecords = 1 << 20
)

// Kind identifies the transform direction a file exercises.
type Kind uint8

const (
	// KindInverse records pair coefficients with expected samples.
	KindInverse Kind = 1
	// KindForward records pair samples with expected coefficients.
	KindForward Kind = 2
)

// String returns the kind name, "inverse" or "forward".
func (k Kind) String() string {
	switch k {
	case KindInverse:
		return "inverse"
	case KindForward:
		return "forward"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) recordSize() int {
	if k == KindForward {
		return forwardRecordSize
	}
	return inverseRecordSize
}

// InverseRecord pairs a coefficient block with its expected samples.
type InverseRecord struct {
	Coefficients dct.Coefficients
	Samples      dct.Samples
}

// ForwardRecord pairs a sample block with its expected coefficients.
type ForwardRecord struct {
	Samples      dct.Samples
	Coefficients dct.FloatCoefficients
}

// File is a decoded vector file. Only the slice matching Kind is used.
type File struct {
	Kind    Kind
	Inverse []InverseRecord
	Forward []ForwardRecord
}

// Len returns the number of records of the file's kind.
func (f *File) Len() int {
	if f.Kind == KindForward {
		return len(f.Forward)
	}
	return len(f.Inverse)
}

// Encode writes f to w using compression c.
func Encode(w io.Writer, f *File, c Compression) error {
	if f.Kind != KindInverse && f.Kind != KindForward {
		return fmt.Errorf("%w: %v", ErrUnknownKind, f.Kind)
	}
	n := f.Len()
	if n > MaxRecords {
		return fmt.Errorf("%w: %d records", ErrTooLarge, n)
	}

	out := newWriter(headerSize + n*f.Kind.recordSize())
	out.WriteBytes(magic[:])
	out.WriteUint16(Version)
	out.WriteUint8(uint8(f.Kind))
	out.WriteUint8(0)
	out.WriteUint32(uint32(n))

	switch f.Kind {
	case KindInverse:
		for i := range f.Inverse {
			rec := &f.Inverse[i]
			for _, v := range rec.Coefficients {
				out.WriteInt32(v)
			}
			out.WriteBytes(rec.Samples[:])
		}
	case KindForward:
		for i := range f.Forward {
			rec := &f.Forward[i]
			out.WriteBytes(rec.Samples[:])
			for _, v := range rec.Coefficients {
				out.WriteFloat32(v)
			}
		}
	}
	return compress(w, out.Bytes(), c)
}

// Decode reads a vector file, detecting its compression.
func Decode(r io.Reader) (*File, error) {
	data, _, err := decompress(r, headerSize+MaxRecords*inverseRecordSize)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*File, error) {
	in := newReader(data)
	var m [4]byte
	if err := in.ReadBytesInto(m[:]); err != nil {
		return nil, err
	}
	if m != magic {
		return nil, ErrBadMagic
	}
	version, err := in.ReadUint16()
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	k, err := in.ReadUint8()
	if err != nil {
		return nil, err
	}
	kind := Kind(k)
	if kind != KindInverse && kind != KindForward {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	if _, err := in.ReadUint8(); err != nil {
		return nil, err
	}
	count, err := in.ReadUint32()
	if err != nil {
		return nil, err
	}
	if count > MaxRecords {
		return nil, fmt.Errorf("%w: %d records", ErrTooLarge, count)
	}
	if in.Len() < int(count)*kind.recordSize() {
		return nil, fmt.Errorf("%w: %d records need %d bytes, have %d",
			ErrTruncated, count, int(count)*kind.recordSize(), in.Len())
	}

	f := &File{Kind: kind}
	switch kind {
	case KindInverse:
		f.Inverse = make([]InverseRecord, count)
		for i := range f.Inverse {
			rec := &f.Inverse[i]
			for j := range rec.Coefficients {
				if rec.Coefficients[j], err = in.ReadInt32(); err != nil {
					return nil, err
				}
			}
			if err := in.ReadBytesInto(rec.Samples[:]); err != nil {
				return nil, err
			}
		}
	case KindForward:
		f.Forward = make([]ForwardRecord, count)
		for i := range f.Forward {
			rec := &f.Forward[i]
			if err := in.ReadBytesInto(rec.Samples[:]); err != nil {
				return nil, err
			}
			for j := range rec.Coefficients {
				if rec.Coefficients[j], err = in.ReadFloat32(); err != nil {
					return nil, err
				}
			}
		}
	}
	return f, nil
}
