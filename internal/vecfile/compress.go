package vecfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies the wrapper applied to an encoded vector file.
type Compression int

const (
	// None stores records without a wrapper.
	None Compression = iota
	// Zlib wraps the stream in zlib at best compression.
	Zlib
	// Zstd wraps the stream in a zstd frame.
	Zstd
)

var compressionNames = [...]string{None: "none", Zlib: "zlib", Zstd: "zstd"}

// String returns the name accepted by ParseCompression.
func (c Compression) String() string {
	if c < 0 || int(c) >= len(compressionNames) {
		return fmt.Sprintf("Compression(%d)", int(c))
	}
	return compressionNames[c]
}

// ParseCompression returns the compression with the given name.
func ParseCompression(name string) (Compression, error) {
	for i, n := range compressionNames {
		if strings.EqualFold(name, n) {
			return Compression(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// isZlibHeader reports whether b starts with a valid zlib CMF/FLG pair
// using the deflate method.
func isZlibHeader(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	cmf, flg := b[0], b[1]
	if cmf&0x0f != 8 {
		return false
	}
	return (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// detectCompression inspects the first bytes of a stream.
func detectCompression(head []byte) (Compression, error) {
	switch {
	case bytes.HasPrefix(head, magic[:]):
		return None, nil
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd, nil
	case isZlibHeader(head):
		return Zlib, nil
	case len(head) < len(magic):
		return 0, ErrTruncated
	}
	return 0, ErrBadMagic
}

// compress writes payload to w wrapped in c.
func compress(w io.Writer, payload []byte, c Compression) error {
	switch c {
	case None:
		_, err := w.Write(payload)
		return err
	case Zlib:
		zw, err := zlib.NewWriterLevel(w, zlib.BestCompression)
		if err != nil {
			return err
		}
		if _, err := zw.Write(payload); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return err
		}
		if _, err := zw.Write(payload); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	}
	return fmt.Errorf("%w: %v", ErrUnknownCompression, c)
}

// decompress reads the whole stream, undoing any compression wrapper, and
// returns at most limit bytes of payload.
func decompress(r io.Reader, limit int64) ([]byte, Compression, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(magic))
	if err != nil && err != io.EOF {
		return nil, None, err
	}
	c, err := detectCompression(head)
	if err != nil {
		return nil, None, err
	}

	var src io.Reader
	switch c {
	case None:
		src = br
	case Zlib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("vecfile: zlib: %w", err)
		}
		defer zr.Close()
		src = zr
	case Zstd:
		zr, err := zstd.NewReader(br, zstd.WithDecoderMaxMemory(uint64(limit)))
		if err != nil {
			return nil, c, fmt.Errorf("vecfile: zstd: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, c, fmt.Errorf("vecfile: %v: %w", c, err)
	}
	if int64(len(data)) > limit {
		return nil, c, ErrTooLarge
	}
	return data, c, nil
}
