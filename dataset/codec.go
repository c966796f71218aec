package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrTruncated is returned when a binary dataset ends inside a value.
var ErrTruncated = errors.New("dataset: truncated binary value")

// Write encodes values to w in format f and compresses them with c.
func Write(w io.Writer, values []uint64, f Format, c Compression) error {
	cw, err := compress(w, c)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(cw)
	if f == Binary {
		err = writeBinary(bw, values)
	} else {
		err = writeText(bw, values)
	}
	if err == nil {
		err = bw.Flush()
	}
	if closeErr := cw.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Read decompresses r with c and decodes values in format f.
func Read(r io.Reader, f Format, c Compression) ([]uint64, error) {
	cr, err := decompress(r, c)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	br := bufio.NewReader(cr)
	if f == Binary {
		return readBinary(br)
	}
	return readText(br)
}

func writeBinary(w *bufio.Writer, values []uint64) error {
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], v)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w *bufio.Writer, values []uint64) error {
	var buf []byte
	for _, v := range values {
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func readBinary(r *bufio.Reader) ([]uint64, error) {
	var (
		values []uint64
		buf    [8]byte
	)
	for {
		n, err := io.ReadFull(r, buf[:])
		switch {
		case err == nil:
			values = append(values, binary.LittleEndian.Uint64(buf[:]))
		case errors.Is(err, io.EOF):
			return values, nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, fmt.Errorf("%w: %d trailing bytes after value %d", ErrTruncated, n, len(values))
		default:
			return nil, err
		}
	}
}

func readText(r *bufio.Reader) ([]uint64, error) {
	var values []uint64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

func decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
