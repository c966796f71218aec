package mmap

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync/atomic"
)

// Mapping is a whole file mapped read-only. Readers see the file contents until
// Close; afterwards every accessor reports ErrClosed.
type Mapping struct {
	region  []byte
	release func([]byte) error
	closed  atomic.Bool
}

// Open maps the file at path. An empty file yields an empty mapping without a
// system mapping behind it.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size, err := fileSize(f)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return &Mapping{}, nil
	}

	region, release, err := osMap(f, size)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &Mapping{region: region, release: release}, nil
}

func fileSize(f *os.File) (int, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if size := fi.Size(); size < 0 || size > math.MaxInt {
		return 0, fmt.Errorf("%w: %d bytes", ErrInvalidSize, size)
	}
	return int(fi.Size()), nil
}

func (m *Mapping) view() ([]byte, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	return m.region, nil
}

// Bytes returns the mapped region, or nil once closed. The slice must not be
// written to or kept past Close.
func (m *Mapping) Bytes() []byte {
	region, _ := m.view()
	return region
}

// Size is the file size at Open.
func (m *Mapping) Size() int {
	return len(m.region)
}

// Advise passes an access hint for the whole region to the kernel.
func (m *Mapping) Advise(pattern AccessPattern) error {
	region, err := m.view()
	if err != nil || len(region) == 0 {
		return err
	}
	return osAdvise(region, pattern)
}

// ReadAt copies from the region at off.
func (m *Mapping) ReadAt(p []byte, off int64) (int, error) {
	region, err := m.view()
	switch {
	case err != nil:
		return 0, err
	case off < 0:
		return 0, ErrInvalidOffset
	case off >= int64(len(region)):
		return 0, io.EOF
	}

	n := copy(p, region[off:])
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}

// Close releases the mapping. Only the first call has an effect.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) || m.release == nil {
		return nil
	}
	return m.release(m.region)
}
