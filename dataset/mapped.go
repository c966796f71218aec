package dataset

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/parsearch/internal/mmap"
)

// Mapped is an uncompressed binary dataset mapped into memory. It satisfies
// parsearch.Sequence[uint64] and decodes values on access.
type Mapped struct {
	m    *mmap.Mapping
	data []byte
}

// OpenMapped maps the binary dataset at path.
func OpenMapped(path string) (*Mapped, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	if m.Size()%8 != 0 {
		_ = m.Close()
		return nil, fmt.Errorf("%s: %w: %d trailing bytes", path, ErrTruncated, m.Size()%8)
	}
	if err := m.Advise(mmap.AccessRandom); err != nil {
		_ = m.Close()
		return nil, err
	}
	return &Mapped{m: m, data: m.Bytes()}, nil
}

// Len returns the number of values.
func (d *Mapped) Len() int {
	return len(d.data) / 8
}

// At returns the i-th value.
func (d *Mapped) At(i int) uint64 {
	return binary.LittleEndian.Uint64(d.data[i*8:])
}

// Close unmaps the file. The Mapped must not be used afterwards.
func (d *Mapped) Close() error {
	d.data = nil
	return d.m.Close()
}
