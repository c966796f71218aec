package dataset

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/parsearch/blobstore"
)

// ErrUnsorted reports the first position where a dataset decreases.
type ErrUnsorted struct {
	Index int
	Prev  uint64
	Value uint64
}

func (e *ErrUnsorted) Error() string {
	return fmt.Sprintf("dataset: not sorted at index %d: %d follows %d", e.Index, e.Value, e.Prev)
}

// Validate checks that values are in ascending order. Equal neighbours are allowed.
func Validate(values []uint64) error {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return &ErrUnsorted{Index: i, Prev: values[i-1], Value: values[i]}
		}
	}
	return nil
}

// Iota returns start, start+1, ..., start+n-1.
func Iota(start uint64, n int) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		values[i] = start + uint64(i)
	}
	return values
}

// Encode serialises values in the format and compression implied by name.
func Encode(name string, values []uint64) ([]byte, error) {
	f, c := Detect(name)

	var buf bytes.Buffer
	if err := Write(&buf, values, f, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save validates values and stores them in store under name.
func Save(ctx context.Context, store blobstore.BlobStore, name string, values []uint64) error {
	if err := Validate(values); err != nil {
		return err
	}

	data, err := Encode(name, values)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return store.Put(ctx, name, data)
}

// Load reads the dataset name from store and validates it.
func Load(ctx context.Context, store blobstore.BlobStore, name string) ([]uint64, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer blob.Close()

	values, err := decodeBlob(ctx, blob, name)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if err := Validate(values); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return values, nil
}

func decodeBlob(ctx context.Context, blob blobstore.Blob, name string) ([]uint64, error) {
	f, c := Detect(name)

	if m, ok := blob.(blobstore.Mappable); ok && f == Binary && c == None {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		return decodeBinary(data)
	}

	r, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Read(r, f, c)
}

func decodeBinary(data []byte) ([]uint64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(data)%8)
	}
	values := make([]uint64, len(data)/8)
	for i := range values {
		values[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	return values, nil
}
