package dataset

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/parsearch/blobstore"
	"github.com/hupe1980/parsearch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		c    Compression
	}{
		{"values.txt", Text, None},
		{"values", Text, None},
		{"values.bin", Binary, None},
		{"values.bin.zst", Binary, Zstd},
		{"values.txt.lz4", Text, LZ4},
		{"dir/values.lz4", Text, LZ4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, c := Detect(tt.name)
			assert.Equal(t, tt.f, f)
			assert.Equal(t, tt.c, c)
		})
	}
}

func TestWriteRead(t *testing.T) {
	rng := testutil.NewRNG(99)
	values := rng.SortedUint64s(5000, 1<<20)

	for _, f := range []Format{Text, Binary} {
		for _, c := range []Compression{None, Zstd, LZ4} {
			t.Run(f.String()+"/"+c.String(), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, Write(&buf, values, f, c))

				got, err := Read(&buf, f, c)
				require.NoError(t, err)
				assert.Equal(t, values, got)
			})
		}
	}
}

func TestCompressionShrinksIota(t *testing.T) {
	values := Iota(0, 1<<14)

	plain, err := Encode("iota.bin", values)
	require.NoError(t, err)
	require.Len(t, plain, 8<<14)

	tests := []struct {
		name  string
		limit int
	}{
		{"iota.bin.zst", len(plain) / 2},
		// lz4 has no entropy stage, so incrementing keys only lose their zero bytes.
		{"iota.bin.lz4", len(plain)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := Encode(tt.name, values)
			require.NoError(t, err)
			assert.Less(t, len(packed), tt.limit)

			f, c := Detect(tt.name)
			got, err := Read(bytes.NewReader(packed), f, c)
			require.NoError(t, err)
			assert.Equal(t, values, got)
		})
	}
}

func TestReadText(t *testing.T) {
	got, err := Read(strings.NewReader("1\n\n 2 \n3"), Text, None)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, got)

	_, err = Read(strings.NewReader("1\nx\n"), Text, None)
	assert.ErrorContains(t, err, "line 2")
}

func TestReadBinary_Truncated(t *testing.T) {
	_, err := Read(bytes.NewReader(make([]byte, 12)), Binary, None)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate([]uint64{1, 1, 2}))

	err := Validate([]uint64{1, 5, 3})
	var unsorted *ErrUnsorted
	require.True(t, errors.As(err, &unsorted))
	assert.Equal(t, 2, unsorted.Index)
	assert.Equal(t, uint64(5), unsorted.Prev)
	assert.Equal(t, uint64(3), unsorted.Value)
}

func TestIota(t *testing.T) {
	assert.Equal(t, []uint64{10, 11, 12}, Iota(10, 3))
	assert.Empty(t, Iota(0, 0))
}

func TestSaveLoad(t *testing.T) {
	values := testutil.NewRNG(5).SortedUint64s(1000, 100)
	ctx := context.Background()

	stores := map[string]blobstore.BlobStore{
		"memory": blobstore.NewMemoryStore(),
		"local":  blobstore.NewLocalStore(t.TempDir()),
	}

	for storeName, store := range stores {
		for _, name := range []string{"a.txt", "a.bin", "a.bin.zst", "a.txt.lz4"} {
			t.Run(storeName+"/"+name, func(t *testing.T) {
				require.NoError(t, Save(ctx, store, name, values))

				got, err := Load(ctx, store, name)
				require.NoError(t, err)
				assert.Equal(t, values, got)
			})
		}
	}
}

func TestSave_Unsorted(t *testing.T) {
	store := blobstore.NewMemoryStore()

	err := Save(context.Background(), store, "bad.txt", []uint64{3, 2})
	var unsorted *ErrUnsorted
	assert.ErrorAs(t, err, &unsorted)

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoad_Unsorted(t *testing.T) {
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "bad.txt", []byte("3\n2\n")))

	_, err := Load(context.Background(), store, "bad.txt")
	var unsorted *ErrUnsorted
	assert.ErrorAs(t, err, &unsorted)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(context.Background(), blobstore.NewMemoryStore(), "missing.bin")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestOpenMapped(t *testing.T) {
	values := Iota(100, 64)
	data, err := Encode("x.bin", values)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "x.bin")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	m, err := OpenMapped(path)
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, 64, m.Len())
	assert.Equal(t, uint64(100), m.At(0))
	assert.Equal(t, uint64(163), m.At(63))
}

func TestOpenMapped_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 9), 0o600))

	_, err := OpenMapped(path)
	assert.ErrorIs(t, err, ErrTruncated)
}
