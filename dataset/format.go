package dataset

import (
	"strings"
)

// Format is the encoding of values.
type Format int

const (
	// Text holds one decimal value per line.
	Text Format = iota
	// Binary holds little-endian uint64 values back to back.
	Binary
)

func (f Format) String() string {
	if f == Binary {
		return "binary"
	}
	return "text"
}

// Compression is the stream compression wrapped around the encoding.
type Compression int

const (
	// None stores the encoding as is.
	None Compression = iota
	// Zstd wraps the encoding in a zstd frame.
	Zstd
	// LZ4 wraps the encoding in an lz4 frame.
	LZ4
)

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

// Detect derives the format and compression from a file or blob name.
func Detect(name string) (Format, Compression) {
	c := None
	switch {
	case strings.HasSuffix(name, ".zst"):
		c, name = Zstd, strings.TrimSuffix(name, ".zst")
	case strings.HasSuffix(name, ".lz4"):
		c, name = LZ4, strings.TrimSuffix(name, ".lz4")
	}

	if strings.HasSuffix(name, ".bin") {
		return Binary, c
	}
	return Text, c
}
