package mmap

import "errors"

// AccessPattern is the madvise hint passed by Mapping.Advise.
type AccessPattern int

const (
	// AccessDefault resets any earlier hint.
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be read front to back, as when decoding.
	AccessSequential
	// AccessRandom expects scattered reads, as when probing during a search.
	AccessRandom
	// AccessWillNeed asks the kernel to start reading the pages in.
	AccessWillNeed
)

var (
	ErrClosed        = errors.New("mmap: mapping is closed")
	ErrInvalidSize   = errors.New("mmap: file too large to map")
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
