// Package mmap maps dataset files read-only into memory.
//
// A binary dataset is a flat array of little-endian uint64 values. Mapping it lets
// a search read exactly the pages its probes touch instead of decoding the whole
// file up front, which matters once datasets no longer fit comfortably in RAM.
//
//	m, err := mmap.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//	_ = m.Advise(mmap.AccessRandom)
//	data := m.Bytes()
//
// The byte slice is only valid until Close.
package mmap
