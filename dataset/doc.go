// Package dataset reads and writes sorted uint64 datasets.
//
// Two encodings exist:
//
//   - text: one decimal value per line
//   - binary: a flat array of little-endian uint64 values
//
// The encoding and compression follow from the blob name. A trailing ".zst" or
// ".lz4" selects zstd or lz4 frame compression; the remaining name selects binary
// for ".bin" and text for anything else.
//
//	values := dataset.Iota(0, 1<<20)
//	err := dataset.Save(ctx, store, "iota.bin.zst", values)
//	loaded, err := dataset.Load(ctx, store, "iota.bin.zst")
//
// Uncompressed binary files can be memory-mapped and searched in place:
//
//	m, err := dataset.OpenMapped("iota.bin")
//	defer m.Close()
//	res, err := searcher.Search(ctx, m, 4242)
package dataset
