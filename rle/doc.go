// Package rle implements run-length encoding of 8-bit sample sequences and the
// binary file format used to store them.
//
// A run is a (value, count) pair meaning `value` occurs `count` times in a row.
// Counts are stored in a single byte, so a run is capped at 255 samples. Longer
// stretches of the same value are split into consecutive runs, e.g. 300 sevens
// become (7, 255) (7, 45). This is the only case where two adjacent runs can
// have the same value.
//
// The file format is a shape header followed by the runs, all little-endian:
//
//	[uint32 height][uint32 width]{[uint8 value][uint8 count]}*
//
// There's no run count in the header. A reader consumes pairs until it hits the
// end of the file, so a file with an odd number of bytes after the header is
// malformed.
package rle
