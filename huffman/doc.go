// Package huffman implements Huffman coding of 8-bit sample sequences and the
// binary file format used to store the result.
//
// The frequency table is the only thing the encoder and decoder share. The tree
// is never stored; both sides rebuild it from the table, so tree construction
// must be fully deterministic. [BuildTree] orders nodes by weight and breaks
// ties first-in first-out: leaves are queued in ascending symbol order, and each
// merged node is queued after everything already there. Two calls with the same
// table always produce the same tree.
//
// Codes are packed most-significant bit first, and the final byte is padded with
// zero bits. The number of padding bits (0-7) is returned alongside the packed
// buffer and must be handed back to [Decode].
//
// File layout, all integers little-endian:
//
//	[uint32 height][uint32 width][uint32 padding]
//	[uint8 version][uint32 n]{[uint8 symbol][uint32 count]}*n
//	[packed bytes until EOF]
//
// Frequency table entries are written in ascending symbol order and only for
// symbols that occur at least once.
package huffman
