// Package metrics compares original and decoded sample streams and the sizes
// of their encoded forms.
package metrics

import (
	"bytes"
)

// CompressionRatio returns original/compressed. A compressed size of 0 gives 0
// rather than infinity.
func CompressionRatio(originalSize, compressedSize int64) float64 {
	if compressedSize == 0 {
		return 0
	}
	return float64(originalSize) / float64(compressedSize)
}

// PercentSaved returns how much smaller the compressed data is, as a percentage
// of the original. It's negative if compression made things bigger, and 0 if
// the original is empty.
func PercentSaved(originalSize, compressedSize int64) float64 {
	if originalSize == 0 {
		return 0
	}
	return (1 - float64(compressedSize)/float64(originalSize)) * 100
}

// Lossless reports whether `decoded` is byte-for-byte identical to `original`.
func Lossless(original, decoded []byte) bool {
	return bytes.Equal(original, decoded)
}

// FirstMismatch returns the index of the first sample where the two sequences
// differ, or -1 if they're identical. If one is a prefix of the other, the
// index is the length of the shorter one.
func FirstMismatch(original, decoded []byte) int {
	shorter := len(original)
	if len(decoded) < shorter {
		shorter = len(decoded)
	}
	for i := 0; i < shorter; i++ {
		if original[i] != decoded[i] {
			return i
		}
	}
	if len(original) != len(decoded) {
		return shorter
	}
	return -1
}

// BestMethod names the codec with the higher compression ratio.
func BestMethod(rleRatio, huffmanRatio float64) string {
	switch {
	case rleRatio > huffmanRatio:
		return MethodRLE
	case huffmanRatio > rleRatio:
		return MethodHuffman
	default:
		return MethodTie
	}
}

const (
	MethodRLE     = "RLE"
	MethodHuffman = "Huffman"
	MethodTie     = "Tie"
)
