package metrics

import (
	"math"

	"github.com/dargueta/pixpack/huffman"
)

// Class is a rough description of an image's content, used to explain why one
// codec beats the other on it.
type Class string

const (
	// ClassBinary images use at most two distinct values.
	ClassBinary Class = "Binary"
	// ClassUniform images are mostly large flat regions.
	ClassUniform Class = "Uniform"
	// ClassGrayscale covers everything else, e.g. photographs.
	ClassGrayscale Class = "Grayscale"
)

const (
	uniformEntropyLimit     = 5.0
	uniformRunDensityLimit  = 0.15
	binaryMaxDistinctValues = 2
)

// Entropy returns the Shannon entropy of the samples in bits per sample.
func Entropy(samples []byte) float64 {
	if len(samples) == 0 {
		return 0
	}

	histogram := huffman.CountFrequencies(samples)
	entropy := 0.0
	total := float64(len(samples))
	for _, count := range histogram {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// RunDensity returns the number of places where a sample differs from the one
// before it, divided by the number of samples. Long runs give a value near 0.
func RunDensity(samples []byte) float64 {
	if len(samples) == 0 {
		return 0
	}
	changes := 0
	for i := 1; i < len(samples); i++ {
		if samples[i] != samples[i-1] {
			changes++
		}
	}
	return float64(changes) / float64(len(samples))
}

// Classify sorts an image into a [Class] from its distinct values, entropy and
// run density.
func Classify(samples []byte) Class {
	frequencies := huffman.CountFrequencies(samples)
	distinct := frequencies.Distinct()
	if distinct <= binaryMaxDistinctValues {
		return ClassBinary
	}

	if Entropy(samples) < uniformEntropyLimit && RunDensity(samples) < uniformRunDensityLimit {
		return ClassUniform
	}
	return ClassGrayscale
}
