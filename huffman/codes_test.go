package huffman_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/pixpack/huffman"
	ptesting "github.com/dargueta/pixpack/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codesTestData struct {
	Name    string
	Samples []byte
}

func TestBuildCodes__PrefixFree(t *testing.T) {
	skewed := append(bytes.Repeat([]byte{0}, 1000), bytes.Repeat([]byte{1}, 100)...)
	skewed = append(skewed, bytes.Repeat([]byte{2}, 10)...)
	skewed = append(skewed, 3)

	// Fibonacci weights give the deepest possible tree for their symbol count.
	fibonacci := []byte{}
	a, b := 1, 1
	for symbol := 0; symbol < 16; symbol++ {
		fibonacci = append(fibonacci, bytes.Repeat([]byte{byte(symbol)}, a)...)
		a, b = b, a+b
	}

	testData := []codesTestData{
		{"two symbols", []byte{0, 1}},
		{"random", ptesting.RandomSamples(10000, t)},
		{"skewed", skewed},
		{"fibonacci", fibonacci},
		{"striped", ptesting.StripedImage(ptesting.StripedShape, 3)},
	}

	for _, data := range testData {
		t.Run(
			data.Name,
			func(t *testing.T) {
				table := huffman.CountFrequencies(data.Samples)
				tree, err := huffman.BuildTree(&table)
				require.NoError(t, err)

				codes := huffman.BuildCodes(tree)
				assert.True(t, codes.IsPrefixFree(), "codes aren't prefix-free")

				for _, symbol := range table.Symbols() {
					_, ok := codes.Lookup(symbol)
					assert.Truef(t, ok, "symbol %d has no code", symbol)
				}
			},
		)
	}
}

func TestBuildCodes__ShorterForFrequentSymbols(t *testing.T) {
	samples := append(bytes.Repeat([]byte{7}, 500), 1, 2, 3, 4)
	table := huffman.CountFrequencies(samples)
	tree, err := huffman.BuildTree(&table)
	require.NoError(t, err)

	codes := huffman.BuildCodes(tree)
	for _, symbol := range []byte{1, 2, 3, 4} {
		assert.Less(t, len(codes[7]), len(codes[symbol]))
	}
}

func TestIsPrefixFree__Detects(t *testing.T) {
	codes := huffman.CodeTable{}
	codes[0] = "0"
	codes[1] = "01"
	assert.False(t, codes.IsPrefixFree())
}

func TestEncodedBits(t *testing.T) {
	table := huffman.CountFrequencies([]byte{0, 1})
	tree, err := huffman.BuildTree(&table)
	require.NoError(t, err)

	codes := huffman.BuildCodes(tree)
	assert.EqualValues(t, 2, codes.EncodedBits(&table))
}
