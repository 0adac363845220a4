package huffman_test

import (
	"testing"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/huffman"
	ptesting "github.com/dargueta/pixpack/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree__Empty(t *testing.T) {
	table := huffman.FrequencyTable{}
	tree, err := huffman.BuildTree(&table)
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, pixpack.ErrEmptyInputUnsupported)
}

func TestBuildTree__Weight(t *testing.T) {
	table := huffman.CountFrequencies([]byte{1, 2, 3, 3, 9, 9, 9})
	tree, err := huffman.BuildTree(&table)
	require.NoError(t, err)
	assert.EqualValues(t, 7, tree.Weight())
	assert.Equal(t, 4, tree.NumLeaves())
}

func TestBuildTree__SingleSymbol(t *testing.T) {
	table := huffman.FrequencyTable{}
	table[42] = 1000
	tree, err := huffman.BuildTree(&table)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.NumLeaves())

	codes := huffman.BuildCodes(tree)
	code, ok := codes.Lookup(42)
	assert.True(t, ok)
	assert.EqualValues(t, "0", code)
}

// Equal weights must pop in arrival order: leaves by ascending symbol, then
// merged nodes after everything already queued.
func TestBuildTree__TieBreakIsFIFO(t *testing.T) {
	table := huffman.FrequencyTable{}
	table[1] = 1
	table[2] = 1
	table[3] = 2

	tree, err := huffman.BuildTree(&table)
	require.NoError(t, err)
	codes := huffman.BuildCodes(tree)

	// 1 and 2 merge into a node of weight 2, which arrives after leaf 3 and so
	// becomes the right child of the root.
	assert.EqualValues(t, "0", codes[3])
	assert.EqualValues(t, "10", codes[1])
	assert.EqualValues(t, "11", codes[2])
}

func TestBuildTree__Deterministic(t *testing.T) {
	samples := ptesting.RandomSamples(4096, t)
	table := huffman.CountFrequencies(samples)

	first, err := huffman.BuildTree(&table)
	require.NoError(t, err)
	second, err := huffman.BuildTree(&table)
	require.NoError(t, err)

	assert.Equal(t, huffman.BuildCodes(first), huffman.BuildCodes(second))
}
