package huffman

import (
	"bytes"
	"fmt"

	"github.com/dargueta/pixpack"
	"github.com/icza/bitio"
)

// Encode Huffman-codes `samples` using a tree built from their own frequencies.
// It returns the packed bits, the frequency table needed to decode them, and the
// number of zero bits appended to fill the last byte.
//
// An empty input has no tree. It encodes to an empty buffer with an empty
// frequency table and no padding.
func Encode(samples []byte) ([]byte, FrequencyTable, uint8, error) {
	frequencies := CountFrequencies(samples)
	if len(samples) == 0 {
		return []byte{}, frequencies, 0, nil
	}

	tree, err := BuildTree(&frequencies)
	if err != nil {
		return nil, frequencies, 0, err
	}
	codes := BuildCodes(tree)

	totalBits := codes.EncodedBits(&frequencies)
	buffer := bytes.Buffer{}
	buffer.Grow(int((totalBits + 7) / 8))

	writer := bitio.NewWriter(&buffer)
	for _, sample := range samples {
		for _, bit := range []byte(codes[sample]) {
			err = writer.WriteBool(bit == '1')
			if err != nil {
				return nil, frequencies, 0, pixpack.ErrIOFailed.Wrap(err)
			}
		}
	}

	padding, err := writer.Align()
	if err != nil {
		return nil, frequencies, 0, pixpack.ErrIOFailed.Wrap(err)
	}
	err = writer.Close()
	if err != nil {
		return nil, frequencies, 0, pixpack.ErrIOFailed.Wrap(err)
	}
	return buffer.Bytes(), frequencies, padding, nil
}

// Decode reverses [Encode]. The tree is rebuilt from `frequencies`, the last
// `padding` bits of `packed` are ignored, and every other bit is used to walk
// the tree from the root to a leaf, emitting one sample per leaf.
//
// A stream that can't have come from [Encode] with these frequencies returns
// [pixpack.ErrMalformedStream].
func Decode(packed []byte, frequencies FrequencyTable, padding uint8) ([]byte, error) {
	if padding > 7 {
		return nil, pixpack.ErrMalformedStream.WithMessage(
			fmt.Sprintf("padding must be in [0, 7], got %d", padding))
	}

	totalBits := int64(len(packed))*8 - int64(padding)
	if totalBits < 0 {
		return nil, pixpack.ErrMalformedStream.WithMessage(
			fmt.Sprintf("%d bits of padding but the stream is empty", padding))
	}

	expectedLength := frequencies.Total()
	if expectedLength == 0 {
		if totalBits != 0 {
			return nil, pixpack.ErrMalformedStream.WithMessage(
				fmt.Sprintf("frequency table is empty but stream has %d bits", totalBits))
		}
		return []byte{}, nil
	}

	// Every sample takes at least one bit.
	if expectedLength > uint64(totalBits) {
		return nil, pixpack.ErrMalformedStream.WithMessage(
			fmt.Sprintf(
				"frequency table expects %d samples but stream has only %d bits",
				expectedLength,
				totalBits,
			))
	}

	tree, err := BuildTree(&frequencies)
	if err != nil {
		return nil, err
	}

	output := make([]byte, 0, expectedLength)
	reader := bitio.NewReader(bytes.NewReader(packed))
	current := tree.root

	for i := int64(0); i < totalBits; i++ {
		bit, err := reader.ReadBool()
		if err != nil {
			return nil, pixpack.ErrMalformedStream.Wrap(err)
		}

		next := tree.child(current, bit)
		if next == noChild {
			return nil, pixpack.ErrMalformedStream.WithMessage(
				fmt.Sprintf("bit %d selects a branch that doesn't exist", i))
		}

		if !tree.nodes[next].leaf {
			current = next
			continue
		}

		if uint64(len(output)) == expectedLength {
			return nil, pixpack.ErrMalformedStream.WithMessage(
				fmt.Sprintf("stream decodes to more than %d samples", expectedLength))
		}
		output = append(output, tree.nodes[next].symbol)
		current = tree.root
	}

	if current != tree.root {
		return nil, pixpack.ErrMalformedStream.WithMessage(
			"stream ends in the middle of a code")
	}
	if uint64(len(output)) != expectedLength {
		return nil, pixpack.ErrMalformedStream.WithMessage(
			fmt.Sprintf(
				"stream decodes to %d samples, frequency table expects %d",
				len(output),
				expectedLength,
			))
	}
	return output, nil
}
