package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dargueta/pixpack"
	"github.com/noxer/bytewriter"
)

// headerSize is the size in bytes of the shape and padding header.
const headerSize = 12

type fileHeader struct {
	Height  uint32
	Width   uint32
	Padding uint32
}

// EncodedSize returns the size in bytes of the file [Marshal] produces.
func EncodedSize(packed []byte, frequencies *FrequencyTable) int64 {
	return headerSize + frequencies.MarshaledSize() + int64(len(packed))
}

// Marshal serializes the output of [Encode] together with the image shape into
// the Huffman file format.
func Marshal(
	packed []byte, frequencies FrequencyTable, padding uint8, shape pixpack.Shape,
) ([]byte, error) {
	if padding > 7 {
		return nil, pixpack.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("padding must be in [0, 7], got %d", padding))
	}
	if padding > 0 && len(packed) == 0 {
		return nil, pixpack.ErrInvalidArgument.WithMessage("padding given for an empty stream")
	}
	err := shape.Validate(frequencies.Total())
	if err != nil {
		return nil, err
	}

	outputSlice := make([]byte, EncodedSize(packed, &frequencies))
	writer := bytewriter.New(outputSlice)

	header := fileHeader{
		Height:  shape.Height,
		Width:   shape.Width,
		Padding: uint32(padding),
	}
	err = binary.Write(writer, binary.LittleEndian, &header)
	if err != nil {
		return nil, pixpack.ErrIOFailed.Wrap(err)
	}

	err = MarshalFrequencies(writer, &frequencies)
	if err != nil {
		return nil, err
	}

	_, err = writer.Write(packed)
	if err != nil {
		return nil, pixpack.ErrIOFailed.Wrap(err)
	}
	return outputSlice, nil
}

// Unmarshal parses a Huffman file. It validates the header and frequency table
// but doesn't decode the packed bits; pass the results to [Decode] for that.
func Unmarshal(data []byte) ([]byte, FrequencyTable, uint8, pixpack.Shape, error) {
	if len(data) < headerSize {
		return nil, FrequencyTable{}, 0, pixpack.Shape{}, pixpack.ErrMalformedFile.WithMessage(
			fmt.Sprintf("header needs %d bytes, file has %d", headerSize, len(data)))
	}

	reader := bytes.NewReader(data)
	header := fileHeader{}
	err := binary.Read(reader, binary.LittleEndian, &header)
	if err != nil {
		return nil, FrequencyTable{}, 0, pixpack.Shape{}, pixpack.ErrMalformedFile.Wrap(err)
	}
	if header.Padding > 7 {
		return nil, FrequencyTable{}, 0, pixpack.Shape{}, pixpack.ErrMalformedFile.WithMessage(
			fmt.Sprintf("padding must be in [0, 7], got %d", header.Padding))
	}

	frequencies, err := UnmarshalFrequencies(reader)
	if err != nil {
		return nil, FrequencyTable{}, 0, pixpack.Shape{}, err
	}

	shape := pixpack.Shape{Height: header.Height, Width: header.Width}
	if frequencies.Total() != shape.Len() {
		return nil, FrequencyTable{}, 0, pixpack.Shape{}, pixpack.ErrMalformedFile.WithMessage(
			fmt.Sprintf(
				"frequency table describes %d samples but shape %s needs %d",
				frequencies.Total(),
				shape.String(),
				shape.Len(),
			))
	}

	packed := make([]byte, reader.Len())
	copy(packed, data[len(data)-reader.Len():])
	return packed, frequencies, uint8(header.Padding), shape, nil
}

// Write writes a Huffman file to `w`.
func Write(
	w io.Writer,
	packed []byte,
	frequencies FrequencyTable,
	padding uint8,
	shape pixpack.Shape,
) error {
	data, err := Marshal(packed, frequencies, padding, shape)
	if err != nil {
		return err
	}
	return pixpack.WriteAll(w, data)
}

// Read reads a Huffman file from `r` until EOF.
func Read(r io.Reader) ([]byte, FrequencyTable, uint8, pixpack.Shape, error) {
	data, err := pixpack.ReadAll(r)
	if err != nil {
		return nil, FrequencyTable{}, 0, pixpack.Shape{}, err
	}
	return Unmarshal(data)
}

// Save writes a Huffman file to `path`, replacing it if it already exists.
func Save(
	packed []byte,
	frequencies FrequencyTable,
	padding uint8,
	shape pixpack.Shape,
	path string,
) error {
	data, err := Marshal(packed, frequencies, padding, shape)
	if err != nil {
		return err
	}
	return pixpack.WriteFile(path, data)
}

// Load reads the Huffman file at `path`.
func Load(path string) ([]byte, FrequencyTable, uint8, pixpack.Shape, error) {
	data, err := pixpack.ReadFile(path)
	if err != nil {
		return nil, FrequencyTable{}, 0, pixpack.Shape{}, err
	}
	return Unmarshal(data)
}
