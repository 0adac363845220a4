package rle

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dargueta/pixpack"
	"github.com/noxer/bytewriter"
)

// headerSize is the size of the shape header in bytes.
const headerSize = 8

type fileHeader struct {
	Height uint32
	Width  uint32
}

// EncodedSize returns the size in bytes of the file [Marshal] produces for
// `runs`.
func EncodedSize(runs []Run) int64 {
	return headerSize + 2*int64(len(runs))
}

// Marshal serializes runs and the shape of the image they encode into the RLE
// file format.
func Marshal(runs []Run, shape pixpack.Shape) ([]byte, error) {
	for i, run := range runs {
		if run.Count == 0 {
			return nil, pixpack.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("run %d has a count of 0", i))
		}
	}
	err := shape.Validate(TotalLength(runs))
	if err != nil {
		return nil, err
	}

	outputSlice := make([]byte, EncodedSize(runs))
	writer := bytewriter.New(outputSlice)

	header := fileHeader{Height: shape.Height, Width: shape.Width}
	err = binary.Write(writer, binary.LittleEndian, &header)
	if err != nil {
		return nil, pixpack.ErrIOFailed.Wrap(err)
	}

	// Run is two single-byte fields so it's written as (value, count) pairs with
	// no padding.
	err = binary.Write(writer, binary.LittleEndian, runs)
	if err != nil {
		return nil, pixpack.ErrIOFailed.Wrap(err)
	}
	return outputSlice, nil
}

// Unmarshal parses an RLE file, returning the runs and the image shape.
func Unmarshal(data []byte) ([]Run, pixpack.Shape, error) {
	if len(data) < headerSize {
		return nil, pixpack.Shape{}, pixpack.ErrMalformedFile.WithMessage(
			fmt.Sprintf("header needs %d bytes, file has %d", headerSize, len(data)))
	}

	body := data[headerSize:]
	if len(body)%2 != 0 {
		return nil, pixpack.Shape{}, pixpack.ErrMalformedFile.WithMessage(
			fmt.Sprintf("odd trailing byte after %d runs", len(body)/2))
	}

	reader := bytes.NewReader(data)
	header := fileHeader{}
	err := binary.Read(reader, binary.LittleEndian, &header)
	if err != nil {
		return nil, pixpack.Shape{}, pixpack.ErrMalformedFile.Wrap(err)
	}

	runs := make([]Run, len(body)/2)
	err = binary.Read(reader, binary.LittleEndian, runs)
	if err != nil {
		return nil, pixpack.Shape{}, pixpack.ErrMalformedFile.Wrap(err)
	}

	for i, run := range runs {
		if run.Count == 0 {
			return nil, pixpack.Shape{}, pixpack.ErrMalformedFile.WithMessage(
				fmt.Sprintf("run %d has a count of 0", i))
		}
	}

	shape := pixpack.Shape{Height: header.Height, Width: header.Width}
	total := TotalLength(runs)
	if total != shape.Len() {
		return nil, pixpack.Shape{}, pixpack.ErrMalformedFile.WithMessage(
			fmt.Sprintf(
				"runs decode to %d samples but shape %s needs %d",
				total,
				shape.String(),
				shape.Len(),
			))
	}
	return runs, shape, nil
}

// Write writes an RLE file to `w`.
func Write(w io.Writer, runs []Run, shape pixpack.Shape) error {
	data, err := Marshal(runs, shape)
	if err != nil {
		return err
	}
	return pixpack.WriteAll(w, data)
}

// Read reads an RLE file from `r` until EOF.
func Read(r io.Reader) ([]Run, pixpack.Shape, error) {
	data, err := pixpack.ReadAll(r)
	if err != nil {
		return nil, pixpack.Shape{}, err
	}
	return Unmarshal(data)
}

// Save writes an RLE file to `path`, replacing it if it already exists.
func Save(runs []Run, shape pixpack.Shape, path string) error {
	data, err := Marshal(runs, shape)
	if err != nil {
		return err
	}
	return pixpack.WriteFile(path, data)
}

// Load reads the RLE file at `path`.
func Load(path string) ([]Run, pixpack.Shape, error) {
	data, err := pixpack.ReadFile(path)
	if err != nil {
		return nil, pixpack.Shape{}, err
	}
	return Unmarshal(data)
}
