package pixpack

import (
	"fmt"
)

// Sample is a single 8-bit pixel intensity.
type Sample = byte

// Shape is the logical 2D shape of a flattened sample sequence. It's only
// metadata as far as the codecs are concerned; they work on the flat sequence
// and just carry the shape through their file headers.
type Shape struct {
	Height uint32
	Width  uint32
}

// Len returns the number of samples an image of this shape contains. The result
// can't overflow since both dimensions are 32 bits.
func (s Shape) Len() uint64 {
	return uint64(s.Height) * uint64(s.Width)
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Validate returns an error if the shape doesn't describe exactly `sampleCount`
// samples.
func (s Shape) Validate(sampleCount uint64) error {
	if s.Len() != sampleCount {
		return ErrInvalidArgument.WithMessage(
			fmt.Sprintf(
				"shape %s holds %d samples, got %d", s.String(), s.Len(), sampleCount))
	}
	return nil
}

// ShapeFor returns the shape of a sequence of `length` samples split into
// `height` rows. It fails if the rows wouldn't all be the same width.
func ShapeFor(length int, height uint32) (Shape, error) {
	if height == 0 {
		if length == 0 {
			return Shape{}, nil
		}
		return Shape{}, ErrInvalidArgument.WithMessage("height is 0 but samples are present")
	}
	if length < 0 || length%int(height) != 0 {
		return Shape{}, ErrInvalidArgument.WithMessage(
			fmt.Sprintf("%d samples can't be split evenly into %d rows", length, height))
	}
	return Shape{Height: height, Width: uint32(length / int(height))}, nil
}
