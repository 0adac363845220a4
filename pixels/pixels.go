// Package pixels converts between image files and the flat, row-major sample
// sequences the codecs work on.
package pixels

import (
	"image"

	"github.com/dargueta/pixpack"
	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Options controls how images are turned into samples.
type Options struct {
	// MaxDimension, if nonzero, downscales images whose width or height exceeds
	// it, preserving the aspect ratio. Images that already fit are untouched.
	MaxDimension uint
}

// grayscale converts to luma with the usual 0.299/0.587/0.114 weights.
var grayscale = gift.New(gift.Grayscale())

// Load reads the image at `path` and returns its grayscale samples in row-major
// order along with its shape. Any format [imaging.Open] understands works.
func Load(path string, options Options) ([]byte, pixpack.Shape, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, pixpack.Shape{}, errors.Wrapf(
			pixpack.ErrIOFailed.Wrap(err), "failed to open image %q", path)
	}

	if options.MaxDimension > 0 {
		img = resize.Thumbnail(
			options.MaxDimension, options.MaxDimension, img, resize.Lanczos3)
	}

	samples, shape := FromImage(img)
	return samples, shape, nil
}

// FromImage converts any image to grayscale samples.
func FromImage(img image.Image) ([]byte, pixpack.Shape) {
	gray, ok := img.(*image.Gray)
	if !ok {
		gray = image.NewGray(grayscale.Bounds(img.Bounds()))
		grayscale.Draw(gray, img)
	}

	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	samples := make([]byte, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		rowStart := gray.PixOffset(bounds.Min.X, y)
		samples = append(samples, gray.Pix[rowStart:rowStart+width]...)
	}
	return samples, pixpack.Shape{Height: uint32(height), Width: uint32(width)}
}

// ToImage wraps decoded samples in a grayscale image of the given shape.
func ToImage(samples []byte, shape pixpack.Shape) (*image.Gray, error) {
	err := shape.Validate(uint64(len(samples)))
	if err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, int(shape.Width), int(shape.Height)))
	copy(img.Pix, samples)
	return img, nil
}

// Save writes decoded samples to `path` as a grayscale image. The format is
// chosen from the file extension, e.g. ".png".
func Save(path string, samples []byte, shape pixpack.Shape) error {
	img, err := ToImage(samples, shape)
	if err != nil {
		return err
	}

	err = imaging.Save(img, path)
	if err != nil {
		return errors.Wrapf(
			pixpack.ErrIOFailed.Wrap(err), "failed to write image %q", path)
	}
	return nil
}
