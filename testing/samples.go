package testing

import (
	"crypto/rand"
	"image"
	"io"
	"path/filepath"
	"testing"

	"github.com/dargueta/pixpack"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// RandomSamples returns `count` random samples. It is guaranteed to either
// return a valid slice or fail the test and abort.
func RandomSamples(count int, t *testing.T) []byte {
	samples := make([]byte, count)
	_, err := rand.Read(samples)
	require.NoErrorf(t, err, "failed to generate %d random samples", count)
	return samples
}

// StripedShape is a convenient shape for [StripedImage]; small enough to keep
// tests fast but with rows longer than a single band.
var StripedShape = pixpack.Shape{Height: 48, Width: 64}

// StripedImage creates a flattened image where each row is divided into
// horizontal bands of `bandWidth` pixels, alternating between a handful of gray
// levels. These compress well with both codecs, unlike random data.
func StripedImage(shape pixpack.Shape, bandWidth int) []byte {
	levels := []byte{0, 64, 128, 255}
	samples := make([]byte, 0, shape.Len())
	for row := 0; row < int(shape.Height); row++ {
		for col := 0; col < int(shape.Width); col++ {
			band := (col / bandWidth) + (row / bandWidth)
			samples = append(samples, levels[band%len(levels)])
		}
	}
	return samples
}

// MemoryFile wraps `data` in a seekable stream so tests can treat it like an
// open file. Writes to the stream do not affect `data`'s length, and writing
// past its end triggers an error.
func MemoryFile(data []byte) io.ReadWriteSeeker {
	buffer := make([]byte, len(data))
	copy(buffer, data)
	return bytesextra.NewReadWriteSeeker(buffer)
}

// TempPath returns a path to a file named `name` inside a temporary directory
// that's removed when the test finishes.
func TempPath(t *testing.T, name string) string {
	return filepath.Join(t.TempDir(), name)
}

// WriteGrayPNG writes `samples` as an 8-bit grayscale PNG to `path` and
// returns the path for convenience.
func WriteGrayPNG(t *testing.T, path string, samples []byte, shape pixpack.Shape) string {
	require.EqualValues(t, shape.Len(), len(samples), "shape doesn't match sample count")

	img := image.NewGray(image.Rect(0, 0, int(shape.Width), int(shape.Height)))
	copy(img.Pix, samples)

	err := imaging.Save(img, path)
	require.NoErrorf(t, err, "failed to write test image to %q", path)
	return path
}
