// Package report runs both codecs over an image and measures how they did:
// encoded file sizes, timings, compression ratios, and whether decoding the
// saved files gives back the original samples.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/huffman"
	"github.com/dargueta/pixpack/metrics"
	"github.com/dargueta/pixpack/pixels"
	"github.com/dargueta/pixpack/rle"
)

// Options controls where comparison output goes and how images are loaded.
type Options struct {
	// OutputDir receives <name>_rle.bin, <name>_huf.bin and, if ExportDecoded is
	// set, <name>_rle.png and <name>_huf.png. It must already exist.
	OutputDir string
	// ExportDecoded writes the images decoded from the saved files.
	ExportDecoded bool
	// Workers is the number of images [CompareAll] processes at once. Values
	// below 1 are treated as 1.
	Workers int
	Pixels  pixels.Options
}

// Row is the comparison result for one image.
type Row struct {
	Name         string        `csv:"name"`
	Class        metrics.Class `csv:"class"`
	Width        uint32        `csv:"width"`
	Height       uint32        `csv:"height"`
	OriginalSize int64         `csv:"original_bytes"`

	RLESize     int64   `csv:"rle_bytes"`
	RLERatio    float64 `csv:"rle_ratio"`
	RLESaved    float64 `csv:"rle_saved_percent"`
	RLEEncodeMs float64 `csv:"rle_encode_ms"`
	RLEDecodeMs float64 `csv:"rle_decode_ms"`
	RLELossless bool    `csv:"rle_lossless"`
	RLEPath     string  `csv:"rle_path"`

	HuffmanSize     int64   `csv:"huffman_bytes"`
	HuffmanRatio    float64 `csv:"huffman_ratio"`
	HuffmanSaved    float64 `csv:"huffman_saved_percent"`
	HuffmanEncodeMs float64 `csv:"huffman_encode_ms"`
	HuffmanDecodeMs float64 `csv:"huffman_decode_ms"`
	HuffmanLossless bool    `csv:"huffman_lossless"`
	HuffmanPath     string  `csv:"huffman_path"`

	BestMethod string `csv:"best_method"`
}

// Expanded reports whether both codecs made the image bigger.
func (row Row) Expanded() bool {
	return row.RLERatio < 1 && row.HuffmanRatio < 1
}

// Lossless reports whether both codecs reproduced the image exactly.
func (row Row) Lossless() bool {
	return row.RLELossless && row.HuffmanLossless
}

// Compare loads the image at `path` and compares both codecs on it.
func Compare(path string, options Options) (Row, error) {
	return compareNamed(path, NameFor(path), options)
}

func compareNamed(path string, name string, options Options) (Row, error) {
	samples, shape, err := pixels.Load(path, options.Pixels)
	if err != nil {
		return Row{}, err
	}
	return CompareSamples(name, samples, shape, options)
}

// NameFor returns the name output files for the image at `path` are based on:
// the file name without its extension.
func NameFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CompareSamples encodes `samples` with both codecs, saves the results under
// `options.OutputDir`, loads them back, decodes them and compares.
func CompareSamples(
	name string, samples []byte, shape pixpack.Shape, options Options,
) (Row, error) {
	err := shape.Validate(uint64(len(samples)))
	if err != nil {
		return Row{}, err
	}

	row := Row{
		Name:         name,
		Class:        metrics.Classify(samples),
		Width:        shape.Width,
		Height:       shape.Height,
		OriginalSize: int64(len(samples)),
		RLEPath:      filepath.Join(options.OutputDir, name+"_rle.bin"),
		HuffmanPath:  filepath.Join(options.OutputDir, name+"_huf.bin"),
	}

	rleDecoded, err := runRLE(&row, samples, shape)
	if err != nil {
		return Row{}, fmt.Errorf("%s: RLE failed: %w", name, err)
	}
	huffmanDecoded, err := runHuffman(&row, samples, shape)
	if err != nil {
		return Row{}, fmt.Errorf("%s: Huffman failed: %w", name, err)
	}

	row.RLERatio = metrics.CompressionRatio(row.OriginalSize, row.RLESize)
	row.RLESaved = metrics.PercentSaved(row.OriginalSize, row.RLESize)
	row.HuffmanRatio = metrics.CompressionRatio(row.OriginalSize, row.HuffmanSize)
	row.HuffmanSaved = metrics.PercentSaved(row.OriginalSize, row.HuffmanSize)
	row.BestMethod = metrics.BestMethod(row.RLERatio, row.HuffmanRatio)

	if options.ExportDecoded {
		err = pixels.Save(
			filepath.Join(options.OutputDir, name+"_rle.png"), rleDecoded, shape)
		if err != nil {
			return Row{}, err
		}
		err = pixels.Save(
			filepath.Join(options.OutputDir, name+"_huf.png"), huffmanDecoded, shape)
		if err != nil {
			return Row{}, err
		}
	}
	return row, nil
}

func runRLE(row *Row, samples []byte, shape pixpack.Shape) ([]byte, error) {
	start := time.Now()
	err := rle.Save(rle.Encode(samples), shape, row.RLEPath)
	if err != nil {
		return nil, err
	}
	row.RLEEncodeMs = millisSince(start)

	row.RLESize, err = fileSize(row.RLEPath)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	runs, loadedShape, err := rle.Load(row.RLEPath)
	if err != nil {
		return nil, err
	}
	decoded := rle.Decode(runs)
	row.RLEDecodeMs = millisSince(start)

	row.RLELossless = loadedShape == shape && metrics.Lossless(samples, decoded)
	return decoded, nil
}

func runHuffman(row *Row, samples []byte, shape pixpack.Shape) ([]byte, error) {
	start := time.Now()
	packed, frequencies, padding, err := huffman.Encode(samples)
	if err != nil {
		return nil, err
	}
	err = huffman.Save(packed, frequencies, padding, shape, row.HuffmanPath)
	if err != nil {
		return nil, err
	}
	row.HuffmanEncodeMs = millisSince(start)

	row.HuffmanSize, err = fileSize(row.HuffmanPath)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	packed, frequencies, padding, loadedShape, err := huffman.Load(row.HuffmanPath)
	if err != nil {
		return nil, err
	}
	decoded, err := huffman.Decode(packed, frequencies, padding)
	if err != nil {
		return nil, err
	}
	row.HuffmanDecodeMs = millisSince(start)

	row.HuffmanLossless = loadedShape == shape && metrics.Lossless(samples, decoded)
	return decoded, nil
}

func fileSize(path string) (int64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, pixpack.ErrIOFailed.Wrap(err)
	}
	return stat.Size(), nil
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
