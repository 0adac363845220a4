package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/huffman"
	"github.com/dargueta/pixpack/metrics"
	"github.com/dargueta/pixpack/pixels"
	"github.com/dargueta/pixpack/report"
	"github.com/dargueta/pixpack/rle"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func loadImage(path string) ([]byte, pixpack.Shape, error) {
	start := time.Now()
	samples, shape, err := pixels.Load(path, pixels.Options{MaxDimension: settings.MaxDimension})
	if err != nil {
		return nil, pixpack.Shape{}, err
	}
	verbosef("loaded %s (%s) in %s", path, shape.String(), time.Since(start))
	return samples, shape, nil
}

func printSizes(outputPath string, originalSize int64) {
	stat, err := os.Stat(outputPath)
	if err != nil {
		verbosef("can't report size of %s: %s", outputPath, err.Error())
		return
	}
	fmt.Printf(
		"%s: %d -> %d bytes, ratio %.2f, saved %.2f%%\n",
		outputPath,
		originalSize,
		stat.Size(),
		metrics.CompressionRatio(originalSize, stat.Size()),
		metrics.PercentSaved(originalSize, stat.Size()),
	)
}

func rleEncode(context *cli.Context) error {
	if err := requireArgs(context, 2); err != nil {
		return err
	}
	imagePath := context.Args().Get(0)
	outputPath := context.Args().Get(1)

	samples, shape, err := loadImage(imagePath)
	if err != nil {
		return err
	}

	start := time.Now()
	runs := rle.Encode(samples)
	err = rle.Save(runs, shape, outputPath)
	if err != nil {
		return errors.Wrapf(err, "failed to save %q", outputPath)
	}
	verbosef("encoded %d runs in %s", len(runs), time.Since(start))

	printSizes(outputPath, int64(len(samples)))
	return nil
}

func rleDecode(context *cli.Context) error {
	if err := requireArgs(context, 2); err != nil {
		return err
	}
	inputPath := context.Args().Get(0)
	imagePath := context.Args().Get(1)

	start := time.Now()
	runs, shape, err := rle.Load(inputPath)
	if err != nil {
		return errors.Wrapf(err, "failed to load %q", inputPath)
	}
	samples := rle.Decode(runs)
	verbosef("decoded %d runs in %s", len(runs), time.Since(start))

	return pixels.Save(imagePath, samples, shape)
}

func huffmanEncode(context *cli.Context) error {
	if err := requireArgs(context, 2); err != nil {
		return err
	}
	imagePath := context.Args().Get(0)
	outputPath := context.Args().Get(1)

	samples, shape, err := loadImage(imagePath)
	if err != nil {
		return err
	}

	start := time.Now()
	packed, frequencies, padding, err := huffman.Encode(samples)
	if err != nil {
		return err
	}
	err = huffman.Save(packed, frequencies, padding, shape, outputPath)
	if err != nil {
		return errors.Wrapf(err, "failed to save %q", outputPath)
	}
	verbosef(
		"encoded %d symbols into %d bytes (+%d padding bits) in %s",
		frequencies.Distinct(),
		len(packed),
		padding,
		time.Since(start),
	)

	printSizes(outputPath, int64(len(samples)))
	return nil
}

func huffmanDecode(context *cli.Context) error {
	if err := requireArgs(context, 2); err != nil {
		return err
	}
	inputPath := context.Args().Get(0)
	imagePath := context.Args().Get(1)

	start := time.Now()
	packed, frequencies, padding, shape, err := huffman.Load(inputPath)
	if err != nil {
		return errors.Wrapf(err, "failed to load %q", inputPath)
	}
	samples, err := huffman.Decode(packed, frequencies, padding)
	if err != nil {
		return errors.Wrapf(err, "failed to decode %q", inputPath)
	}
	verbosef("decoded %d samples in %s", len(samples), time.Since(start))

	return pixels.Save(imagePath, samples, shape)
}

func compareImages(context *cli.Context) error {
	if context.NArg() == 0 {
		return fmt.Errorf("no images given\nUsage: %s %s", context.Command.FullName(), context.Command.ArgsUsage)
	}

	exportDecoded := settings.ExportDecoded
	if context.IsSet("export") {
		exportDecoded = context.Bool("export")
	}
	csvPath := settings.ReportCSV
	if context.IsSet("csv") {
		csvPath = context.String("csv")
	}

	err := os.MkdirAll(settings.OutputDir, pixpack.OutputDirMode)
	if err != nil {
		return pixpack.ErrIOFailed.Wrap(err)
	}

	options := report.Options{
		OutputDir:     settings.OutputDir,
		ExportDecoded: exportDecoded,
		Workers:       settings.Workers,
		Pixels:        pixels.Options{MaxDimension: settings.MaxDimension},
	}

	start := time.Now()
	rows, compareErr := report.CompareAll(context.Args().Slice(), options)
	verbosef("compared %d images in %s", len(rows), time.Since(start))

	printRows(rows)

	if csvPath != "" {
		err = report.SaveCSV(csvPath, rows)
		if err != nil {
			return errors.Wrapf(err, "failed to write report %q", csvPath)
		}
	}
	return compareErr
}

func printRows(rows []report.Row) {
	fmt.Printf(
		"%-20s %-10s %10s %10s %10s %8s %8s %-8s %s\n",
		"NAME", "CLASS", "ORIG KB", "RLE KB", "HUF KB", "RLE x", "HUF x", "BEST", "LOSSLESS",
	)
	for _, row := range rows {
		tag := ""
		if row.Expanded() {
			tag = "  (both expanded)"
		}
		fmt.Printf(
			"%-20s %-10s %10.2f %10.2f %10.2f %8.2f %8.2f %-8s RLE:%s | HUF:%s%s\n",
			row.Name,
			row.Class,
			float64(row.OriginalSize)/1024,
			float64(row.RLESize)/1024,
			float64(row.HuffmanSize)/1024,
			row.RLERatio,
			row.HuffmanRatio,
			row.BestMethod,
			okOrFail(row.RLELossless),
			okOrFail(row.HuffmanLossless),
			tag,
		)
	}
}

func okOrFail(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAIL"
}
