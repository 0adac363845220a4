package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dargueta/pixpack/config"
	"github.com/urfave/cli/v2"
)

var settings config.Configuration

func main() {
	cli := cli.App{
		Name:  "pixpack",
		Usage: "Losslessly compress grayscale images with RLE and Huffman coding",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a TOML configuration file",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Directory compare writes encoded files to",
			},
			&cli.UintFlag{
				Name:  "max-dimension",
				Usage: "Downscale images larger than this before encoding (0 = never)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of images compare processes at once",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log timings for each step",
			},
		},
		Before: loadSettings,
		Commands: []*cli.Command{
			{
				Name:  "rle",
				Usage: "Run-length encode or decode a single image",
				Subcommands: []*cli.Command{
					{
						Name:      "encode",
						Usage:     "Encode an image into an RLE file",
						Action:    rleEncode,
						ArgsUsage: "IMAGE_FILE  RLE_FILE",
					},
					{
						Name:      "decode",
						Usage:     "Decode an RLE file into an image",
						Action:    rleDecode,
						ArgsUsage: "RLE_FILE  IMAGE_FILE",
					},
				},
			},
			{
				Name:  "huffman",
				Usage: "Huffman encode or decode a single image",
				Subcommands: []*cli.Command{
					{
						Name:      "encode",
						Usage:     "Encode an image into a Huffman file",
						Action:    huffmanEncode,
						ArgsUsage: "IMAGE_FILE  HUFFMAN_FILE",
					},
					{
						Name:      "decode",
						Usage:     "Decode a Huffman file into an image",
						Action:    huffmanDecode,
						ArgsUsage: "HUFFMAN_FILE  IMAGE_FILE",
					},
				},
			},
			{
				Name:      "compare",
				Usage:     "Compress images with both codecs and report the results",
				Action:    compareImages,
				ArgsUsage: "IMAGE_FILE...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Also write the report as CSV to this file",
					},
					&cli.BoolFlag{
						Name:  "export",
						Usage: "Write the decoded images next to the encoded files",
					},
				},
			},
		},
	}

	err := cli.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

// loadSettings reads the configuration file and environment, then applies any
// global flags given on the command line over them.
func loadSettings(context *cli.Context) error {
	var err error
	settings, err = config.Parse(context.String("config"))
	if err != nil {
		return err
	}

	if context.IsSet("output-dir") {
		settings.OutputDir = context.String("output-dir")
	}
	if context.IsSet("max-dimension") {
		settings.MaxDimension = context.Uint("max-dimension")
	}
	if context.IsSet("workers") {
		settings.Workers = context.Int("workers")
	}
	if context.IsSet("verbose") {
		settings.Verbose = context.Bool("verbose")
	}
	return settings.Validate()
}

func verbosef(format string, args ...any) {
	if settings.Verbose {
		log.Printf(format, args...)
	}
}

func requireArgs(context *cli.Context, count int) error {
	if context.NArg() != count {
		return fmt.Errorf(
			"expected %d arguments, got %d\nUsage: %s %s",
			count,
			context.NArg(),
			context.Command.FullName(),
			context.Command.ArgsUsage,
		)
	}
	return nil
}
