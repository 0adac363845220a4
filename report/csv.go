package report

import (
	"io"
	"os"

	"github.com/dargueta/pixpack"
	"github.com/gocarina/gocsv"
)

// WriteCSV writes the rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	err := gocsv.Marshal(rows, w)
	if err != nil {
		return pixpack.ErrIOFailed.Wrap(err)
	}
	return nil
}

// ReadCSV parses a report written by [WriteCSV].
func ReadCSV(r io.Reader) ([]Row, error) {
	rows := []Row{}
	err := gocsv.Unmarshal(r, &rows)
	if err != nil {
		return nil, pixpack.ErrMalformedFile.Wrap(err)
	}
	return rows, nil
}

// SaveCSV writes the report to `path`, replacing it if it exists.
func SaveCSV(path string, rows []Row) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, pixpack.OutputFileMode)
	if err != nil {
		return pixpack.ErrIOFailed.Wrap(err)
	}

	err = WriteCSV(file, rows)
	if err != nil {
		file.Close()
		return err
	}

	err = file.Close()
	if err != nil {
		return pixpack.ErrIOFailed.Wrap(err)
	}
	return nil
}
