package pixpack

import (
	"io"
	"os"
)

// WriteFile writes the entire encoded file in one call. If this fails the file
// at `path` may be truncated and should be discarded.
func WriteFile(path string, data []byte) error {
	err := os.WriteFile(path, data, OutputFileMode)
	if err != nil {
		return ErrIOFailed.Wrap(err)
	}
	return nil
}

// ReadFile reads the entire file at `path` into memory.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrIOFailed.Wrap(err)
	}
	return data, nil
}

// ReadAll is [io.ReadAll] with failures reported as [ErrIOFailed].
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrIOFailed.Wrap(err)
	}
	return data, nil
}

// WriteAll writes all of `data` to `w`, reporting failures as [ErrIOFailed].
func WriteAll(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return ErrIOFailed.Wrap(err)
	}
	if n != len(data) {
		return ErrIOFailed.Wrap(io.ErrShortWrite)
	}
	return nil
}
