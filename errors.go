package pixpack

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is the error type returned by the codecs and the file formats.
// Every error can be matched with [errors.Is] against one of the Err* values
// below, however many messages or causes were attached to it.
type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

// basePixpackError is the root of every Err* value. It has no message.
type basePixpackError string

const rootError = basePixpackError("")

var ErrArgumentOutOfRange = rootError.WithMessage("Numerical argument out of domain")
var ErrEmptyInputUnsupported = rootError.WithMessage("Empty input not supported")
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrIOFailed = rootError.WithMessage("Input/output error")
var ErrMalformedFile = rootError.WithMessage("Malformed file")
var ErrMalformedStream = rootError.WithMessage("Malformed bitstream")

func (e basePixpackError) Error() string {
	return string(e)
}

func (e basePixpackError) RootCause() CodecError {
	return e
}

// WithMessage returns an error that matches `e` but reads as `message`, e.g.
// to say which header field of a file was wrong.
func (e basePixpackError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

// Wrap returns an error matching both `e` and `err`. It's used when a failure
// from an image decoder, the filesystem or a bit reader has to be reported as
// one of the codec errors.
func (e basePixpackError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customCodecError) Error() string {
	return e.message
}

// WithMessage appends `message` to the existing one.
func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
