package pixpack_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/dargueta/pixpack"
	"github.com/stretchr/testify/assert"
)

func TestPixpackErrorWithMessage(t *testing.T) {
	newErr := pixpack.ErrMalformedFile.WithMessage("asdfqwerty")
	assert.Equal(
		t, "Malformed file: asdfqwerty", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, pixpack.ErrMalformedFile)
	assert.NotErrorIs(t, newErr, pixpack.ErrMalformedStream)
}

func TestPixpackErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := pixpack.ErrIOFailed.Wrap(originalErr)
	expectedMessage := "Input/output error: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, pixpack.ErrIOFailed, "pixpack error not set as parent")
}

func TestPixpackErrorWrap__PlatformErrorReachable(t *testing.T) {
	newErr := pixpack.ErrIOFailed.Wrap(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist})
	assert.ErrorIs(t, newErr, fs.ErrNotExist)
}

func TestShapeLen(t *testing.T) {
	assert.EqualValues(t, 0, pixpack.Shape{}.Len())
	assert.EqualValues(t, 12, pixpack.Shape{Height: 3, Width: 4}.Len())
	assert.EqualValues(
		t,
		uint64(0xffffffff)*uint64(0xffffffff),
		pixpack.Shape{Height: 0xffffffff, Width: 0xffffffff}.Len(),
		"shape length must not overflow",
	)
}

func TestShapeFor(t *testing.T) {
	shape, err := pixpack.ShapeFor(6, 2)
	assert.NoError(t, err)
	assert.Equal(t, pixpack.Shape{Height: 2, Width: 3}, shape)

	_, err = pixpack.ShapeFor(7, 2)
	assert.ErrorIs(t, err, pixpack.ErrInvalidArgument)

	shape, err = pixpack.ShapeFor(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, pixpack.Shape{}, shape)
}
