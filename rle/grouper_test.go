package rle_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/pixpack/rle"
)

type BasicTestCase struct {
	Data           []byte
	ExpectedResult rle.Run
	Name           string
}

var basicTestCases = []BasicTestCase{
	{[]byte{}, rle.InvalidRun, "empty"},
	{[]byte{0, 0, 1, 0, 0, 0, 0}, rle.Run{Value: 0, Count: 2}, "two initial"},
	{[]byte{6, 1, 5, 20, 31}, rle.Run{Value: 6, Count: 1}, "one byte"},
	{[]byte{9, 9, 9, 9, 9, 9}, rle.Run{Value: 9, Count: 6}, "entire run"},
	{bytes.Repeat([]byte{3}, 255), rle.Run{Value: 3, Count: 255}, "exactly the cap"},
	{bytes.Repeat([]byte{3}, 256), rle.Run{Value: 3, Count: 255}, "one past the cap"},
}

func runBasicTestCase(t *testing.T, test BasicTestCase) {
	grouper := rle.NewGrouper(test.Data)
	result, _ := grouper.Next()
	if result != test.ExpectedResult {
		t.Errorf("Expected %+v, got %+v", test.ExpectedResult, result)
	}
}

func TestGrouper__Basic(t *testing.T) {
	for _, test := range basicTestCases {
		t.Run(
			test.Name,
			func(t *testing.T) {
				runBasicTestCase(t, test)
			},
		)
	}
}

func TestGrouper__Sequence(t *testing.T) {
	data := []byte{1, 9, 4, 4, 4, 4, 4, 6, 6, 0, 1, 0, 0, 0}
	expected := []rle.Run{
		{1, 1}, {9, 1}, {4, 5}, {6, 2}, {0, 1}, {1, 1}, {0, 3}, rle.InvalidRun,
	}

	grouper := rle.NewGrouper(data)
	for i, expectedRun := range expected {
		result, ok := grouper.Next()
		if result != expectedRun {
			t.Errorf(
				"run %d is wrong: expected %+v but got %+v",
				i,
				expectedRun,
				result,
			)
		}
		if ok != (expectedRun != rle.InvalidRun) {
			t.Errorf("run %d: ok flag is %t", i, ok)
		}
	}
}
