package rle_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/pixpack/rle"
	ptesting "github.com/dargueta/pixpack/testing"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type EncodeTestCase struct {
	Input        []byte
	ExpectedRuns []rle.Run
	Name         string
}

func TestEncode__Basic(t *testing.T) {
	tests := []EncodeTestCase{
		{[]byte{}, []rle.Run{}, "empty"},
		{[]byte{2, 2, 2, 5, 5, 1}, []rle.Run{{2, 3}, {5, 2}, {1, 1}}, "short runs"},
		{[]byte{0, 1, 2, 3}, []rle.Run{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, "no runs"},
		{
			bytes.Repeat([]byte{7}, 300),
			[]rle.Run{{7, 255}, {7, 45}},
			"split at the cap",
		},
		{
			bytes.Repeat([]byte{8}, 510),
			[]rle.Run{{8, 255}, {8, 255}},
			"two full runs",
		},
		{
			append(bytes.Repeat([]byte{8}, 255), 9),
			[]rle.Run{{8, 255}, {9, 1}},
			"full run then different value",
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				runs := rle.Encode(test.Input)
				if diff := cmp.Diff(test.ExpectedRuns, runs); diff != "" {
					t.Errorf("runs are wrong (-want +got):\n%s", diff)
				}
				assert.Equal(t, test.Input, rle.Decode(runs), "decoded data is wrong")
			},
		)
	}
}

func TestEncode__RunInvariants(t *testing.T) {
	data := append(ptesting.RandomSamples(2000, t), bytes.Repeat([]byte{4}, 1000)...)
	runs := rle.Encode(data)

	for i, run := range runs {
		assert.GreaterOrEqualf(t, run.Count, uint8(1), "run %d has count 0", i)
		if i > 0 && runs[i-1].Value == run.Value {
			assert.EqualValuesf(
				t,
				rle.MaxRunLength,
				runs[i-1].Count,
				"runs %d and %d share a value without the first being full",
				i-1,
				i,
			)
		}
	}
}

func TestDecode__Empty(t *testing.T) {
	decoded := rle.Decode(nil)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestRLERoundTrip__CompletelyRandom(t *testing.T) {
	originalData := ptesting.RandomSamples(1852, t)
	assert.Equal(t, originalData, rle.Decode(rle.Encode(originalData)))
}

func TestRLERoundTrip__EntirelyNulls(t *testing.T) {
	originalData := make([]byte, 571)
	assert.Equal(t, originalData, rle.Decode(rle.Encode(originalData)))
}

func TestRLERoundTrip__Image(t *testing.T) {
	shape := ptesting.StripedShape
	originalData := ptesting.StripedImage(shape, 7)
	runs := rle.Encode(originalData)
	assert.Less(t, len(runs), len(originalData), "striped image should compress")
	assert.Equal(t, originalData, rle.Decode(runs))
}

func TestTotalLength(t *testing.T) {
	assert.EqualValues(t, 0, rle.TotalLength(nil))
	assert.EqualValues(t, 300, rle.TotalLength([]rle.Run{{7, 255}, {7, 45}}))
}
