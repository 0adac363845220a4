package rle

// MaxRunLength is the longest run a single [Run] can represent.
const MaxRunLength = 255

// Run represents a single run of a particular sample value.
type Run struct {
	// Value is the sample value for this run.
	Value byte
	// Count gives the number of times the value occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater.
	Count uint8
}

// InvalidRun is returned by [Grouper.Next] once the input is exhausted.
var InvalidRun = Run{Value: 0, Count: 0}

// Grouper splits a sample sequence into runs of at most [MaxRunLength].
type Grouper struct {
	samples []byte
	offset  int
}

func NewGrouper(samples []byte) *Grouper {
	return &Grouper{samples: samples}
}

// Next returns the next run in the sequence. When the sequence is exhausted it
// returns [InvalidRun] and false.
func (grouper *Grouper) Next() (Run, bool) {
	if grouper.offset >= len(grouper.samples) {
		return InvalidRun, false
	}

	run := Run{Value: grouper.samples[grouper.offset], Count: 1}
	grouper.offset++

	for grouper.offset < len(grouper.samples) {
		if grouper.samples[grouper.offset] != run.Value || run.Count == MaxRunLength {
			break
		}
		run.Count++
		grouper.offset++
	}
	return run, true
}
