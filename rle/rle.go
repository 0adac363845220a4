package rle

// Encode run-length encodes `samples` in a single pass. An empty input gives an
// empty (non-nil) slice of runs.
func Encode(samples []byte) []Run {
	runs := make([]Run, 0, estimateRunCount(len(samples)))
	grouper := NewGrouper(samples)
	for {
		run, ok := grouper.Next()
		if !ok {
			return runs
		}
		runs = append(runs, run)
	}
}

// Decode expands `runs` back into the sample sequence they were encoded from.
// The length of the result is the sum of all the run counts.
func Decode(runs []Run) []byte {
	output := make([]byte, 0, TotalLength(runs))
	for _, run := range runs {
		for i := uint8(0); i < run.Count; i++ {
			output = append(output, run.Value)
		}
	}
	return output
}

// TotalLength returns the number of samples `runs` decodes to.
func TotalLength(runs []Run) uint64 {
	total := uint64(0)
	for _, run := range runs {
		total += uint64(run.Count)
	}
	return total
}

// estimateRunCount guesses how many runs an input will produce so Encode
// doesn't have to grow its output too often. Grayscale images tend to have
// short runs.
func estimateRunCount(inputLength int) int {
	if inputLength < 64 {
		return inputLength
	}
	return inputLength / 4
}
