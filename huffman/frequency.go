package huffman

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/pixpack"
)

// FrequencyTableVersion is the version byte written at the start of every
// serialized frequency table.
const FrequencyTableVersion = 1

// FrequencyTable maps each sample value to the number of times it occurs.
type FrequencyTable [256]uint64

type frequencyEntry struct {
	Symbol uint8
	Count  uint32
}

// CountFrequencies tallies how often each sample value occurs in `samples`.
func CountFrequencies(samples []byte) FrequencyTable {
	table := FrequencyTable{}
	for _, sample := range samples {
		table[sample]++
	}
	return table
}

// Total returns the number of samples the table describes. A total that
// doesn't fit in 64 bits is reported as [math.MaxUint64].
func (table *FrequencyTable) Total() uint64 {
	total := uint64(0)
	for _, count := range table {
		var carry uint64
		total, carry = bits.Add64(total, count, 0)
		if carry != 0 {
			return math.MaxUint64
		}
	}
	return total
}

// Symbols returns the sample values with a nonzero count, in ascending order.
func (table *FrequencyTable) Symbols() []byte {
	symbols := make([]byte, 0, 256)
	for symbol, count := range table {
		if count > 0 {
			symbols = append(symbols, byte(symbol))
		}
	}
	return symbols
}

// Distinct returns the number of sample values with a nonzero count.
func (table *FrequencyTable) Distinct() int {
	return len(table.Symbols())
}

// MarshaledSize returns the number of bytes [MarshalFrequencies] writes.
func (table *FrequencyTable) MarshaledSize() int64 {
	return 1 + 4 + 5*int64(table.Distinct())
}

// MarshalFrequencies writes the frequency table to `w` as a version byte, an
// entry count, and (symbol, count) entries. Counts must fit in 32 bits.
func MarshalFrequencies(w io.Writer, table *FrequencyTable) error {
	symbols := table.Symbols()
	entries := make([]frequencyEntry, 0, len(symbols))
	for _, symbol := range symbols {
		count := table[symbol]
		if count > math.MaxUint32 {
			return pixpack.ErrArgumentOutOfRange.WithMessage(
				fmt.Sprintf("count %d for symbol %d doesn't fit in 32 bits", count, symbol))
		}
		entries = append(entries, frequencyEntry{Symbol: symbol, Count: uint32(count)})
	}

	err := binary.Write(w, binary.LittleEndian, uint8(FrequencyTableVersion))
	if err != nil {
		return pixpack.ErrIOFailed.Wrap(err)
	}
	err = binary.Write(w, binary.LittleEndian, uint32(len(entries)))
	if err != nil {
		return pixpack.ErrIOFailed.Wrap(err)
	}
	err = binary.Write(w, binary.LittleEndian, entries)
	if err != nil {
		return pixpack.ErrIOFailed.Wrap(err)
	}
	return nil
}

// UnmarshalFrequencies reads a frequency table written by [MarshalFrequencies].
// It reads exactly as many bytes as the table occupies and no more.
func UnmarshalFrequencies(r io.Reader) (FrequencyTable, error) {
	table := FrequencyTable{}

	var version uint8
	err := binary.Read(r, binary.LittleEndian, &version)
	if err != nil {
		return table, pixpack.ErrMalformedFile.Wrap(
			fmt.Errorf("missing frequency table version: %w", err))
	}
	if version != FrequencyTableVersion {
		return table, pixpack.ErrMalformedFile.WithMessage(
			fmt.Sprintf("unsupported frequency table version %d", version))
	}

	var numEntries uint32
	err = binary.Read(r, binary.LittleEndian, &numEntries)
	if err != nil {
		return table, pixpack.ErrMalformedFile.Wrap(
			fmt.Errorf("missing frequency table size: %w", err))
	}
	if numEntries > 256 {
		return table, pixpack.ErrMalformedFile.WithMessage(
			fmt.Sprintf("frequency table claims %d entries, max is 256", numEntries))
	}

	entries := make([]frequencyEntry, numEntries)
	err = binary.Read(r, binary.LittleEndian, entries)
	if err != nil {
		return table, pixpack.ErrMalformedFile.Wrap(
			fmt.Errorf("truncated frequency table: %w", err))
	}

	seen := bitmap.New(256)
	for i, entry := range entries {
		if seen.Get(int(entry.Symbol)) {
			return FrequencyTable{}, pixpack.ErrMalformedFile.WithMessage(
				fmt.Sprintf("entry %d repeats symbol %d", i, entry.Symbol))
		}
		if entry.Count == 0 {
			return FrequencyTable{}, pixpack.ErrMalformedFile.WithMessage(
				fmt.Sprintf("entry %d for symbol %d has a count of 0", i, entry.Symbol))
		}
		seen.Set(int(entry.Symbol), true)
		table[entry.Symbol] = uint64(entry.Count)
	}
	return table, nil
}
