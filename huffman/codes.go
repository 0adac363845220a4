package huffman

import (
	"strings"
)

// Code is the bit string for one symbol, written as '0' and '1' characters with
// the first bit to emit on the left.
type Code string

// CodeTable maps each symbol to its code. Symbols that aren't in the tree have
// an empty code.
type CodeTable [256]Code

// BuildCodes assigns a code to every leaf in the tree: each left edge on the
// path from the root contributes a 0 and each right edge a 1.
func BuildCodes(tree *Tree) CodeTable {
	table := CodeTable{}
	path := make([]byte, 0, 32)
	generateCodes(tree, tree.root, path, &table)
	return table
}

func generateCodes(tree *Tree, current nodeIndex, path []byte, table *CodeTable) {
	n := tree.nodes[current]
	if n.leaf {
		// A leaf at the root would otherwise get an empty code.
		if len(path) == 0 {
			table[n.symbol] = "0"
		} else {
			table[n.symbol] = Code(path)
		}
		return
	}

	// Left = 0, Right = 1
	if n.left != noChild {
		generateCodes(tree, n.left, append(path, '0'), table)
	}
	if n.right != noChild {
		generateCodes(tree, n.right, append(path, '1'), table)
	}
}

// Lookup returns the code for `symbol` and whether the symbol has one.
func (table *CodeTable) Lookup(symbol byte) (Code, bool) {
	code := table[symbol]
	return code, code != ""
}

// EncodedBits returns how many bits the samples described by `frequencies`
// take up once encoded with this table, not counting padding.
func (table *CodeTable) EncodedBits(frequencies *FrequencyTable) uint64 {
	total := uint64(0)
	for symbol, count := range frequencies {
		total += count * uint64(len(table[symbol]))
	}
	return total
}

// IsPrefixFree reports whether no code in the table is a prefix of another.
func (table *CodeTable) IsPrefixFree() bool {
	codes := make([]Code, 0, 256)
	for _, code := range table {
		if code != "" {
			codes = append(codes, code)
		}
	}

	for i, first := range codes {
		for j, second := range codes {
			if i != j && strings.HasPrefix(string(second), string(first)) {
				return false
			}
		}
	}
	return true
}
