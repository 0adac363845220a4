package huffman

import (
	"container/heap"

	"github.com/dargueta/pixpack"
)

type nodeIndex int32

// noChild marks a missing branch. Only the root of a single-symbol tree has one.
const noChild nodeIndex = -1

// node is either a leaf holding a symbol, or an internal node with child
// indices. Internal nodes never carry a symbol.
type node struct {
	weight uint64
	left   nodeIndex
	right  nodeIndex
	symbol byte
	leaf   bool
}

// Tree is a Huffman tree. All nodes live in one slice and refer to each other
// by index, so the whole tree is released at once when it goes out of scope.
type Tree struct {
	nodes []node
	root  nodeIndex
}

func (tree *Tree) addLeaf(symbol byte, weight uint64) nodeIndex {
	tree.nodes = append(
		tree.nodes,
		node{weight: weight, left: noChild, right: noChild, symbol: symbol, leaf: true},
	)
	return nodeIndex(len(tree.nodes) - 1)
}

func (tree *Tree) addInternal(left, right nodeIndex) nodeIndex {
	weight := tree.nodes[left].weight
	if right != noChild {
		weight += tree.nodes[right].weight
	}
	tree.nodes = append(tree.nodes, node{weight: weight, left: left, right: right})
	return nodeIndex(len(tree.nodes) - 1)
}

// Weight returns the total weight of the tree, i.e. the number of samples the
// frequency table it was built from describes.
func (tree *Tree) Weight() uint64 {
	return tree.nodes[tree.root].weight
}

// NumLeaves returns the number of distinct symbols in the tree.
func (tree *Tree) NumLeaves() int {
	leaves := 0
	for _, n := range tree.nodes {
		if n.leaf {
			leaves++
		}
	}
	return leaves
}

// child returns the node reached from `current` by following one bit.
func (tree *Tree) child(current nodeIndex, bit bool) nodeIndex {
	if bit {
		return tree.nodes[current].right
	}
	return tree.nodes[current].left
}

////////////////////////////////////////////////////////////////////////////////
// Priority queue

type queueEntry struct {
	index  nodeIndex
	weight uint64
	// arrival is the order the entry was pushed in. Equal weights pop in
	// arrival order.
	arrival int
}

type priorityQueue []queueEntry

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].arrival < pq[j].arrival
}
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(queueEntry)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// BuildTree builds the Huffman tree for a frequency table by repeatedly merging
// the two lightest nodes. The first node popped becomes the left child and the
// second the right.
//
// A table with a single symbol gets a root with only a left child so that the
// symbol's code is "0" rather than empty. An empty table can't form a tree and
// returns [pixpack.ErrEmptyInputUnsupported].
func BuildTree(table *FrequencyTable) (*Tree, error) {
	symbols := table.Symbols()
	if len(symbols) == 0 {
		return nil, pixpack.ErrEmptyInputUnsupported.WithMessage(
			"can't build a Huffman tree without symbols")
	}

	tree := &Tree{nodes: make([]node, 0, 2*len(symbols))}
	pq := make(priorityQueue, 0, len(symbols))
	arrival := 0

	for _, symbol := range symbols {
		index := tree.addLeaf(symbol, table[symbol])
		pq = append(pq, queueEntry{index: index, weight: table[symbol], arrival: arrival})
		arrival++
	}
	heap.Init(&pq)

	if pq.Len() == 1 {
		only := heap.Pop(&pq).(queueEntry)
		tree.root = tree.addInternal(only.index, noChild)
		return tree, nil
	}

	for pq.Len() > 1 {
		left := heap.Pop(&pq).(queueEntry)
		right := heap.Pop(&pq).(queueEntry)

		parent := tree.addInternal(left.index, right.index)
		heap.Push(
			&pq,
			queueEntry{index: parent, weight: tree.nodes[parent].weight, arrival: arrival},
		)
		arrival++
	}

	tree.root = heap.Pop(&pq).(queueEntry).index
	return tree, nil
}
