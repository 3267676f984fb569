// Package huffman builds byte-oriented Huffman trees and converts between
// raw bytes and the packed bit-streams the container format stores.
package huffman

import "container/heap"

// A node lives in the tree's arena; children are arena indices,
// -1 marks a leaf.
type node struct {
	zero, one int32
	sym       byte
}

type Tree struct {
	nodes []node
	root  int32
	total uint64 // sum of the histogram, the decoded byte count
}

// Histogram counts occurrences of each byte value in one pass.
func Histogram(data []byte) (hist [256]uint32) {
	for _, b := range data {
		hist[b]++
	}
	return
}

// Build merges the two lightest pending nodes until one remains.
// Ties go to the node created first; leaves are seeded in ascending
// symbol order, so identical histograms always produce identical trees.
// An all-zero histogram has nothing to merge and yields nil.
func Build(hist *[256]uint32) *Tree {
	t := &Tree{}
	h := &mergeHeap{}
	for sym, count := range hist {
		if count == 0 {
			continue
		}
		h.pending = append(h.pending, int32(len(t.nodes)))
		h.weight = append(h.weight, uint64(count))
		t.nodes = append(t.nodes, node{zero: -1, one: -1, sym: byte(sym)})
		t.total += uint64(count)
	}
	if len(t.nodes) == 0 {
		return nil
	}
	heap.Init(h)
	for len(h.pending) > 1 {
		a := heap.Pop(h).(int32)
		b := heap.Pop(h).(int32)
		merged := int32(len(t.nodes))
		t.nodes = append(t.nodes, node{zero: a, one: b})
		h.weight = append(h.weight, h.weight[a]+h.weight[b])
		heap.Push(h, merged)
	}
	t.root = h.pending[0]
	return t
}

// mergeHeap orders arena indices by weight, then by index.
// weight is indexed by arena position and only ever appended to.
type mergeHeap struct {
	pending []int32
	weight  []uint64
}

func (h *mergeHeap) Len() int { return len(h.pending) }

func (h *mergeHeap) Less(i, j int) bool {
	a, b := h.pending[i], h.pending[j]
	if h.weight[a] != h.weight[b] {
		return h.weight[a] < h.weight[b]
	}
	return a < b
}

func (h *mergeHeap) Swap(i, j int) {
	h.pending[i], h.pending[j] = h.pending[j], h.pending[i]
}

func (h *mergeHeap) Push(x any) {
	h.pending = append(h.pending, x.(int32))
}

func (h *mergeHeap) Pop() any {
	old := h.pending
	x := old[len(old)-1]
	h.pending = old[:len(old)-1]
	return x
}

// A Code is one symbol's bit-string, right-aligned in Bits.
// Histogram counts fit in a uint32, which caps the deepest reachable
// leaf well under 64 bits (the worst case grows like a Fibonacci
// sequence of weights), so a uint64 always holds a whole code.
type Code struct {
	Bits uint64
	Len  uint8
}

// Codes assigns each leaf its root-to-leaf path, zero branch first.
// A single-leaf tree has an empty path, which would make every encoded
// position ambiguous; it gets the fixed one-bit code 0 instead.
func (t *Tree) Codes() [256]Code {
	var codes [256]Code
	if t.nodes[t.root].zero < 0 {
		codes[t.nodes[t.root].sym] = Code{Bits: 0, Len: 1}
		return codes
	}
	type frame struct {
		n int32
		c Code
	}
	stack := []frame{{t.root, Code{}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[f.n]
		if n.zero < 0 {
			codes[n.sym] = f.c
			continue
		}
		stack = append(stack,
			frame{n.one, Code{Bits: f.c.Bits<<1 | 1, Len: f.c.Len + 1}},
			frame{n.zero, Code{Bits: f.c.Bits << 1, Len: f.c.Len + 1}})
	}
	return codes
}
