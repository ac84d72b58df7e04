package wordgraph

import (
	"bytes"
	"sort"
)

// uncheckedFrame is a spine entry: an edge that has been added but not
// yet checked for minimization.
type uncheckedFrame struct {
	parent *builderNode
	letter byte
	child  *builderNode
}

// Builder incrementally minimizes a DAWG from words supplied in strictly
// ascending lexicographic order. It is single-writer: a Builder must not
// be used from more than one goroutine at a time.
type Builder struct {
	root      *builderNode
	previous  []byte
	unchecked []uncheckedFrame
	minimized map[string]*builderNode
	finalized bool
	nextID    int

	graph *Graph // cached result of Finalize, set once
}

// NewBuilder returns a fresh Builder with an empty root node.
func NewBuilder() *Builder {
	b := &Builder{
		minimized: make(map[string]*builderNode),
	}
	b.root = b.newNode()
	return b
}

func (b *Builder) newNode() *builderNode {
	n := newBuilderNode(b.nextID)
	b.nextID++
	return n
}

// Insert adds word to the builder. word must be non-empty and strictly
// greater than the previously inserted word in byte-wise order.
func (b *Builder) Insert(word string) error {
	if b.finalized {
		return ErrPostFinalizeMutation
	}
	if word == "" {
		return ErrInvalidArgument
	}

	wb := []byte(word)
	if b.previous != nil && bytes.Compare(wb, b.previous) <= 0 {
		return ErrOrderViolation
	}

	common := commonPrefixLen(wb, b.previous)
	b.minimizeDownTo(common)

	var node *builderNode
	if len(b.unchecked) == 0 {
		node = b.root
	} else {
		node = b.unchecked[len(b.unchecked)-1].child
	}

	for _, letter := range wb[common:] {
		child := b.newNode()
		node.setEdge(letter, child)
		b.unchecked = append(b.unchecked, uncheckedFrame{node, letter, child})
		node = child
	}

	node.setFinal(true)
	b.previous = wb
	return nil
}

// minimizeDownTo pops unchecked frames down to depth k, deepest first,
// replacing each child with its canonical representative when one
// already exists in the minimized table.
func (b *Builder) minimizeDownTo(k int) {
	for len(b.unchecked) > k {
		last := len(b.unchecked) - 1
		f := b.unchecked[last]
		b.unchecked = b.unchecked[:last]

		sig := f.child.signature()
		if canonical, ok := b.minimized[sig]; ok {
			f.parent.setEdge(f.letter, canonical)
		} else {
			b.minimized[sig] = f.child
		}
	}
}

// Finalize closes the builder to further inserts and flattens the
// minimized builder graph into an immutable, array-indexed Graph.
// Finalize is idempotent: calling it more than once returns the same
// Graph without re-flattening.
func (b *Builder) Finalize() (*Graph, error) {
	if b.finalized {
		return b.graph, nil
	}

	b.minimizeDownTo(0)
	b.finalized = true

	b.graph = flatten(b.root)

	// Builder nodes become unreachable once flattened; drop references
	// so they can be garbage collected.
	b.root = nil
	b.previous = nil
	b.unchecked = nil
	b.minimized = nil

	return b.graph, nil
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// flatten walks the minimized builder graph rooted at root and emits a
// dense, array-indexed Graph. Nodes are collected by builder identity
// and assigned new indices in ascending identity order; since the
// builder assigns identity 0 to the root, this places the root at
// index 0 as required.
func flatten(root *builderNode) *Graph {
	visited := make(map[*builderNode]bool)
	var order []*builderNode

	var walk func(n *builderNode)
	walk = func(n *builderNode) {
		if visited[n] {
			return
		}
		visited[n] = true
		order = append(order, n)
		for _, child := range n.edges {
			walk(child)
		}
	}
	walk(root)

	sort.Slice(order, func(i, j int) bool { return order[i].id < order[j].id })

	indexOf := make(map[*builderNode]uint32, len(order))
	for i, n := range order {
		indexOf[n] = uint32(i)
	}

	nodes := make([]indexedNode, len(order))
	for i, n := range order {
		letters := make([]byte, 0, len(n.edges))
		for l := range n.edges {
			letters = append(letters, l)
		}
		sort.Slice(letters, func(a, c int) bool { return letters[a] < letters[c] })

		edges := make([]indexedEdge, len(letters))
		for j, l := range letters {
			edges[j] = indexedEdge{letter: l, to: indexOf[n.edges[l]]}
		}

		nodes[i] = indexedNode{final: n.final, edges: edges}
	}

	return &Graph{nodes: nodes}
}
