package wordgraph

import (
	"io"
	"os"
	"sort"

	"golang.org/x/exp/mmap"
)

// indexedEdge is an outgoing edge of an indexedNode: a letter and the
// index of the node it leads to. Edges within a node are kept sorted by
// letter so lookup can binary-search them.
type indexedEdge struct {
	letter byte
	to     uint32
}

// minEncodedNodeSize is the smallest a single encoded node can be: a
// final byte, a u32 id, and a u8 edge_count with zero edges. Deserialize
// uses it to reject a node_count that the buffer couldn't possibly
// back, before allocating the node array.
const minEncodedNodeSize = 1 + 4 + 1

// indexedNode is an immutable node in a flattened Graph. Children are
// referenced by array index rather than by pointer.
type indexedNode struct {
	final bool
	edges []indexedEdge
}

func (n *indexedNode) edgeTo(letter byte) (uint32, bool) {
	edges := n.edges
	i := sort.Search(len(edges), func(i int) bool { return edges[i].letter >= letter })
	if i < len(edges) && edges[i].letter == letter {
		return edges[i].to, true
	}
	return 0, false
}

// Graph is an immutable, array-indexed Directed Acyclic Word Graph. The
// root is always at index 0. A Graph is safe to share and query from
// multiple goroutines without synchronization.
type Graph struct {
	nodes []indexedNode
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// Lookup reports whether word, folded to ASCII lowercase, is accepted by
// the graph. Non-ASCII bytes are treated as a miss rather than an error.
func (g *Graph) Lookup(word string) bool {
	node := &g.nodes[0]
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		} else if c > 0x7f {
			return false
		}
		idx, ok := node.edgeTo(c)
		if !ok {
			return false
		}
		node = &g.nodes[idx]
	}
	return node.final
}

// Serialize encodes the graph using the binary layout documented in
// Deserialize's comment.
func (g *Graph) Serialize() []byte {
	w := &byteWriter{}
	w.writeU32(uint32(len(g.nodes)))
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.final {
			w.writeU8(1)
		} else {
			w.writeU8(0)
		}
		w.writeU32(uint32(i))
		w.writeU8(uint8(len(n.edges)))
		for _, e := range n.edges {
			w.writeU8(e.letter)
			w.writeU32(e.to)
		}
	}
	return w.bytes()
}

// Deserialize decodes the binary layout written by Serialize:
//
//	u32 node_count
//	for each node, in index order:
//	    u8  final  (0 or 1)
//	    u32 id     (must equal the node's position)
//	    u8  edge_count
//	    edge_count * (u8 letter, u32 child_index)
//
// Decoding fails on truncated input, a zero or oversized node_count, an
// id/position mismatch, or a child index that is out of range.
func Deserialize(data []byte) (*Graph, error) {
	r := newByteReader(data)

	count, err := r.readU32()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, newDecodeError("node_count is zero: a graph always has a root node")
	}
	if uint64(count)*minEncodedNodeSize > uint64(r.remaining()) {
		return nil, newDecodeError("node_count implies more data than is present")
	}

	nodes := make([]indexedNode, count)
	for i := uint32(0); i < count; i++ {
		finalByte, err := r.readU8()
		if err != nil {
			return nil, err
		}
		id, err := r.readU32()
		if err != nil {
			return nil, err
		}
		if id != i {
			return nil, newDecodeError("node id does not match its position")
		}
		edgeCount, err := r.readU8()
		if err != nil {
			return nil, err
		}

		edges := make([]indexedEdge, edgeCount)
		for j := uint8(0); j < edgeCount; j++ {
			letter, err := r.readU8()
			if err != nil {
				return nil, err
			}
			to, err := r.readU32()
			if err != nil {
				return nil, err
			}
			if to >= count {
				return nil, newDecodeError("child index out of range")
			}
			edges[j] = indexedEdge{letter: letter, to: to}
		}

		nodes[i] = indexedNode{final: finalByte != 0, edges: edges}
	}

	if r.remaining() != 0 {
		return nil, newDecodeError("trailing bytes after last node")
	}

	return &Graph{nodes: nodes}, nil
}

// Save writes the graph's binary encoding to path.
func (g *Graph) Save(path string) error {
	return os.WriteFile(path, g.Serialize(), 0644)
}

// Load reads a graph previously written by Save. The file is
// memory-mapped and read once into a contiguous buffer before decoding,
// since a Graph is a fully materialized in-memory array.
func Load(path string) (*Graph, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(io.NewSectionReader(r, 0, int64(r.Len())))
	if err != nil {
		return nil, err
	}

	return Deserialize(data)
}
