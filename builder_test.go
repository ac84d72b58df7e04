package wordgraph_test

import (
	"errors"
	"testing"

	"github.com/milden6/wordgraph"
)

func buildGraph(t *testing.T, words []string) *wordgraph.Graph {
	t.Helper()
	b := wordgraph.NewBuilder()
	for _, w := range words {
		if err := b.Insert(w); err != nil {
			t.Fatalf("Insert(%q) failed: %v", w, err)
		}
	}
	g, err := b.Finalize()
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	return g
}

func TestLookupAcceptsInsertedWords(t *testing.T) {
	words := []string{"car", "cars", "cart", "cat", "cats"}
	g := buildGraph(t, words)

	for _, w := range words {
		if !g.Lookup(w) {
			t.Errorf("Lookup(%q) = false, want true", w)
		}
	}

	if g.Lookup("carp") {
		t.Errorf("Lookup(%q) = true, want false", "carp")
	}

	if !g.Lookup("CAT") {
		t.Errorf("Lookup(%q) should case-fold and accept", "CAT")
	}
}

func TestLookupRejectsNonASCII(t *testing.T) {
	g := buildGraph(t, []string{"cat"})
	if g.Lookup("café") {
		t.Errorf("Lookup of a non-ASCII word should be false")
	}
}

func TestInsertRejectsEmptyWord(t *testing.T) {
	b := wordgraph.NewBuilder()
	if err := b.Insert(""); !errors.Is(err, wordgraph.ErrInvalidArgument) {
		t.Errorf("Insert(\"\") = %v, want ErrInvalidArgument", err)
	}
}

func TestInsertRejectsOutOfOrder(t *testing.T) {
	b := wordgraph.NewBuilder()
	if err := b.Insert("cat"); err != nil {
		t.Fatalf("Insert(cat) failed: %v", err)
	}
	if err := b.Insert("bat"); !errors.Is(err, wordgraph.ErrOrderViolation) {
		t.Errorf("Insert(bat) after cat = %v, want ErrOrderViolation", err)
	}
	if err := b.Insert("cat"); !errors.Is(err, wordgraph.ErrOrderViolation) {
		t.Errorf("Insert(cat) twice = %v, want ErrOrderViolation", err)
	}
}

func TestInsertRejectsAfterFinalize(t *testing.T) {
	b := wordgraph.NewBuilder()
	_ = b.Insert("cat")
	if _, err := b.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if err := b.Insert("dog"); !errors.Is(err, wordgraph.ErrPostFinalizeMutation) {
		t.Errorf("Insert after Finalize = %v, want ErrPostFinalizeMutation", err)
	}
}

func TestMinimizationSharesStructurallyEquivalentSuffixes(t *testing.T) {
	// bad/mad/pad all share the suffix "ad", and the single-child nodes
	// leading into it are themselves structurally identical, so the
	// whole set minimizes down to a single chain: root -> (shared
	// first-letter node) -> (shared 'a') -> (shared final 'd'), 4 nodes
	// total instead of the 10 a plain unshared trie would need.
	g := buildGraph(t, []string{"bad", "mad", "pad"})

	if g.NumNodes() != 4 {
		t.Errorf("NumNodes() = %d, want 4 (full suffix sharing across all three branches)", g.NumNodes())
	}

	for _, w := range []string{"bad", "mad", "pad"} {
		if !g.Lookup(w) {
			t.Errorf("Lookup(%q) = false, want true", w)
		}
	}
}

func TestEveryWordOutsideListMisses(t *testing.T) {
	words := []string{"act", "cat", "tact"}
	g := buildGraph(t, words)

	for _, miss := range []string{"a", "ac", "ca", "catt", "tac"} {
		if g.Lookup(miss) {
			t.Errorf("Lookup(%q) = true, want false", miss)
		}
	}
}
