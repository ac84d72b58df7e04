package wordgraph

import "sort"

// Anagrams returns every lowercase word accepted by the graph whose
// length is exactly wordLength, where each non-fixed position is
// satisfied by consuming one rack letter (or one blank, which stands in
// for whatever letter the graph offers at that position), and every
// fixed position equals its required letter without consuming a rack
// letter. Each rack letter or blank is used at most once per returned
// word. A word entirely prescribed by fixed is never returned.
//
// Anagrams never fails: a non-positive wordLength, or a fixed position
// outside [0, wordLength), simply yields no results (spec.md §7 gives
// this operation no error channel).
func (g *Graph) Anagrams(rack []byte, wordLength int, fixed map[int]byte, blank byte) []string {
	if wordLength <= 0 {
		return nil
	}
	for pos := range fixed {
		if pos < 0 || pos >= wordLength {
			return nil
		}
	}
	if wordLength <= len(fixed) {
		return nil
	}

	available := make(map[byte]int, len(rack))
	for _, l := range rack {
		available[l]++
	}
	remainingFixed := make(map[int]byte, len(fixed))
	for k, v := range fixed {
		remainingFixed[k] = v
	}

	var results []string
	prefix := make([]byte, 0, wordLength)

	var search func(node *indexedNode)
	search = func(node *indexedNode) {
		pos := len(prefix)

		if letter, ok := remainingFixed[pos]; ok {
			to, hasEdge := node.edgeTo(letter)
			if !hasEdge {
				return
			}
			delete(remainingFixed, pos)
			prefix = append(prefix, letter)
			search(&g.nodes[to])
			prefix = prefix[:len(prefix)-1]
			remainingFixed[pos] = letter
			return
		}

		if pos == wordLength {
			if node.final && len(remainingFixed) == 0 && wordLength > len(fixed) {
				results = append(results, string(prefix))
			}
			return
		}

		for _, e := range node.edges {
			if available[e.letter] > 0 {
				available[e.letter]--
				prefix = append(prefix, e.letter)
				search(&g.nodes[e.to])
				prefix = prefix[:len(prefix)-1]
				available[e.letter]++
			} else if available[blank] > 0 {
				available[blank]--
				prefix = append(prefix, e.letter)
				search(&g.nodes[e.to])
				prefix = prefix[:len(prefix)-1]
				available[blank]++
			}
		}
	}

	search(&g.nodes[0])

	sort.Strings(results)
	return results
}
