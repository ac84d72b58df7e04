/*
Package wordgraph is an implementation of a Directed Acyclic Word Graph
(DAWG): a minimal deterministic automaton that accepts a finite set of
lowercase words.

* Construction is incremental: words must be presented to a Builder in
  strictly ascending byte order, one at a time. The builder minimizes
  as it goes, so no separate post-pass over the whole graph is needed.
* The built graph is stored as a dense array of nodes addressed by
  integer index rather than pointer, so it can be serialized byte for
  byte and shared across goroutines without copying.
* Beyond exact membership, the graph supports a constrained anagram
  search: given a rack of letters (with an optional wildcard) and a set
  of fixed letter positions, it enumerates every accepted word of a
  given length that the rack can spell.

To build a graph, create a Builder with NewBuilder, Insert words in
order, then call Finalize to obtain a *Graph. BuildFromFile does this
for a newline-delimited word list file in one call. A *Graph can be
written to disk with Save and read back with Load, or encoded directly
with Serialize/Deserialize.
*/
package wordgraph
