// Command wordgraph builds, queries, and inspects DAWG files from the
// command line. It is a thin shell around package wordgraph: it owns no
// graph algorithms itself, only argument parsing and file I/O.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/milden6/wordgraph"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "build":
		err = runBuild(os.Args[2:])
	case "lookup":
		err = runLookup(os.Args[2:])
	case "anagram":
		err = runAnagram(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "wordgraph:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  wordgraph build <wordlist.txt> <out.dag>")
	fmt.Fprintln(os.Stderr, "  wordgraph lookup <graph.dag> <word>")
	fmt.Fprintln(os.Stderr, "  wordgraph anagram <graph.dag> <rack> <length> [pos=letter,...]")
}

func runBuild(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("build requires <wordlist.txt> <out.dag>")
	}
	return wordgraph.BuildFromFile(args[0], args[1])
}

func runLookup(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("lookup requires <graph.dag> <word>")
	}
	g, err := wordgraph.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Println(g.Lookup(args[1]))
	return nil
}

func runAnagram(args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("anagram requires <graph.dag> <rack> <length> [pos=letter,...]")
	}
	g, err := wordgraph.Load(args[0])
	if err != nil {
		return err
	}

	length, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid length %q: %w", args[2], err)
	}

	fixed, err := parseFixed(args, length)
	if err != nil {
		return err
	}

	for _, w := range g.Anagrams([]byte(args[1]), length, fixed, '?') {
		fmt.Println(w)
	}
	return nil
}

// parseFixed parses the optional "pos=letter,pos=letter" argument into
// a position->letter map.
func parseFixed(args []string, length int) (map[int]byte, error) {
	if len(args) != 4 {
		return nil, nil
	}
	fixed := make(map[int]byte)
	for _, pair := range strings.Split(args[3], ",") {
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || len(kv[1]) != 1 {
			return nil, fmt.Errorf("invalid fixed entry %q", pair)
		}
		pos, err := strconv.Atoi(kv[0])
		if err != nil {
			return nil, fmt.Errorf("invalid fixed position %q: %w", kv[0], err)
		}
		if pos < 0 || pos >= length {
			return nil, fmt.Errorf("fixed position %d out of range [0,%d)", pos, length)
		}
		fixed[pos] = kv[1][0]
	}
	return fixed, nil
}
