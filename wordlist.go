package wordgraph

import (
	"bufio"
	"os"
	"sort"
	"strings"
)

// BuildFromFile reads a newline-delimited word list from inputPath, one
// word per line, skips empty lines, folds each word to ASCII lowercase,
// sorts and deduplicates the result, builds a minimized graph from it,
// and writes the binary encoding to outputPath.
//
// The input word list is an external collaborator (spec.md §1): sorting
// and lowercasing are not core concerns, but BuildFromFile performs them
// itself so that callers can pass a raw, unsorted list rather than being
// required to pre-sort (see DESIGN.md, Open Question: sorted vs.
// internally-sorted input).
func BuildFromFile(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	words, err := readWordList(f)
	if err != nil {
		return err
	}

	b := NewBuilder()
	for _, w := range words {
		if err := b.Insert(w); err != nil {
			return err
		}
	}

	g, err := b.Finalize()
	if err != nil {
		return err
	}

	return g.Save(outputPath)
}

// readWordList reads one word per line, skipping blank lines, folding
// each to ASCII lowercase, and returns the distinct words in ascending
// byte order.
func readWordList(f *os.File) ([]string, error) {
	seen := make(map[string]bool)
	var words []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		line = asciiLower(line)
		if !seen[line] {
			seen[line] = true
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(words)
	return words, nil
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
