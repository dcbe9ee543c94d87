package wordbrain

import (
	"bufio"
	"os"
	"strings"
	"testing"
)

// setDictionary builds a Dictionary from a fixed list of words.
func setDictionary(words ...string) Dictionary {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return DictionaryFunc(func(word string) bool {
		return set[word]
	})
}

func loadWords(t testing.TB) []string {
	file, err := os.Open("testdata/words.txt")
	if err != nil {
		t.Fatalf("failed to open words file: %v", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan words file: %v", err)
	}
	return words
}

// replay reports whether sol can be removed from g in order, by any paths, leaving it empty.
func replay(g Grid, sol Solution) bool {
	if len(sol) == 0 {
		return g.NumLetters() == 0
	}
	for _, p := range FindPaths(sol[0], g) {
		if replay(g.Without(p), sol[1:]) {
			return true
		}
	}
	return false
}
