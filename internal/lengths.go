package internal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadLengths reads one word length per line from r until the lengths add up to at least
// numLetters. Blank lines are skipped.
func ReadLengths(r io.Reader, numLetters int) ([]int, error) {
	return ScanLengths(bufio.NewScanner(r), numLetters)
}

// ScanLengths is ReadLengths over a scanner the caller keeps reading from afterwards.
func ScanLengths(scanner *bufio.Scanner, numLetters int) ([]int, error) {
	var lengths []int
	remaining := numLetters

	for remaining > 0 && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := parseLength(line)
		if err != nil {
			return nil, err
		}
		lengths = append(lengths, n)
		remaining -= n
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if remaining > 0 {
		return nil, fmt.Errorf("input ended with %d letters unaccounted for", remaining)
	}
	return lengths, nil
}

// ParseLengths parses a comma or space separated list of word lengths, e.g. "3,4,2".
func ParseLengths(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no word lengths in %q", s)
	}

	lengths := make([]int, len(fields))
	for i, f := range fields {
		n, err := parseLength(f)
		if err != nil {
			return nil, err
		}
		lengths[i] = n
	}
	return lengths, nil
}

func parseLength(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("word length %q is not a number: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("word length must be positive, got %d", n)
	}
	return n, nil
}

// Sum adds up lengths.
func Sum(lengths []int) int {
	total := 0
	for _, n := range lengths {
		total += n
	}
	return total
}
