package primitives

import "fmt"

// LetterBag efficiently represents a multiset of letters.
//
// Lowercase ASCII letters are counted in a fixed table; any other rune (accented letters in
// non-English grids, for example) goes to an overflow map.
type LetterBag struct {
	counts [26]int
	other  map[rune]int
	total  int
}

func NewLetterBag() *LetterBag {
	return &LetterBag{}
}

// LetterBagOf returns a bag holding every rune of word.
func LetterBagOf(word string) *LetterBag {
	b := NewLetterBag()
	for _, r := range word {
		b.Add(r)
	}
	return b
}

// Add adds one occurrence of a letter to the bag.
func (b *LetterBag) Add(r rune) {
	b.total++
	if r >= 'a' && r <= 'z' {
		b.counts[r-'a']++
		return
	}
	if b.other == nil {
		b.other = make(map[rune]int)
	}
	b.other[r]++
}

// Remove removes one occurrence of a letter from the bag.
func (b *LetterBag) Remove(r rune) error {
	if !b.Contains(r) {
		return fmt.Errorf("letter %q is not in the bag", r)
	}
	b.total--
	if r >= 'a' && r <= 'z' {
		b.counts[r-'a']--
		return nil
	}
	b.other[r]--
	if b.other[r] == 0 {
		delete(b.other, r)
	}
	return nil
}

// AddAll adds all letters from another bag to this bag.
func (b *LetterBag) AddAll(other *LetterBag) {
	for i, n := range other.counts {
		b.counts[i] += n
	}
	for r, n := range other.other {
		if b.other == nil {
			b.other = make(map[rune]int)
		}
		b.other[r] += n
	}
	b.total += other.total
}

// Contains checks if at least one occurrence of a letter is in the bag.
func (b *LetterBag) Contains(r rune) bool {
	return b.Count(r) > 0
}

// Count returns the number of occurrences of a letter.
func (b *LetterBag) Count(r rune) int {
	if r >= 'a' && r <= 'z' {
		return b.counts[r-'a']
	}
	return b.other[r]
}

// Clone returns an independent copy of the bag.
func (b *LetterBag) Clone() *LetterBag {
	c := NewLetterBag()
	c.AddAll(b)
	return c
}

// Covers reports whether every letter of word, with multiplicity, is available in the bag.
func (b *LetterBag) Covers(word string) bool {
	rest := b.Clone()
	for _, r := range word {
		if rest.Remove(r) != nil {
			return false
		}
	}
	return true
}

// Len returns the total number of letters in the bag.
func (b *LetterBag) Len() int {
	return b.total
}
