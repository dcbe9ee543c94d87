package dictionary

import (
	"fmt"
	"os"
	"strings"
)

// PersonalWordList is an append-only file of words the player vouched for. Every added word
// also becomes valid in the backing WordList.
//
// Duplicates are not filtered; the file is only ever appended to.
type PersonalWordList struct {
	path string
	list *WordList
}

// NewPersonalWordList appends to the file at path. An empty path keeps additions in memory.
func NewPersonalWordList(path string, list *WordList) *PersonalWordList {
	return &PersonalWordList{path: path, list: list}
}

func (p *PersonalWordList) Path() string {
	return p.path
}

func (p *PersonalWordList) AddWord(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return fmt.Errorf("empty word")
	}

	if p.path != "" {
		f, err := os.OpenFile(p.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(f, word); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if p.list != nil {
		p.list.Add(word)
	}
	return nil
}
