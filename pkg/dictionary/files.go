package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en_US"

var ErrUnsupportedLanguage = errors.New("language does not exist")

// LoadFile reads one word per line. Blank lines and lines starting with '#' are skipped;
// words are lowercased.
func LoadFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// Languages lists the languages available in dir, one "<lang>.txt" word file each.
func Languages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if lang, ok := strings.CutSuffix(e.Name(), ".txt"); ok {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	return langs, nil
}

// Config locates the word files for Open.
type Config struct {
	// Dir holds one "<lang>.txt" file per language.
	Dir      string
	Language string

	// Optional.
	PersonalPath string
	ExtraPath    string
	ExcludedPath string

	MaxWordLength int
}

// Open loads the dictionary for c.Language together with the personal word list. A
// language without a word file is ErrUnsupportedLanguage.
func Open(ctx context.Context, c Config) (*WordList, *PersonalWordList, error) {
	lang := c.Language
	if lang == "" {
		lang = DefaultLanguage
	}

	words, err := LoadFile(ctx, filepath.Join(c.Dir, lang+".txt"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("LoadFile(%s): %w", lang, err)
	}

	if c.ExtraPath != "" {
		extra, err := LoadFile(ctx, c.ExtraPath)
		if err != nil {
			return nil, nil, fmt.Errorf("LoadFile(%s): %w", c.ExtraPath, err)
		}
		words = append(words, extra...)
	}

	var excluded []string
	if c.ExcludedPath != "" {
		if excluded, err = LoadFile(ctx, c.ExcludedPath); err != nil {
			return nil, nil, fmt.Errorf("LoadFile(%s): %w", c.ExcludedPath, err)
		}
	}

	var personal []string
	if c.PersonalPath != "" {
		personal, err = LoadFile(ctx, c.PersonalPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("LoadFile(%s): %w", c.PersonalPath, err)
		}
	}

	list, err := New(ctx, Params{
		Words:         words,
		PersonalWords: personal,
		ExcludedWords: excluded,
		MaxWordLength: c.MaxWordLength,
	})
	if err != nil {
		return nil, nil, err
	}
	return list, NewPersonalWordList(c.PersonalPath, list), nil
}
