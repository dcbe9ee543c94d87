package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const configDelim = ":"

// ReadConfig parses key:value lines. Lines without exactly one delimiter are skipped, and a
// missing file reads as an empty config.
func ReadConfig(path string) (map[string]string, error) {
	config := make(map[string]string)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := splitParam(scanner.Text())
		if !ok {
			continue
		}
		config[key] = value
	}
	return config, scanner.Err()
}

// WriteConfigParam sets key to value in the config file at path, replacing the first line for
// key or appending one. The file is rewritten through a temporary file next to it.
func WriteConfigParam(path, key, value string) error {
	var lines []string
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if len(data) > 0 {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	param := fmt.Sprintf("%s%s%s", key, configDelim, value)
	found := false
	for i, line := range lines {
		if k, _, ok := splitParam(line); ok && k == key {
			lines[i] = param
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, param)
	}

	tmp := filepath.Join(filepath.Dir(path), "~"+filepath.Base(path))
	if err := os.WriteFile(tmp, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func splitParam(line string) (string, string, bool) {
	parts := strings.Split(strings.TrimSpace(line), configDelim)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
