// Package namelist reads newline-delimited name lists.
package namelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads one name per line. Names are trimmed and lowercased; blank
// lines are skipped.
func Load(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read name list: %w", err)
	}
	return names, nil
}

// LoadFile reads the name list at path.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open name list: %w", err)
	}
	defer file.Close()
	return Load(file)
}
