// Package inventory reads the fleet address list consumed by the inspector.
package inventory

import (
	"bufio"
	"os"
	"strings"

	"codeberg.org/mutker/switchhealth/internal/errors"
)

// Load returns the device addresses from a one-per-line text file, in file
// order. Blank lines and "#" comments are skipped. An unreadable or empty
// inventory is an error; there is nothing to report on without one.
func Load(path string) ([]string, error) {
	errFactory := errors.New()

	f, err := os.Open(path)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrReadInventory, err)
	}
	defer f.Close()

	var addrs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addrs = append(addrs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadInventory, err)
	}

	if len(addrs) == 0 {
		return nil, errFactory.WithData(errors.ErrEmptyInventory, path)
	}

	return addrs, nil
}
