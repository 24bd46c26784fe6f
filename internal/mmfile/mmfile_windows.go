//go:build windows

package mmfile

import (
	"os"
)

// Map reads the entire file into memory. The files this package serves
// are small enough that a file mapping buys nothing on Windows.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
