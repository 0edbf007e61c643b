// Package filex holds small file-system helpers for attachment downloads.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile writes data to path, creating intermediate directories as needed.
func SaveFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
