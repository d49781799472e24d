package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// OutputPath returns dir/<prefix>_<YYYY_MM_DD>.html for the given day
func OutputPath(dir, prefix string, now time.Time) string {
	return filepath.Join(dir, prefix+"_"+now.Format("2006_01_02")+".html")
}

// WriteFile writes content to path through a temporary file in the same
// directory, so path ends up either complete or untouched. An existing
// file is replaced.
func WriteFile(path, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".arc-bookmarks-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("cannot write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot move file into place: %w", err)
	}
	return nil
}
