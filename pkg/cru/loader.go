package cru

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadDirectory walks dir recursively and parses every .cru file it finds
// into the shared corpus, in lexical path order so repeated runs produce the
// same course ordering. Files are parsed sequentially; a duplicate course
// code across files keeps its first occurrence.
func (p *Parser) LoadDirectory(dir string) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".cru") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		p.ParseSource(string(data))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return nil
}
