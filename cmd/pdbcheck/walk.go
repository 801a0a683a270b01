package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// A fileRes gives us the name of the next file, but also includes
// room for an error
type fileRes struct {
	name string
	err  error
}

// errorName sticks a problem causing filename on an error message
func errorName(fname string, e error) error {
	return fmt.Errorf("working on %q: %w", fname, e)
}

// nextPfile walks the tree starting from parentPath and sends the
// name of every regular file down nmChan. Hidden files and
// directories are skipped.
// We stop after maxFile files, but if maxFile <= 0, we just read
// until there are no more.
func nextPfile(nmChan chan<- fileRes, parentPath string, maxFile int) {
	defer close(nmChan)
	ndone := 0
	err := filepath.WalkDir(parentPath, func(fpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return errorName(fpath, err)
		}
		if strings.HasPrefix(d.Name(), ".") && fpath != parentPath {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		nmChan <- fileRes{fpath, nil}
		ndone++
		if maxFile > 0 && ndone >= maxFile {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		nmChan <- fileRes{"", err}
	}
}
