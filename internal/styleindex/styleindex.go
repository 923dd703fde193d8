// Package styleindex maintains the shared SCSS index that imports every
// block's stylesheet.
package styleindex

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// ImportLine returns the import statement for a block's stylesheet.
func ImportLine(id string) string {
	return fmt.Sprintf("@import %q;", id+"/"+id)
}

// hasImport reports whether index already holds stmt on a line of its own.
func hasImport(index []byte, stmt []byte) bool {
	for _, l := range bytes.Split(index, []byte("\n")) {
		if bytes.Equal(bytes.TrimSpace(l), stmt) {
			return true
		}
	}
	return false
}

// AppendImport adds stmt as the last line of the SCSS index at path and
// reports whether the index changed. A missing index is created; an index
// that already imports stmt is left alone.
func AppendImport(fsys afero.Fs, path, stmt string) (bool, error) {
	index, err := afero.ReadFile(fsys, path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading style index %s: %w", path, err)
	}

	want := bytes.TrimSpace([]byte(stmt))
	if hasImport(index, want) {
		return false, nil
	}

	var tail bytes.Buffer
	if len(index) > 0 && index[len(index)-1] != '\n' {
		tail.WriteByte('\n')
	}
	tail.Write(want)
	tail.WriteByte('\n')

	f, err := fsys.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("opening style index %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(tail.Bytes()); err != nil {
		return false, fmt.Errorf("importing %s into %s: %w", want, path, err)
	}
	return true, nil
}
