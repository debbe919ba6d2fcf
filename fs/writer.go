// Package fs provides file-based discovery of HTML pages and storage of the
// JSON index.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// HTMLSuffix is the case-sensitive file name suffix of indexed pages.
const HTMLSuffix = ".html"

// FindHTMLFiles returns the paths of all regular files under root whose name
// ends in HTMLSuffix, relative to root and slash-separated. Symlinks count
// when they point at a regular file; pipes, sockets and devices never do. Paths are returned in
// lexical walk order so repeated runs over an unchanged tree agree.
// Subdirectories that cannot be read are skipped.
func FindHTMLFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), HTMLSuffix) {
			return nil
		}
		if !isRegular(path, d) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func isRegular(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular()
	}
	return d.Type().IsRegular()
}

// ReadText reads the file at path as UTF-8. Invalid byte sequences are
// replaced with U+FFFD and a leading byte order mark is dropped.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeUTF8(b), nil
}

// DecodeUTF8 converts b to a valid UTF-8 string.
func DecodeUTF8(b []byte) string {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}
