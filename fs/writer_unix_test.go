//go:build unix

package fs_test

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/fwojciec/sitechat/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHTMLFiles_SkipsNamedPipes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "page.html"), "")
	if err := syscall.Mkfifo(filepath.Join(root, "pipe.html"), 0644); err != nil {
		t.Skipf("mkfifo: %v", err)
	}

	paths, err := fs.FindHTMLFiles(root)

	require.NoError(t, err)
	assert.Equal(t, []string{"page.html"}, paths)
}
