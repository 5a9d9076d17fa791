package linelist_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, content string) string {
	dir, err := os.MkdirTemp("", "test_*")
	require.NoError(t, err, "dir should be created")

	t.Cleanup(func() {
		deleteTestFiles(t, dir)
	})

	fileName := filepath.Join(dir, fmt.Sprintf("test_%d", time.Now().UnixNano()))

	f, err := os.Create(fileName)
	require.NoError(t, err, "file must be created")

	fmt.Fprint(f, content)

	err = f.Close()
	require.NoError(t, err, "file must be closed")

	return fileName
}

func deleteTestFiles(t *testing.T, path string) {
	err := os.RemoveAll(path)
	require.NoError(t, err, "path should be removed")
}
