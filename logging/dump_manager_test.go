package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpeduzzi/clayg/logging"
)

func TestRunDirIsNamespacedByRunID(t *testing.T) {
	root := t.TempDir()
	m := logging.NewDumpManager(root)
	m.SetRunID(3)

	dir, err := m.RunDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "runs", "3"), dir)
	require.DirExists(t, dir)
}

func TestRunDirClearsStaleContents(t *testing.T) {
	root := t.TempDir()
	m := logging.NewDumpManager(root)
	m.SetRunID(1)

	dir, err := m.RunDir()
	require.NoError(t, err)
	stale := filepath.Join(dir, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))

	dir2, err := m.RunDir()
	require.NoError(t, err)
	require.Equal(t, dir, dir2)
	require.NoFileExists(t, stale)
}

func TestDecoderDirNestsUnderRunDir(t *testing.T) {
	root := t.TempDir()
	m := logging.NewDumpManager(root)
	m.SetRunID(2)

	dir, err := m.DecoderDir("clayg")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "runs", "2", "clayg"), dir)
	require.DirExists(t, dir)
}

func TestResultsAndStepsDirsAreSiblingsOfRuns(t *testing.T) {
	root := t.TempDir()
	m := logging.NewDumpManager(root)

	results, err := m.ResultsDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "results"), results)

	steps, err := m.StepsDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "steps"), steps)
}

func TestClearFilesByPattern(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.txt")
	drop := filepath.Join(dir, "drop_tmp.txt")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(drop, []byte("x"), 0o644))

	require.NoError(t, logging.ClearFilesByPattern(dir, "_tmp"))

	require.FileExists(t, keep)
	require.NoFileExists(t, drop)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, logging.CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "payload", string(got))
}
