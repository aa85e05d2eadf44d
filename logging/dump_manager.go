package logging

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DumpManager owns the CLI's dump-directory file-system bookkeeping
// (run-scoped graph/error/correction/cluster-step dumps under
// resultsDir/runs/<runID>/...), grounded on the original tool's Logger
// directory-management routines. The core never touches a DumpManager;
// only cmd/claygd does.
type DumpManager struct {
	resultsDir string
	runID      int
}

// NewDumpManager constructs a DumpManager rooted at resultsDir.
func NewDumpManager(resultsDir string) *DumpManager {
	return &DumpManager{resultsDir: resultsDir}
}

// SetRunID sets the current run identifier, used to namespace per-run dump
// directories.
func (m *DumpManager) SetRunID(id int) { m.runID = id }

// RunID returns the current run identifier.
func (m *DumpManager) RunID() int { return m.runID }

// RunDir returns the dump directory for the current run, creating it (and
// removing any stale contents) if it does not already exist empty.
func (m *DumpManager) RunDir() (string, error) {
	dir := filepath.Join(m.resultsDir, "runs", strconv.Itoa(m.runID))
	if err := os.RemoveAll(dir); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// DecoderDir returns (creating it) the per-decoder subdirectory of the
// current run's dump directory.
func (m *DumpManager) DecoderDir(decoderName string) (string, error) {
	dir := filepath.Join(m.resultsDir, "runs", strconv.Itoa(m.runID), decoderName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// ResultsDir returns (creating it) resultsDir/results, where per-decoder
// sweep output files live.
func (m *DumpManager) ResultsDir() (string, error) {
	dir := filepath.Join(m.resultsDir, "results")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// StepsDir returns (creating it) resultsDir/steps, where growth-step
// histograms live.
func (m *DumpManager) StepsDir() (string, error) {
	dir := filepath.Join(m.resultsDir, "steps")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// ClearFilesByPattern removes every entry in dir whose name contains
// pattern as a substring.
func ClearFilesByPattern(dir, pattern string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), pattern) {
			if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

// CopyFile copies from to to, overwriting any existing destination.
func CopyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
