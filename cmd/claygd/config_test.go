package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func baseFlags() cliFlags {
	return cliFlags{
		pStart: 0.01, pEnd: 0.02, pStep: "+0.005",
		idlingStart: 0, idlingEnd: 0, idlingStep: "+1",
		runsP: 100, runsIdling: 200,
	}
}

func TestResolveConfigFromPositionalArgsAndFlags(t *testing.T) {
	cfg, err := resolveConfig([]string{"5", "5", "uf,clayg", "/tmp/out"}, baseFlags())
	require.NoError(t, err)

	require.Equal(t, 5, cfg.D)
	require.Equal(t, 5, cfg.T)
	require.Equal(t, "uf,clayg", cfg.DecoderSpec)
	require.Equal(t, "/tmp/out", cfg.ResultsDir)
	require.Equal(t, 0.01, cfg.PStart)
	require.Equal(t, 100, cfg.RunsP)
}

func TestResolveConfigRejectsNonIntegerDOrT(t *testing.T) {
	_, err := resolveConfig([]string{"x", "5", "uf", "/tmp/out"}, baseFlags())
	require.Error(t, err)

	_, err = resolveConfig([]string{"5", "x", "uf", "/tmp/out"}, baseFlags())
	require.Error(t, err)
}

func TestResolveConfigRejectsNonPositiveDOrT(t *testing.T) {
	_, err := resolveConfig([]string{"0", "5", "uf", "/tmp/out"}, baseFlags())
	require.Error(t, err)
}

func TestResolveConfigFileOverridesFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sweep.yaml")
	contents := "p_start: 0.1\np_end: 0.2\np_step: \"+0.1\"\nruns_p: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	flags := baseFlags()
	flags.configPath = path

	cfg, err := resolveConfig([]string{"3", "3", "uf", "/tmp/out"}, flags)
	require.NoError(t, err)

	require.Equal(t, 0.1, cfg.PStart)
	require.Equal(t, 0.2, cfg.PEnd)
	require.Equal(t, "+0.1", cfg.PStep)
	require.Equal(t, 7, cfg.RunsP)
	// D/T/decoders/results are always taken from positional args, never
	// the config file.
	require.Equal(t, 3, cfg.D)
	require.Equal(t, "uf", cfg.DecoderSpec)
}

func TestResolveConfigMissingFileIsAnError(t *testing.T) {
	flags := baseFlags()
	flags.configPath = "/does/not/exist.yaml"

	_, err := resolveConfig([]string{"3", "3", "uf", "/tmp/out"}, flags)
	require.Error(t, err)
}
