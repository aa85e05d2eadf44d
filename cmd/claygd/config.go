package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// sweepConfig is the fully-resolved configuration for one claygd run.
type sweepConfig struct {
	D, T        int
	DecoderSpec string
	ResultsDir  string

	PStart, PEnd float64
	PStep        string

	IdlingStart, IdlingEnd float64
	IdlingStep             string

	Dump       bool
	RunsP      int
	RunsIdling int
}

// fileConfig is the optional --config YAML document. When present, it
// fully describes the sweep in place of the flag-style overrides; the
// positional D/T/decoders/results arguments are always taken from the
// command line.
type fileConfig struct {
	PStart      float64 `yaml:"p_start"`
	PEnd        float64 `yaml:"p_end"`
	PStep       string  `yaml:"p_step"`
	IdlingStart float64 `yaml:"idling_time_constant_start"`
	IdlingEnd   float64 `yaml:"idling_time_constant_end"`
	IdlingStep  string  `yaml:"idling_time_constant_step"`
	Dump        bool    `yaml:"dump"`
	RunsP       int     `yaml:"runs_p"`
	RunsIdling  int     `yaml:"runs_idling"`
}

// resolveConfig parses the positional arguments and combines them with
// either --config's YAML document or the flag-style overrides.
func resolveConfig(args []string, flags cliFlags) (sweepConfig, error) {
	d, err := strconv.Atoi(args[0])
	if err != nil {
		return sweepConfig{}, fmt.Errorf("D must be an integer: %w", err)
	}
	t, err := strconv.Atoi(args[1])
	if err != nil {
		return sweepConfig{}, fmt.Errorf("T must be an integer: %w", err)
	}
	if d < 1 || t < 1 {
		return sweepConfig{}, fmt.Errorf("D and T must both be >= 1")
	}

	cfg := sweepConfig{
		D:           d,
		T:           t,
		DecoderSpec: args[2],
		ResultsDir:  args[3],

		PStart: flags.pStart,
		PEnd:   flags.pEnd,
		PStep:  flags.pStep,

		IdlingStart: flags.idlingStart,
		IdlingEnd:   flags.idlingEnd,
		IdlingStep:  flags.idlingStep,

		Dump:       flags.dump,
		RunsP:      flags.runsP,
		RunsIdling: flags.runsIdling,
	}

	if flags.configPath == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(flags.configPath)
	if err != nil {
		return sweepConfig{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return sweepConfig{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.PStart, cfg.PEnd, cfg.PStep = fc.PStart, fc.PEnd, fc.PStep
	cfg.IdlingStart, cfg.IdlingEnd, cfg.IdlingStep = fc.IdlingStart, fc.IdlingEnd, fc.IdlingStep
	cfg.Dump = fc.Dump
	cfg.RunsP = fc.RunsP
	cfg.RunsIdling = fc.RunsIdling

	return cfg, nil
}
