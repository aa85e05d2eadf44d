package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/tpeduzzi/clayg/decoder"
	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/logging"
	"github.com/tpeduzzi/clayg/logical"
)

// randomBulkErrors marks each edge of g independently with probability p,
// the phenomenological noise model of §1/§4.1.
func randomBulkErrors(g *graph.DecodingGraph, p float64, rng *rand.Rand) []graph.EdgeID {
	var out []graph.EdgeID
	for _, e := range g.Edges() {
		if rng.Float64() < p {
			out = append(out, e.ID())
		}
	}
	return out
}

// randomIdlingErrors models decoherence during the readout idle period: for
// idlingTau <= 0 there are no idling errors; otherwise each round-0 Normal
// (data-qubit) edge flips independently with probability 1 - e^(-1/tau),
// the standard exponential-decay approximation of a T1/T2-limited idle
// window.
func randomIdlingErrors(g *graph.DecodingGraph, idlingTau float64, rng *rand.Rand) []graph.EdgeID {
	if idlingTau <= 0 {
		return nil
	}
	p := 1 - math.Exp(-1/idlingTau)
	var out []graph.EdgeID
	for _, e := range g.Edges() {
		id := e.ID()
		if id.Kind != graph.Normal || id.Round != 0 {
			continue
		}
		if rng.Float64() < p {
			out = append(out, id)
		}
	}
	return out
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
}

// runSweep is the Monte-Carlo sweep loop supplemented from the original
// tool's main.cpp (§1 scopes it out of the core; the CLI is its home).
func runSweep(ctx context.Context, cfg sweepConfig, log zerolog.Logger) error {
	decoders, err := decoder.ParseList(cfg.DecoderSpec)
	if err != nil {
		return fmt.Errorf("argument error: %w", err)
	}
	if len(decoders) == 0 {
		return fmt.Errorf("argument error: no decoders given")
	}

	pValues, err := stepRange(cfg.PStart, cfg.PEnd, cfg.PStep)
	if err != nil {
		return fmt.Errorf("argument error: %w", err)
	}
	idlingValues, err := stepRange(cfg.IdlingStart, cfg.IdlingEnd, cfg.IdlingStep)
	if err != nil {
		return fmt.Errorf("argument error: %w", err)
	}

	dumpMgr := logging.NewDumpManager(cfg.ResultsDir)
	rng := rand.New(rand.NewSource(1))
	computer := logical.NewComputer()

	for _, dec := range decoders {
		log.Info().Str("decoder", dec.Name()).Msg("starting decoder sweep")

		resultsPath := filepath.Join(cfg.ResultsDir, "results", fmt.Sprintf("%s_d=%d.txt", dec.Name(), cfg.D))
		resultsFile, err := openAppend(resultsPath)
		if err != nil {
			return fmt.Errorf("open results file: %w", err)
		}
		resultsSink := logging.NewTextSink(resultsFile, log)

		for _, p := range pValues {
			histogram := make(map[int]int)

			for _, tau := range idlingValues {
				trials := cfg.RunsP
				if tau > 0 {
					trials = cfg.RunsIdling
				}

				failures, err := runPoint(ctx, cfg, dumpMgr, dec, computer, rng, p, tau, trials, histogram, log)
				if err != nil {
					_ = resultsFile.Close()
					return err
				}

				rate := float64(failures) / float64(trials)
				resultsSink.LogResultsEntry(rate, trials, p, tau, dec.Name())
				log.Info().
					Str("decoder", dec.Name()).
					Float64("p", p).
					Float64("idling_tau", tau).
					Float64("logical_error_rate", rate).
					Msg("point complete")
			}

			stepsPath := filepath.Join(cfg.ResultsDir, "steps", fmt.Sprintf("%s_d=%d_p=%v.txt", dec.Name(), cfg.D, p))
			stepsFile, err := openAppend(stepsPath)
			if err != nil {
				_ = resultsFile.Close()
				return fmt.Errorf("open steps file: %w", err)
			}
			logging.NewTextSink(stepsFile, log).LogGrowthSteps(p, histogram, dec.Name())
			_ = stepsFile.Close()
		}

		_ = resultsFile.Close()
	}

	return nil
}

// runPoint runs one (p, idlingTau) Monte-Carlo point for one decoder and
// returns its failure count. When cfg.Dump is set it dumps the first
// trial's graph and errors, and the corrections of every trial.
func runPoint(
	ctx context.Context,
	cfg sweepConfig,
	dumpMgr *logging.DumpManager,
	dec decoder.Decoder,
	computer *logical.Computer,
	rng *rand.Rand,
	p, tau float64,
	trials int,
	histogram map[int]int,
	log zerolog.Logger,
) (int, error) {
	var dumpSink *logging.TextSink
	var closeDump func()
	if cfg.Dump {
		dumpMgr.SetRunID(dumpMgr.RunID() + 1)
		dir, err := dumpMgr.DecoderDir(dec.Name())
		if err != nil {
			return 0, fmt.Errorf("dump dir: %w", err)
		}
		f, err := openAppend(filepath.Join(dir, fmt.Sprintf("p=%v_tau=%v.txt", p, tau)))
		if err != nil {
			return 0, fmt.Errorf("open dump file: %w", err)
		}
		dumpSink = logging.NewTextSink(f, log)
		closeDump = func() { _ = f.Close() }
		defer closeDump()
	} else {
		dumpSink = logging.NewTextSink(io.Discard, log)
	}

	failures := 0
	for trial := 0; trial < trials; trial++ {
		select {
		case <-ctx.Done():
			return failures, ctx.Err()
		default:
		}

		g := graph.RotatedSurfaceCode(cfg.D, cfg.T)
		bulkErrors := randomBulkErrors(g, p, rng)
		idlingErrors := randomIdlingErrors(g, tau, rng)
		g.Mark(bulkErrors)
		g.Mark(idlingErrors)

		if trial == 0 && cfg.Dump {
			dumpSink.LogGraph(g)
			dumpSink.LogErrors(append(append([]graph.EdgeID{}, bulkErrors...), idlingErrors...))
		}

		decoded := dec.Decode(g)
		if cfg.Dump {
			dumpSink.LogCorrections(decoded.Corrections, dec.Name())
		}
		histogram[int(decoded.DecodingSteps)]++

		computer.ClearCache()
		if computer.Compute(g, bulkErrors, idlingErrors, decoded) == 1 {
			failures++
		}
	}

	return failures, nil
}
