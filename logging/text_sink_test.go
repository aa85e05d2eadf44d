package logging_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/logging"
)

func discardLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

func TestLogGraphWritesOneLinePerEdge(t *testing.T) {
	g := graph.RepetitionCode(3, 1)
	var buf bytes.Buffer
	logging.NewTextSink(&buf, discardLogger()).LogGraph(g)

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	require.Equal(t, len(g.Edges()), lines)
	require.Contains(t, buf.String(), "n-0-0")
}

func TestLogErrorsFormatsKindRoundIndex(t *testing.T) {
	var buf bytes.Buffer
	logging.NewTextSink(&buf, discardLogger()).LogErrors([]graph.EdgeID{
		{Kind: graph.Normal, Round: 2, Index: 5},
		{Kind: graph.Measurement, Round: 0, Index: 1},
	})

	require.Equal(t, "n-2-5\nm-0-1\n", buf.String())
}

func TestLogResultsEntryIsTabSeparated(t *testing.T) {
	var buf bytes.Buffer
	logging.NewTextSink(&buf, discardLogger()).LogResultsEntry(0.25, 1000, 0.01, 0, "uf")

	require.Equal(t, "0.01\t0.25\t1000\n", buf.String())
}

func TestLogGrowthStepsIsSortedAscending(t *testing.T) {
	var buf bytes.Buffer
	logging.NewTextSink(&buf, discardLogger()).LogGrowthSteps(0.01, map[int]int{3: 2, 1: 5, 2: 1}, "clayg")

	require.Equal(t, "1\t5\n2\t1\n3\t2\n", buf.String())
}
