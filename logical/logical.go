package logical

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/result"
	"github.com/tpeduzzi/clayg/unionfind"
)

// Computer evaluates the logical-parity observable (§4.7). It caches the
// single-layer projection of the last graph it was asked about, and caches
// the final parity bit itself, FIFO-evicted, keyed by a hash of the
// idling-error edge set only: a cached bit is returned for any later call
// with the same idling errors, whatever its bulk errors and corrections.
type Computer struct {
	lastFull *graph.DecodingGraph
	single   *graph.DecodingGraph

	cache    map[uint64]int
	order    []uint64
	capacity int
}

// cacheCapacity is the FIFO cache's fixed capacity (§4.7).
const cacheCapacity = 10000

// NewComputer constructs an empty Computer.
func NewComputer() *Computer {
	return &Computer{cache: make(map[uint64]int), capacity: cacheCapacity}
}

// ClearCache empties both the hash map and the FIFO eviction order.
func (c *Computer) ClearCache() {
	c.cache = make(map[uint64]int)
	c.order = nil
}

func (c *Computer) singleLayerFor(g *graph.DecodingGraph) *graph.DecodingGraph {
	if c.single == nil || c.lastFull != g {
		c.single = graph.SingleLayerCopy(g)
		c.lastFull = g
	}
	return c.single
}

// hashEdgeIDs mixes a sorted, order-independent 64-bit FNV-1a hash over
// edge identity triples.
func hashEdgeIDs(ids []graph.EdgeID) uint64 {
	sorted := append([]graph.EdgeID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Round != b.Round {
			return a.Round < b.Round
		}
		return a.Index < b.Index
	})

	h := fnv.New64a()
	var buf [9]byte
	for _, id := range sorted {
		buf[0] = byte(id.Kind)
		binary.LittleEndian.PutUint32(buf[1:5], uint32(id.Round))
		binary.LittleEndian.PutUint32(buf[5:9], uint32(id.Index))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

func (c *Computer) lookup(key uint64) (int, bool) {
	v, ok := c.cache[key]
	return v, ok
}

func (c *Computer) store(key uint64, bit int) {
	if _, exists := c.cache[key]; exists {
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.cache, oldest)
	}
	c.cache[key] = bit
	c.order = append(c.order, key)
}

// Compute evaluates the logical-parity bit for g given the physical bulk
// errors, idling errors and a decoder's DecodingResult (§4.7 steps 1-5).
func (c *Computer) Compute(g *graph.DecodingGraph, bulkErrors, idlingErrors []graph.EdgeID, decoded result.DecodingResult) int {
	key := hashEdgeIDs(idlingErrors)
	if v, ok := c.lookup(key); ok {
		return v
	}

	single := c.singleLayerFor(g)
	bufSize := len(single.Edges())
	final := make([]bool, bufSize)

	toggle := func(ids []graph.EdgeID) {
		for _, id := range ids {
			if id.Kind != graph.Normal || id.Round > decoded.ConsideredUpToRound {
				continue
			}
			if id.Index < 0 || id.Index >= bufSize {
				continue
			}
			final[id.Index] = !final[id.Index]
		}
	}
	toggle(bulkErrors)
	toggle(idlingErrors)
	toggle(decoded.Corrections)

	single.Reset()
	for _, n := range single.Nodes() {
		if n.ID().Kind != graph.Bulk {
			continue
		}
		parity := false
		for _, e := range n.Edges() {
			if final[e.ID().Index] {
				parity = !parity
			}
		}
		n.SetMarked(parity)
	}

	classical := unionfind.New().Decode(single)
	for _, id := range classical.Corrections {
		if id.Index >= 0 && id.Index < bufSize {
			final[id.Index] = !final[id.Index]
		}
	}

	bit := 0
	for idx := range single.LogicalEdgeIDs() {
		if final[idx] {
			bit ^= 1
		}
	}

	c.store(key, bit)

	return bit
}
