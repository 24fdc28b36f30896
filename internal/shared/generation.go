package shared

import "sync/atomic"

// Generation is a per-flow supersession counter. Each new request of a flow
// takes the next generation; a resolution is applied only if its generation is
// still current, so a stale response never overwrites a newer one. The
// in-flight call itself is not aborted.
type Generation struct {
	current atomic.Uint64
}

// Next advances the counter and returns the new generation.
func (g *Generation) Next() uint64 {
	return g.current.Add(1)
}

// IsCurrent reports whether gen is still the latest issued generation.
func (g *Generation) IsCurrent(gen uint64) bool {
	return g.current.Load() == gen
}
