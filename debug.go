package scrubline

import (
	"fmt"
	"time"
)

// debugStats holds per-frame engine and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	applied    int
	dropped    int
	mutations  int
	updateTime time.Duration
	drawCalls  int
}

// frameStats diffs two engine snapshots taken around one Update.
func frameStats(before, after EngineStats, elapsed time.Duration) debugStats {
	return debugStats{
		applied: after.Applied - before.Applied,
		dropped: (after.DroppedNotReady - before.DroppedNotReady) +
			(after.DroppedStale - before.DroppedStale),
		mutations:  after.Mutations - before.Mutations,
		updateTime: elapsed,
	}
}

// debugLog writes one frame's stats at debug level. Quiet frames are skipped.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug || stats.applied == 0 && stats.dropped == 0 && stats.mutations == 0 {
		return
	}
	logger.Debug("scrubline: frame",
		"applied", stats.applied,
		"dropped", stats.dropped,
		"mutations", stats.mutations,
		"update", stats.updateTime,
		"drawCalls", stats.drawCalls,
		"scrollY", s.viewport.ScrollY,
		"generation", s.engine.Generation())
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("scrubline debug: %s on disposed node %q", op, n.Name))
	}
}
