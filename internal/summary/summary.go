// Package summary accumulates per-shard summary counters into run totals.
package summary

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/fuzzcollect/internal/shardlog"
)

// Aggregator holds the running totals of one summary pass over a run.
// Create one per invocation; it is not safe for concurrent use.
type Aggregator struct {
	totals  shardlog.Counters
	failing []string
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Record adds counters reported by shard to the totals.
//
// The shard is listed as failing only when the line reports exactly one
// divergence. Lines reporting more are counted in the totals but do not add
// the shard to the failing list.
func (a *Aggregator) Record(shard string, counters shardlog.Counters) {
	if counters.Diverged == 1 {
		a.failing = append(a.failing, shard)
	}
	a.totals.Add(counters)
}

// Totals returns the running totals.
func (a *Aggregator) Totals() shardlog.Counters {
	return a.totals
}

// FailingShards returns the shards recorded with a divergence, in record order.
func (a *Aggregator) FailingShards() []string {
	out := make([]string, len(a.failing))
	copy(out, a.failing)
	return out
}

// Render formats the totals as a progress line. The line ends with a carriage
// return and no newline so the next Render overwrites it on a terminal.
func (a *Aggregator) Render() string {
	failing := "none"
	if len(a.failing) > 0 {
		failing = strings.Join(a.failing, ", ")
	}
	return fmt.Sprintf("%s (failing shards: %s)    \r", a.totals, failing)
}
