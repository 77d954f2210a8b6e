// Package shardlog extracts structured records from the raw output of a fuzz shard.
package shardlog

import "fmt"

// Counters holds the numbers reported by one summary line of a fuzz shard.
type Counters struct {
	Tests    int
	Success  int
	NotRun   int
	TimeOut  int
	Diverged int
}

// Add adds another Counters to this one field by field.
func (c *Counters) Add(other Counters) {
	c.Tests += other.Tests
	c.Success += other.Success
	c.NotRun += other.NotRun
	c.TimeOut += other.TimeOut
	c.Diverged += other.Diverged
}

// String renders the counters in the same shape as a summary line.
func (c Counters) String() string {
	return fmt.Sprintf("Tests: %d Success: %d Not-Run: %d Time-Out: %d Divergences: %d",
		c.Tests, c.Success, c.NotRun, c.TimeOut, c.Diverged)
}

// Divergence is one divergence report cut out of a shard's output.
// Text starts at the isolate line carrying the divergence marker and runs up to,
// but not including, the next isolate line.
type Divergence struct {
	Text string
}
