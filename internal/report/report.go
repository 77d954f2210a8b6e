// Package report renders the raw output of fuzz shards in one of three views.
package report

import (
	"strings"

	"github.com/AndreyAkinshin/fuzzcollect/internal/discovery"
	"github.com/AndreyAkinshin/fuzzcollect/internal/errors"
	"github.com/AndreyAkinshin/fuzzcollect/internal/output"
	"github.com/AndreyAkinshin/fuzzcollect/internal/shardlog"
	"github.com/AndreyAkinshin/fuzzcollect/internal/summary"
)

// Mode selects how shard output is reported.
type Mode string

const (
	ModeAll Mode = "all" // complete stdout of every shard
	ModeDiv Mode = "div" // divergence reports only
	ModeSum Mode = "sum" // running summary of test counts
)

// Modes returns the accepted modes in display order.
func Modes() []Mode {
	return []Mode{ModeDiv, ModeSum, ModeAll}
}

// ParseMode converts a --type value into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return "", errors.Usagef("invalid --type %q (choose from %s)", s, strings.Join(names, ", "))
}

// NeedsShardID reports whether the mode labels its output with the shard number.
func (m Mode) NeedsShardID() bool {
	return m == ModeDiv || m == ModeSum
}

// Renderer reports the output of one shard.
type Renderer interface {
	Render(shard discovery.Shard, text string) error
}

// New returns the renderer for mode. The summary renderer records into agg,
// which the caller creates once per run; ModeSum without one is an error.
func New(mode Mode, w *output.Writer, agg *summary.Aggregator) (Renderer, error) {
	switch mode {
	case ModeAll:
		return &AllRenderer{out: w}, nil
	case ModeDiv:
		return &DivergenceRenderer{out: w}, nil
	case ModeSum:
		if agg == nil {
			return nil, errors.New("summary mode needs an aggregator")
		}
		return &SummaryRenderer{out: w, agg: agg}, nil
	default:
		_, err := ParseMode(string(mode))
		return nil, err
	}
}

// AllRenderer prints the complete output of each shard.
type AllRenderer struct {
	out *output.Writer
}

// Render prints text.
func (r *AllRenderer) Render(_ discovery.Shard, text string) error {
	r.out.Emit(text)
	return nil
}

// DivergenceRenderer prints only the divergence reports of each shard.
type DivergenceRenderer struct {
	out *output.Writer
}

// Render shows the shard number as progress on stderr, then prints a header
// and every divergence report found in text. Shards without divergences
// produce no stdout output.
func (r *DivergenceRenderer) Render(shard discovery.Shard, text string) error {
	r.out.Progress("Shard: " + shard.ID + "  \r")

	divs := shardlog.ExtractDivergences(text)
	if len(divs) == 0 {
		return nil
	}
	r.out.Emit("Shard: " + shard.ID)
	for _, d := range divs {
		r.out.Emit(d.Text)
	}
	return nil
}

// SummaryRenderer adds each shard's summary lines to a running total and
// prints the total after every line.
type SummaryRenderer struct {
	out *output.Writer
	agg *summary.Aggregator
}

// Render records every summary line in text. A shard without a summary line
// is reported on stderr and returned as a parse error; the totals are left
// unchanged.
func (r *SummaryRenderer) Render(shard discovery.Shard, text string) error {
	counters := shardlog.ExtractSummaries(text)
	if len(counters) == 0 {
		r.out.Errorln("Failed to parse shard %s stdout for summary", shard.ID)
		return errors.ShardParse(shard.ID, "no summary line in shard output")
	}
	for _, c := range counters {
		r.agg.Record(shard.ID, c)
		r.out.EmitInline(r.agg.Render())
	}
	return nil
}
