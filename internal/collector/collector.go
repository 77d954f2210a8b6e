// Package collector walks every shard of a fuzz run and reports its output.
package collector

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/AndreyAkinshin/fuzzcollect/internal/discovery"
	"github.com/AndreyAkinshin/fuzzcollect/internal/errors"
	"github.com/AndreyAkinshin/fuzzcollect/internal/fetch"
	"github.com/AndreyAkinshin/fuzzcollect/internal/output"
	"github.com/AndreyAkinshin/fuzzcollect/internal/report"
)

// Options configures a Collector.
type Options struct {
	Fetcher  fetch.Fetcher
	Renderer report.Renderer
	Mode     report.Mode
	Filter   discovery.Filter
	Output   *output.Writer
	Logger   *zap.Logger
}

// Collector fetches a run's listing and renders each shard in discovery order.
// Shards are processed one at a time.
type Collector struct {
	fetcher  fetch.Fetcher
	renderer report.Renderer
	mode     report.Mode
	filter   discovery.Filter
	out      *output.Writer
	logger   *zap.Logger
}

// Result counts what happened to the shards of one run.
type Result struct {
	Discovered    int // shard links found on the listing page
	Rendered      int // shards fetched and rendered
	Skipped       int // shards without a shard number in div/sum mode
	ParseFailures int // shards whose output could not be summarized
}

// New creates a Collector.
func New(opts Options) *Collector {
	out := opts.Output
	if out == nil {
		out = output.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		fetcher:  opts.Fetcher,
		renderer: opts.Renderer,
		mode:     opts.Mode,
		filter:   opts.Filter,
		out:      out,
		logger:   logger,
	}
}

// Run processes the run at runURI.
//
// A failed fetch, of the listing or of any shard, stops the run and is
// returned. A shard without a summary line is reported by the renderer and
// skipped. A final blank line is printed once every shard is done.
func (c *Collector) Run(ctx context.Context, runURI string) (*Result, error) {
	listing, err := c.fetcher.Fetch(ctx, runURI)
	if err != nil {
		return nil, err
	}

	shards, err := discovery.ShardLinks(strings.NewReader(listing), c.filter)
	if err != nil {
		return nil, errors.Wrap(err, "discover shards")
	}
	c.logger.Debug("discovered shards", zap.String("run", runURI), zap.Int("count", len(shards)))

	result := &Result{Discovered: len(shards)}
	for _, shard := range shards {
		if c.mode.NeedsShardID() && shard.ID == "" {
			c.out.Warning("skipping %s: no shard number in link", shard.URL)
			result.Skipped++
			continue
		}

		text, err := c.fetcher.Fetch(ctx, resolveLink(runURI, shard.URL))
		if err != nil {
			return result, err
		}

		if err := c.renderer.Render(shard, text); err != nil {
			if errors.IsKind(err, errors.KindParse) {
				c.logger.Debug("shard not summarized", zap.String("shard", shard.ID), zap.Error(err))
				result.ParseFailures++
				continue
			}
			return result, err
		}
		result.Rendered++
	}

	c.out.Println("")
	return result, nil
}

// resolveLink makes a relative shard link absolute against the run URI.
// Absolute links and links that fail to parse are returned unchanged.
func resolveLink(base, link string) string {
	ref, err := url.Parse(link)
	if err != nil || ref.IsAbs() {
		return link
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return link
	}
	return baseURL.ResolveReference(ref).String()
}
