package shardlog

import (
	"regexp"
	"strconv"
)

// DefaultShardMarker is the link fragment that names a fuzz shard.
const DefaultShardMarker = "make_a_fuzz_shard"

// Static regexes for fuzz shard output.
// Compiled once at package init.
var (
	// isolateRegex marks the start of every isolate report and doubles as
	// the boundary that ends a divergence block.
	isolateRegex = regexp.MustCompile(`Isolate `)

	// divergenceHeadRegex matches the isolate line of a divergence report.
	divergenceHeadRegex = regexp.MustCompile(`^Isolate.+? !DIVERGENCE! `)

	// summaryRegex matches a summary line. Older dartfuzz builds print a stray
	// colon after the Not-Run count, so it is optional.
	summaryRegex = regexp.MustCompile(`(?m)^Tests: (\d+) Success: (\d+) Not-Run: (\d+):? Time-Out: (\d+) Divergences: (\d+)$`)

	defaultShardRegex = CompileShardPattern(DefaultShardMarker)
)

// CompileShardPattern returns a regex that captures the shard number following
// marker + "_" in a link. The last occurrence wins.
func CompileShardPattern(marker string) *regexp.Regexp {
	return regexp.MustCompile(`.*` + regexp.QuoteMeta(marker) + `_(\d+)`)
}

// ShardID extracts the shard number from a link such as
// ".../make_a_fuzz_shard_17/stdout". ok is false if the link carries none.
func ShardID(link string) (id string, ok bool) {
	return ShardIDWith(defaultShardRegex, link)
}

// ShardIDWith is like ShardID but uses a pattern from CompileShardPattern.
func ShardIDWith(pattern *regexp.Regexp, link string) (string, bool) {
	m := pattern.FindStringSubmatch(link)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// ExtractDivergences returns the divergence reports found in text, in order.
//
// Text is cut at every "Isolate " marker, wherever it appears on a line. A
// report is a piece whose first line contains " !DIVERGENCE! " followed by at
// least one more character. The last piece has no closing marker and is never
// returned.
func ExtractDivergences(text string) []Divergence {
	bounds := isolateRegex.FindAllStringIndex(text, -1)
	if len(bounds) < 2 {
		return nil
	}

	var divs []Divergence
	for i := 0; i+1 < len(bounds); i++ {
		segment := text[bounds[i][0]:bounds[i+1][0]]
		head := divergenceHeadRegex.FindStringIndex(segment)
		if head == nil || head[1] >= len(segment) {
			continue
		}
		divs = append(divs, Divergence{Text: segment})
	}
	return divs
}

// ExtractSummaries returns the counters of every summary line in text, in order.
// Lines whose numbers overflow int are skipped.
func ExtractSummaries(text string) []Counters {
	matches := summaryRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	summaries := make([]Counters, 0, len(matches))
	for _, m := range matches {
		var fields [5]int
		valid := true
		for i := range fields {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				valid = false
				break
			}
			fields[i] = n
		}
		if !valid {
			continue
		}
		summaries = append(summaries, Counters{
			Tests:    fields[0],
			Success:  fields[1],
			NotRun:   fields[2],
			TimeOut:  fields[3],
			Diverged: fields[4],
		})
	}
	return summaries
}
