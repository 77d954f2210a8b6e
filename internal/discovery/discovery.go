// Package discovery finds the shard log links on a fuzz run's listing page.
package discovery

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/AndreyAkinshin/fuzzcollect/internal/shardlog"
)

// Default filter values for LUCI build pages.
const (
	DefaultLinkText      = "raw"
	DefaultTriggerMarker = "__trigger__"
)

// Shard is a shard log location found on the listing page.
type Shard struct {
	URL string // link target as written in the markup
	ID  string // shard number taken from URL; empty if URL carries none
}

// Filter selects which anchors are shard log links.
type Filter struct {
	LinkText      string // anchor text must equal this exactly
	ShardMarker   string // href must contain this
	TriggerMarker string // href must not contain this
}

// DefaultFilter returns the filter for make_a_fuzz runs.
func DefaultFilter() Filter {
	return Filter{
		LinkText:      DefaultLinkText,
		ShardMarker:   shardlog.DefaultShardMarker,
		TriggerMarker: DefaultTriggerMarker,
	}
}

// matches reports whether an anchor with the given text and href passes the filter.
func (f Filter) matches(text, href string) bool {
	if text != f.LinkText {
		return false
	}
	if !strings.Contains(href, f.ShardMarker) {
		return false
	}
	if f.TriggerMarker != "" && strings.Contains(href, f.TriggerMarker) {
		return false
	}
	return true
}

// ShardLinks parses listing markup and returns the shard log links in document
// order. Links are neither deduplicated nor validated. A page without shard
// links yields an empty result and no error.
func ShardLinks(markup io.Reader, filter Filter) ([]Shard, error) {
	doc, err := html.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	idPattern := shardlog.CompileShardPattern(filter.ShardMarker)
	shards := []Shard{}
	walkAnchors(doc, func(n *html.Node) {
		href, ok := getAttr(n, "href")
		if !ok {
			return
		}
		if !filter.matches(textContent(n), href) {
			return
		}
		id, _ := shardlog.ShardIDWith(idPattern, href)
		shards = append(shards, Shard{URL: href, ID: id})
	})
	return shards, nil
}

// walkAnchors calls fn for every <a> element under n in document order.
func walkAnchors(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode && n.Data == "a" {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkAnchors(c, fn)
	}
}

// textContent returns the concatenated text of all text nodes under n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
