package discovery

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const listingPage = `<!DOCTYPE html>
<html>
<head><title>fuzz-linux/303</title></head>
<body>
  <ul>
    <li>make_a_fuzz_shard_3
      <a href="https://logs.example/steps/make_a_fuzz_shard_3/0/stdout?format=raw">raw</a>
      <a href="https://logs.example/steps/make_a_fuzz_shard_3/0/stdout">stdout</a>
    </li>
    <li>trigger
      <a href="https://logs.example/steps/make_a_fuzz_shard__trigger__/0/stdout?format=raw">raw</a>
    </li>
    <li>make_a_fuzz_shard_1
      <a href="https://logs.example/steps/make_a_fuzz_shard_1/0/stdout?format=raw">raw</a>
    </li>
    <li>compile
      <a href="https://logs.example/steps/compile/0/stdout?format=raw">raw</a>
    </li>
    <li>make_a_fuzz_shard_2
      <a href="https://logs.example/steps/make_a_fuzz_shard_2/0/stdout?format=raw"><span>raw</span></a>
    </li>
    <li>anchor without href <a name="make_a_fuzz_shard_9">raw</a></li>
    <li>padded text <a href="make_a_fuzz_shard_8"> raw </a></li>
  </ul>
</body>
</html>`

func TestShardLinks(t *testing.T) {
	t.Parallel()

	shards, err := ShardLinks(strings.NewReader(listingPage), DefaultFilter())
	if err != nil {
		t.Fatalf("ShardLinks() error = %v", err)
	}

	want := []Shard{
		{URL: "https://logs.example/steps/make_a_fuzz_shard_3/0/stdout?format=raw", ID: "3"},
		{URL: "https://logs.example/steps/make_a_fuzz_shard_1/0/stdout?format=raw", ID: "1"},
		{URL: "https://logs.example/steps/make_a_fuzz_shard_2/0/stdout?format=raw", ID: "2"},
	}
	if diff := cmp.Diff(want, shards); diff != "" {
		t.Errorf("ShardLinks() mismatch (-want +got):\n%s", diff)
	}
}

func TestShardLinks_Filters(t *testing.T) {
	t.Parallel()

	shards, err := ShardLinks(strings.NewReader(listingPage), DefaultFilter())
	if err != nil {
		t.Fatalf("ShardLinks() error = %v", err)
	}
	for _, s := range shards {
		if strings.Contains(s.URL, DefaultTriggerMarker) {
			t.Errorf("ShardLinks() returned trigger link %q", s.URL)
		}
		if !strings.Contains(s.URL, "make_a_fuzz_shard") {
			t.Errorf("ShardLinks() returned non-shard link %q", s.URL)
		}
		if strings.HasSuffix(s.URL, "/stdout") {
			t.Errorf("ShardLinks() returned link with non-raw text %q", s.URL)
		}
	}
}

func TestShardLinks_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := ShardLinks(strings.NewReader(listingPage), DefaultFilter())
	if err != nil {
		t.Fatalf("ShardLinks() error = %v", err)
	}
	second, err := ShardLinks(strings.NewReader(listingPage), DefaultFilter())
	if err != nil {
		t.Fatalf("ShardLinks() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ShardLinks() not idempotent (-first +second):\n%s", diff)
	}
}

func TestShardLinks_Duplicates(t *testing.T) {
	t.Parallel()

	page := `<a href="/make_a_fuzz_shard_5">raw</a><a href="/make_a_fuzz_shard_5">raw</a>`
	shards, err := ShardLinks(strings.NewReader(page), DefaultFilter())
	if err != nil {
		t.Fatalf("ShardLinks() error = %v", err)
	}
	if len(shards) != 2 {
		t.Errorf("len(ShardLinks()) = %d, want 2", len(shards))
	}
}

func TestShardLinks_Empty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
	}{
		{"empty document", ""},
		{"no anchors", "<html><body><p>nothing here</p></body></html>"},
		{"only trigger", `<a href="make_a_fuzz_shard__trigger__">raw</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			shards, err := ShardLinks(strings.NewReader(tt.markup), DefaultFilter())
			if err != nil {
				t.Fatalf("ShardLinks() error = %v", err)
			}
			if shards == nil || len(shards) != 0 {
				t.Errorf("ShardLinks() = %#v, want empty non-nil slice", shards)
			}
		})
	}
}

func TestShardLinks_CustomFilter(t *testing.T) {
	t.Parallel()

	page := `<a href="/logs/nightly_shard_4.txt">log</a>
<a href="/logs/nightly_shard_5.txt">raw</a>
<a href="/logs/nightly_shard_skip_6.txt">log</a>`
	filter := Filter{LinkText: "log", ShardMarker: "nightly_shard", TriggerMarker: "skip"}

	shards, err := ShardLinks(strings.NewReader(page), filter)
	if err != nil {
		t.Fatalf("ShardLinks() error = %v", err)
	}
	want := []Shard{{URL: "/logs/nightly_shard_4.txt", ID: "4"}}
	if diff := cmp.Diff(want, shards); diff != "" {
		t.Errorf("ShardLinks() mismatch (-want +got):\n%s", diff)
	}
}

func TestShardLinks_MissingID(t *testing.T) {
	t.Parallel()

	page := `<a href="/steps/make_a_fuzz_shard/stdout">raw</a>`
	shards, err := ShardLinks(strings.NewReader(page), DefaultFilter())
	if err != nil {
		t.Fatalf("ShardLinks() error = %v", err)
	}
	if len(shards) != 1 || shards[0].ID != "" {
		t.Errorf("ShardLinks() = %#v, want one shard with empty ID", shards)
	}
}
