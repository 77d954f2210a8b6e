package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/AndreyAkinshin/fuzzcollect/internal/errors"
)

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	uaCh := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uaCh <- r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("Tests: 1 Success: 1 Not-Run: 0 Time-Out: 0 Divergences: 0\n"))
	}))
	defer srv.Close()

	c := NewClient(Options{UserAgent: "fuzzcollect-test"})
	body, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.HasPrefix(body, "Tests: 1") {
		t.Errorf("Fetch() body = %q", body)
	}
	if gotUA := <-uaCh; gotUA != "fuzzcollect-test" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "fuzzcollect-test")
	}
}

func TestClient_Fetch_DefaultUserAgent(t *testing.T) {
	t.Parallel()

	uaCh := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uaCh <- r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	if _, err := NewClient(Options{}).Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotUA := <-uaCh; gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, DefaultUserAgent)
	}
}

func TestClient_Fetch_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewClient(Options{Logger: zap.NewNop()}).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch() error = nil, want error for 404")
	}
	if !errors.IsKind(err, errors.KindTransport) {
		t.Errorf("Fetch() error kind is not transport: %v", err)
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("Fetch() error = %v, want HTTP 404", err)
	}
}

func TestClient_Fetch_InvalidURI(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Options{}).Fetch(context.Background(), "://not a uri")
	if !errors.IsKind(err, errors.KindTransport) {
		t.Errorf("Fetch() error = %v, want transport error", err)
	}
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	uri := srv.URL
	srv.Close()

	_, err := NewClient(Options{}).Fetch(context.Background(), uri)
	if !errors.IsKind(err, errors.KindTransport) {
		t.Errorf("Fetch() error = %v, want transport error", err)
	}
}

func TestClient_Fetch_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(Options{Timeout: 50 * time.Millisecond}).Fetch(context.Background(), srv.URL)
	if !errors.IsKind(err, errors.KindTransport) {
		t.Errorf("Fetch() error = %v, want transport error on timeout", err)
	}
}

func TestClient_Fetch_CanceledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewClient(Options{}).Fetch(ctx, srv.URL); err == nil {
		t.Error("Fetch() with canceled context error = nil, want error")
	}
}
