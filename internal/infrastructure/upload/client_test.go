package upload

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/splcricket/auction-hall/internal/platform/logging"
	"github.com/splcricket/auction-hall/internal/platform/resilience"
	"github.com/splcricket/auction-hall/internal/usecase"
)

func TestClientUpload_StoresObjectAndReturnsPublicURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/object/player-photos/players/rohit-gupta.jpg" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer store-key" {
			t.Fatalf("unexpected authorization header: %s", got)
		}
		if got := r.Header.Get("Content-Type"); got != "image/jpeg" {
			t.Fatalf("unexpected content type: %s", got)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		if string(body) != "jpeg-bytes" {
			t.Fatalf("unexpected body: %s", body)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:        srv.URL,
		Bucket:         "player-photos",
		APIKey:         "store-key",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, logging.NewNop())

	result, err := client.Upload(t.Context(), "players", "rohit-gupta.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if result.Filename != "rohit-gupta.jpg" {
		t.Fatalf("unexpected filename: %s", result.Filename)
	}
	wantURL := srv.URL + "/object/public/player-photos/players/rohit-gupta.jpg"
	if result.PublicURL != wantURL {
		t.Fatalf("unexpected public url:\nwant: %s\ngot:  %s", wantURL, result.PublicURL)
	}
}

func TestClientUpload_ServerErrorMappedToDependencyUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"backend offline"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:        srv.URL,
		Bucket:         "player-photos",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, logging.NewNop())

	_, err := client.Upload(t.Context(), "players", "a.jpg", "image/jpeg", strings.NewReader("x"))
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestClientUpload_RejectsEmptyAndOversizedContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:        srv.URL,
		Bucket:         "player-photos",
		MaxObjectBytes: 4,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}, logging.NewNop())

	_, err := client.Upload(t.Context(), "", "a.jpg", "image/jpeg", strings.NewReader(""))
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty content, got %v", err)
	}

	_, err = client.Upload(t.Context(), "", "a.jpg", "image/jpeg", strings.NewReader("too big"))
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized content, got %v", err)
	}
}

func TestClientUpload_OpenCircuitShortCircuits(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL: srv.URL,
		Bucket:  "player-photos",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
		},
	}, logging.NewNop())

	if _, err := client.Upload(t.Context(), "", "a.jpg", "image/jpeg", strings.NewReader("x")); err == nil {
		t.Fatalf("expected first upload to fail")
	}

	_, err := client.Upload(t.Context(), "", "b.jpg", "image/jpeg", strings.NewReader("x"))
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected circuit rejection, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single backend call, got %d", calls)
	}
}
