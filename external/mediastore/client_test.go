package mediastore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/profootgn/league-api/internal/platform/logging"
	"github.com/profootgn/league-api/internal/platform/resilience"
)

func newTestClient(baseURL string, breaker resilience.CircuitBreakerConfig) *Client {
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		Token:          "token",
		Timeout:        2 * time.Second,
		CircuitBreaker: breaker,
	}, logging.NewNop())
}

func TestUploadPlayerPhoto_ReturnsAssignedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/v1/player-photos/42" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Fatalf("unexpected Authorization header %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart form: %v", err)
		}
		if _, _, err := r.FormFile("photo"); err != nil {
			t.Fatalf("missing photo part: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.example.com/players/42.jpg"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, resilience.CircuitBreakerConfig{})

	url, err := client.UploadPlayerPhoto(context.Background(), 42, "portrait.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://cdn.example.com/players/42.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestUploadPlayerPhoto_ServerErrorOpensBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		if _, err := client.UploadPlayerPhoto(context.Background(), 1, "p.jpg", "image/jpeg", strings.NewReader("x")); err == nil {
			t.Fatal("expected upload error")
		}
	}

	_, err := client.UploadPlayerPhoto(context.Background(), 1, "p.jpg", "image/jpeg", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "temporarily unavailable") {
		t.Fatalf("expected circuit rejection, got %v", err)
	}
}

func TestUploadPlayerPhoto_BadRequestDoesNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 3; i++ {
		_, err := client.UploadPlayerPhoto(context.Background(), 1, "p.jpg", "image/jpeg", strings.NewReader("x"))
		if err == nil {
			t.Fatal("expected upload error")
		}
		if strings.Contains(err.Error(), "temporarily unavailable") {
			t.Fatalf("breaker must stay closed on non-retryable status, got %v", err)
		}
	}
}
