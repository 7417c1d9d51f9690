package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCheck_AllPass(t *testing.T) {
	hc := NewChecker("1.0.0")
	hc.AddCheck("static", func(ctx context.Context) error { return nil }, time.Second)
	hc.AddCriticalCheck("page", func(ctx context.Context) error { return nil }, time.Second)

	report := hc.Check(context.Background())

	if report.Status != StatusHealthy {
		t.Errorf("Expected healthy, got %s", report.Status)
	}
	if len(report.Checks) != 2 {
		t.Errorf("Expected 2 checks, got %d", len(report.Checks))
	}
	if report.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", report.Version)
	}
}

func TestCheck_NonCriticalFailureDegrades(t *testing.T) {
	hc := NewChecker("")
	hc.AddCheck("static", func(ctx context.Context) error { return errors.New("missing") }, time.Second)
	hc.AddCriticalCheck("page", func(ctx context.Context) error { return nil }, time.Second)

	report := hc.Check(context.Background())

	if report.Status != StatusDegraded {
		t.Errorf("Expected degraded, got %s", report.Status)
	}
	if report.Checks["static"].Error != "missing" {
		t.Errorf("Expected error message, got %q", report.Checks["static"].Error)
	}
}

func TestCheck_CriticalFailure(t *testing.T) {
	hc := NewChecker("")
	hc.AddCheck("static", func(ctx context.Context) error { return errors.New("missing") }, time.Second)
	hc.AddCriticalCheck("page", func(ctx context.Context) error { return errors.New("no page") }, time.Second)

	if got := hc.Check(context.Background()).Status; got != StatusUnhealthy {
		t.Errorf("Expected unhealthy, got %s", got)
	}
}

func TestCheck_Timeout(t *testing.T) {
	hc := NewChecker("")
	hc.AddCheck("slow", func(ctx context.Context) error {
		select {
		case <-time.After(5 * time.Second):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}, 50*time.Millisecond)

	if hc.Check(context.Background()).Checks["slow"].Status != StatusUnhealthy {
		t.Error("Timed out check should be unhealthy")
	}
}

func TestLivenessHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewChecker("").LivenessHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["status"] != "alive" {
		t.Error("Expected status 'alive'")
	}
}

func TestReadinessHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ready", nil, http.StatusOK},
		{"not ready", errors.New("no page"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := NewChecker("2.0.0")
			hc.AddCriticalCheck("page", func(ctx context.Context) error { return tt.err }, time.Second)

			w := httptest.NewRecorder()
			hc.ReadinessHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if w.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, w.Code)
			}

			var report Report
			if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if _, ok := report.Checks["page"]; !ok {
				t.Error("Expected page check in response")
			}
		})
	}
}

func TestDirCheck(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "logo.svg")
	if err := os.WriteFile(file, []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := DirCheck(dir)(context.Background()); err != nil {
		t.Errorf("Expected directory to pass: %v", err)
	}
	if err := DirCheck(file)(context.Background()); err == nil {
		t.Error("Expected a file to fail")
	}
	if err := DirCheck(filepath.Join(dir, "missing"))(context.Background()); err == nil {
		t.Error("Expected a missing path to fail")
	}
}
