//go:build integration

package integration

import (
	"net/http"
	"strings"
	"testing"
)

// Once the harness is up, both probe endpoints must report healthy: the
// readiness gate is set after migrations and the postgres ping passes.
func TestHealthEndpoints(t *testing.T) {
	for _, path := range []string{"/livez", "/readyz"} {
		t.Run(strings.TrimPrefix(path, "/"), func(t *testing.T) {
			resp := doGet(t, path)
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
			}

			body := decodeJSON[healthResponse](t, resp)
			if body.Status != "ok" {
				t.Fatalf("expected status ok, got %q", body.Status)
			}
			if len(body.Checks) != 0 {
				t.Fatalf("expected no failing checks, got %v", body.Checks)
			}
		})
	}
}
