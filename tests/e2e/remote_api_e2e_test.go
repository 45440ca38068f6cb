//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func TestRemoteAPI_MainEndpoints(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://localhost:8080"), "/")
	client := &http.Client{Timeout: 20 * time.Second}

	t.Run("terrain requires coordinates", func(t *testing.T) {
		status, body, err := doRequest(client, http.MethodGet, baseURL+"/api/world/terrain", nil)
		if err != nil {
			t.Fatalf("terrain request: %v", err)
		}
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", status, string(body))
		}
	})

	t.Run("terrain window", func(t *testing.T) {
		status, body, err := doRequest(client, http.MethodGet, baseURL+"/api/world/terrain?x=1&y=1&radius=2", nil)
		if err != nil {
			t.Fatalf("terrain request: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("terrain status=%d body=%s", status, string(body))
		}
		var resp map[string]any
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal terrain: %v body=%s", err, string(body))
		}
		tiles, _ := resp["tiles"].([]any)
		if len(tiles) == 0 {
			t.Fatalf("terrain window empty: %s", string(body))
		}
	})

	t.Run("resources honor tech gate", func(t *testing.T) {
		status, body, err := doRequest(client, http.MethodGet, baseURL+"/api/world/resources?tech_level=0", nil)
		if err != nil {
			t.Fatalf("resources request: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("resources status=%d body=%s", status, string(body))
		}
		var resp struct {
			Resources []struct {
				RequiredTech int `json:"required_tech"`
			} `json:"resources"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal resources: %v body=%s", err, string(body))
		}
		for _, r := range resp.Resources {
			if r.RequiredTech > 0 {
				t.Fatalf("tech-gated resource visible at tech 0: %+v", r)
			}
		}
	})

	t.Run("environment and stats", func(t *testing.T) {
		for _, path := range []string{"/api/world/environment", "/api/world/stats"} {
			status, body, err := doRequest(client, http.MethodGet, baseURL+path, nil)
			if err != nil {
				t.Fatalf("%s request: %v", path, err)
			}
			if status != http.StatusOK {
				t.Fatalf("%s status=%d body=%s", path, status, string(body))
			}
		}
	})

	t.Run("event log", func(t *testing.T) {
		status, body, err := doRequest(client, http.MethodGet, baseURL+"/api/events?limit=5", nil)
		if err != nil {
			t.Fatalf("events request: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("events status=%d body=%s", status, string(body))
		}
	})

	t.Run("harvest rejects empty batch", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/harvest", map[string]any{
			"requests": []any{},
		})
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", status, string(body))
		}
	})

	t.Run("ops kpi", func(t *testing.T) {
		status, body, err := doRequest(client, http.MethodGet, baseURL+"/ops/kpi", nil)
		if err != nil {
			t.Fatalf("kpi request: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(body))
		}
		var snapshot map[string]any
		if err := json.Unmarshal(body, &snapshot); err != nil {
			t.Fatalf("unmarshal kpi: %v body=%s", err, string(body))
		}
		if _, ok := snapshot["tick_total"]; !ok {
			t.Fatalf("kpi missing tick_total: %s", string(body))
		}
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func doRequest(client *http.Client, method, url string, payload []byte) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func mustJSON(t *testing.T, client *http.Client, method, url string, payload map[string]any) (int, []byte) {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	status, body, err := doRequest(client, method, url, b)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return status, body
}
