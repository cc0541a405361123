//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// TestSaveFetchRoundTrip registers a fresh account, pushes a save, and
// verifies the echoed aggregate survives a subsequent fetch.
func TestSaveFetchRoundTrip(t *testing.T) {
	username := fmt.Sprintf("staging_varmint_%d", time.Now().UnixNano())

	// Register
	registerReq := map[string]interface{}{
		"username":   username,
		"credential": "staging-secret",
	}
	resp, body := makeRequest(t, "POST", "/api/v1/account/register", registerReq)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var registered struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &registered); err != nil {
		t.Fatalf("Failed to unmarshal register response: %v", err)
	}
	if registered.ID == 0 {
		t.Fatalf("Expected non-zero account id. Body: %s", string(body))
	}

	// Save
	save := map[string]interface{}{
		"tutorialCompleted": true,
		"currency":          120,
		"pets": []map[string]interface{}{
			{"name": "Smoky", "level": 2, "abilities": []string{"dig"}},
		},
	}
	path := fmt.Sprintf("/api/v1/progress/%d", registered.ID)
	resp, body = makeRequest(t, "PUT", path, save)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	// Fetch
	resp, body = makeRequest(t, "GET", path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var aggregate struct {
		Currency int `json:"currency"`
		Pets     []struct {
			Name string `json:"name"`
		} `json:"pets"`
	}
	if err := json.Unmarshal(body, &aggregate); err != nil {
		t.Fatalf("Failed to unmarshal aggregate: %v", err)
	}
	if aggregate.Currency != 120 {
		t.Errorf("Expected currency 120, got %d", aggregate.Currency)
	}
	if len(aggregate.Pets) != 1 || aggregate.Pets[0].Name != "Smoky" {
		t.Errorf("Expected one pet named Smoky. Body: %s", string(body))
	}
}

// TestLogin verifies credentials round-trip through registration
func TestLogin(t *testing.T) {
	username := fmt.Sprintf("staging_login_%d", time.Now().UnixNano())

	registerReq := map[string]interface{}{
		"username":   username,
		"credential": "staging-secret",
	}
	resp, body := makeRequest(t, "POST", "/api/v1/account/register", registerReq)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	resp, body = makeRequest(t, "POST", "/api/v1/account/login", registerReq)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	wrong := map[string]interface{}{
		"username":   username,
		"credential": "not-the-credential",
	}
	resp, _ = makeRequest(t, "POST", "/api/v1/account/login", wrong)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for wrong credential, got %d", resp.StatusCode)
	}
}
