package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campverse/campverse/internal/model"
	"github.com/campverse/campverse/internal/storage"
	"github.com/campverse/campverse/internal/store"
)

func setupTestServer(t *testing.T) (*httptest.Server, *storage.SQLite) {
	t.Helper()
	kv := storage.NewTestKV(t)

	ctx := context.Background()
	if err := store.Initialize(ctx, kv); err != nil {
		t.Fatalf("initializing collections: %v", err)
	}

	server := httptest.NewServer(NewRouter(kv))
	t.Cleanup(server.Close)

	return server, kv
}

func login(t *testing.T, server *httptest.Server, email string) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login as %s failed: %d", email, resp.StatusCode)
	}
}

func jsonRequest(method, url string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func decodeEnvelope(t *testing.T, resp *http.Response, data any) {
	t.Helper()
	defer resp.Body.Close()
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if data != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decoding data: %v", err)
		}
	}
}

func TestLoginEndpoint(t *testing.T) {
	server, kv := setupTestServer(t)

	// Unknown email fails without touching the session.
	body, _ := json.Marshal(map[string]string{"email": "nobody@campverse.edu"})
	resp, _ := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown email, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	user, _ := store.CurrentUser(context.Background(), kv)
	if user != nil {
		t.Errorf("failed login should not populate the session, got %+v", user)
	}

	// Known email succeeds; the password is not checked.
	login(t, server, "john@campverse.edu")
	user, _ = store.CurrentUser(context.Background(), kv)
	if user == nil || user.Role != model.RoleStudent {
		t.Fatalf("expected John's session, got %+v", user)
	}
}

func TestStudentCannotAccessAdmin(t *testing.T) {
	server, _ := setupTestServer(t)
	login(t, server, "john@campverse.edu")

	resp, err := http.Get(server.URL + "/api/users")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for student on admin view, got %d", resp.StatusCode)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	server, _ := setupTestServer(t)

	req := map[string]string{"name": "Impostor", "email": "john@campverse.edu", "role": model.RoleStudent}
	body, _ := json.Marshal(req)
	resp, _ := http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}
}

func TestRegisterAndSession(t *testing.T) {
	server, _ := setupTestServer(t)

	req := map[string]string{"name": "New Student", "email": "new@campverse.edu", "role": model.RoleStudent}
	body, _ := json.Marshal(req)
	resp, _ := http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var user model.User
	decodeEnvelope(t, resp, &user)
	if user.ID == "" || user.Avatar == "" {
		t.Errorf("expected generated id and avatar, got %+v", user)
	}

	// Registration logs the new user in.
	resp, _ = http.Get(server.URL + "/api/auth/session")
	var current model.User
	decodeEnvelope(t, resp, &current)
	if current.Email != "new@campverse.edu" {
		t.Errorf("expected registered user in session, got %+v", current)
	}
}

func TestMarketSaleFlow(t *testing.T) {
	server, _ := setupTestServer(t)

	// Sarah lists an item.
	login(t, server, "sarah@campverse.edu")
	req, _ := jsonRequest("POST", server.URL+"/api/market", map[string]any{
		"title":       "Desk lamp",
		"price":       25.50,
		"description": "Barely used",
	})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var listed model.MarketItem
	decodeEnvelope(t, resp, &listed)
	if listed.Status != model.MarketAvailable {
		t.Fatalf("expected Available, got %q", listed.Status)
	}

	// John sees the available listing but cannot mark it sold.
	login(t, server, "john@campverse.edu")
	resp, _ = http.Get(server.URL + "/api/market")
	var items []model.MarketItem
	decodeEnvelope(t, resp, &items)
	if len(items) != 1 || items[0].Status != model.MarketAvailable {
		t.Fatalf("expected one available listing, got %+v", items)
	}

	req, _ = jsonRequest("POST", server.URL+"/api/market/"+listed.ID+"/sold", nil)
	resp, _ = http.DefaultClient.Do(req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for non-seller, got %d", resp.StatusCode)
	}

	// Sarah marks it sold; id, price, and description are unchanged.
	login(t, server, "sarah@campverse.edu")
	req, _ = jsonRequest("POST", server.URL+"/api/market/"+listed.ID+"/sold", nil)
	resp, _ = http.DefaultClient.Do(req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, _ = http.Get(server.URL + "/api/market")
	decodeEnvelope(t, resp, &items)
	got := items[0]
	if got.Status != model.MarketSold {
		t.Errorf("expected Sold, got %q", got.Status)
	}
	if got.ID != listed.ID || got.Price != 25.50 || got.Description != "Barely used" {
		t.Errorf("sale changed unrelated fields: %+v", got)
	}
}

func TestStudentCannotPostNotice(t *testing.T) {
	server, _ := setupTestServer(t)
	login(t, server, "john@campverse.edu")

	req, _ := jsonRequest("POST", server.URL+"/api/notices", map[string]string{
		"title":    "Party",
		"content":  "My place",
		"category": model.NoticeEvent,
		"priority": model.PriorityLow,
	})
	resp, _ := http.DefaultClient.Do(req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for student posting a notice, got %d", resp.StatusCode)
	}
}

func TestAdminSelfDeleteForbidden(t *testing.T) {
	server, kv := setupTestServer(t)
	login(t, server, "admin@campverse.edu")

	admin, _ := store.FindUserByEmail(context.Background(), kv, "admin@campverse.edu")

	req, _ := jsonRequest("DELETE", server.URL+"/api/users/"+admin.ID, nil)
	resp, _ := http.DefaultClient.Do(req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for self-deletion, got %d", resp.StatusCode)
	}

	// Deleting another user removes exactly that record.
	john, _ := store.FindUserByEmail(context.Background(), kv, "john@campverse.edu")
	req, _ = jsonRequest("DELETE", server.URL+"/api/users/"+john.ID, nil)
	resp, _ = http.DefaultClient.Do(req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	users, _ := store.ListUsers(context.Background(), kv)
	if len(users) != 2 {
		t.Errorf("expected 2 users left, got %d", len(users))
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	server, _ := setupTestServer(t)

	for _, path := range []string{"/api/lostfound", "/api/notices", "/api/market", "/api/users"} {
		resp, err := http.Get(server.URL + path)
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s: expected 401 without session, got %d", path, resp.StatusCode)
		}
	}
}

func TestLostFoundResolveFlow(t *testing.T) {
	server, _ := setupTestServer(t)

	login(t, server, "john@campverse.edu")
	req, _ := jsonRequest("POST", server.URL+"/api/lostfound", map[string]string{
		"title":    "Blue backpack",
		"type":     model.LostFoundLost,
		"category": "Bags",
		"location": "Library",
	})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var item model.LostFoundItem
	decodeEnvelope(t, resp, &item)
	if item.Contact != "john@campverse.edu" {
		t.Errorf("expected poster email as default contact, got %q", item.Contact)
	}

	// Another user may not resolve it.
	login(t, server, "sarah@campverse.edu")
	req, _ = jsonRequest("POST", server.URL+"/api/lostfound/"+item.ID+"/resolve", nil)
	resp, _ = http.DefaultClient.Do(req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for non-poster, got %d", resp.StatusCode)
	}

	// The poster may.
	login(t, server, "john@campverse.edu")
	req, _ = jsonRequest("POST", server.URL+"/api/lostfound/"+item.ID+"/resolve", nil)
	resp, _ = http.DefaultClient.Do(req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
