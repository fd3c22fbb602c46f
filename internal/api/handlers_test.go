package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pagelift.com/seo-assistant/internal/core"
	"pagelift.com/seo-assistant/internal/store"
)

func newTestServer(t *testing.T, geminiURL, apiKey string) *httptest.Server {
	t.Helper()

	dbStore, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbStore.Close() })

	handler := NewAPIHandler(
		core.NewAuthService(dbStore),
		core.NewGeminiClient(apiKey, geminiURL, 5*time.Second),
		core.NewFixService(),
	)
	ts := httptest.NewServer(NewRouter(handler))
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, path string, body any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func registerBody(email string) map[string]string {
	return map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     email,
		"password":  "pw123",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")
	email := fmt.Sprintf("%s@example.com", uuid.NewString())

	status, body := postJSON(t, ts, "/auth/register", registerBody(email))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Registration successful.", body["message"])
	assert.Greater(t, body["userId"].(float64), float64(0))
}

func TestRegisterMissingFields(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")

	status, body := postJSON(t, ts, "/auth/register", map[string]string{
		"firstName": "Ada",
		"email":     "ada@example.com",
		"password":  "pw123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields.", body["error"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")
	email := fmt.Sprintf("%s@example.com", uuid.NewString())

	status, _ := postJSON(t, ts, "/auth/register", registerBody(email))
	require.Equal(t, http.StatusCreated, status)

	status, body := postJSON(t, ts, "/auth/register", registerBody(email))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email already registered.", body["error"])
}

func TestLoginEndpoint(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")
	email := fmt.Sprintf("%s@example.com", uuid.NewString())

	status, registered := postJSON(t, ts, "/auth/register", registerBody(email))
	require.Equal(t, http.StatusCreated, status)

	status, body := postJSON(t, ts, "/auth/login", map[string]string{
		"email":    email,
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, registered["userId"], body["userId"])
	assert.Equal(t, "Ada", body["firstName"])
	assert.Equal(t, "Lovelace", body["lastName"])
	assert.Equal(t, email, body["email"])
	// The password hash must never appear in the response.
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "password_hash")
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")
	email := fmt.Sprintf("%s@example.com", uuid.NewString())

	status, _ := postJSON(t, ts, "/auth/register", registerBody(email))
	require.Equal(t, http.StatusCreated, status)

	wrongStatus, wrongBody := postJSON(t, ts, "/auth/login", map[string]string{
		"email":    email,
		"password": "wrong",
	})
	unknownStatus, unknownBody := postJSON(t, ts, "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "pw123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongStatus)
	assert.Equal(t, http.StatusUnauthorized, unknownStatus)
	assert.Equal(t, wrongBody["error"], unknownBody["error"])
}

func TestLoginMissingFields(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")

	status, body := postJSON(t, ts, "/auth/login", map[string]string{"email": "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing email or password.", body["error"])
}

func TestGenerateFixEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":" \"Fresh Roasted Coffee Daily\" "}]}}]}`))
	}))
	defer upstream.Close()

	ts := newTestServer(t, upstream.URL, "test-key")

	status, body := postJSON(t, ts, "/generate-fix", map[string]any{
		"issueId": "no-h1",
		"context": map[string]string{"topic": "coffee shop"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Fresh Roasted Coffee Daily", body["suggestion"])
}

func TestGenerateFixMissingIssueID(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "test-key")

	status, body := postJSON(t, ts, "/generate-fix", map[string]any{
		"context": map[string]string{"topic": "coffee shop"},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "issueId is required.", body["error"])
}

func TestGenerateFixUnsupportedIssueID(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "test-key")

	status, body := postJSON(t, ts, "/generate-fix", map[string]any{"issueId": "unknown-id"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Unsupported issueId for AI content generation.", body["error"])
}

func TestGenerateFixWithoutAPIKey(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")

	status, body := postJSON(t, ts, "/generate-fix", map[string]any{"issueId": "no-h1"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Gemini API key is not configured on the server.", body["error"])
}

func TestGenerateFixUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer upstream.Close()

	ts := newTestServer(t, upstream.URL, "bad-key")

	status, body := postJSON(t, ts, "/generate-fix", map[string]any{"issueId": "no-h1"})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, body["error"], "Failed to communicate with the Gemini API")
	assert.Contains(t, body, "details")
}

func TestGenerateFixUpstreamBadShape(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer upstream.Close()

	ts := newTestServer(t, upstream.URL, "test-key")

	status, body := postJSON(t, ts, "/generate-fix", map[string]any{"issueId": "no-h1"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Invalid response format from the Gemini API.", body["error"])
}

func TestApplyFixEndpoint(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")

	status, body := postJSON(t, ts, "/apply-fix", map[string]string{
		"issueId":    "title-length",
		"suggestion": "New Title",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["message"], "title-length")
}

func TestApplyFixMissingSuggestion(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")

	status, body := postJSON(t, ts, "/apply-fix", map[string]string{"issueId": "title-length"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "issueId and suggestion are required.", body["error"])
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, "http://unused.invalid", "")

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
