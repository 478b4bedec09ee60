package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/greenmarket/admin-server/src/middleware"
	"github.com/greenmarket/admin-server/src/models"
)

// Test helpers for handler tests

const testSecret = "test-secret-for-unit-tests-32ch!"

func newTestTokenManager(t *testing.T) *middleware.TokenManager {
	t.Helper()
	tm, err := middleware.NewTokenManager(testSecret)
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	return tm
}

func tokenFor(t *testing.T, tm *middleware.TokenManager, admin *models.Admin) string {
	t.Helper()
	token, err := tm.Generate(admin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// performRequest runs one request through the router, optionally with a JSON
// body and a bearer token
func performRequest(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// envelope mirrors the wire shape for decoding in assertions
type envelope struct {
	Msg        string          `json:"msg"`
	Variant    string          `json:"variant"`
	Payload    json.RawMessage `json:"payload"`
	TotalCount *int            `json:"totalCount"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response: %v: %s", err, w.Body.String())
	}
	return env
}

func assertStatusCode(t *testing.T, w *httptest.ResponseRecorder, expectedCode int) {
	t.Helper()
	if w.Code != expectedCode {
		t.Errorf("expected status %d, got %d: %s", expectedCode, w.Code, w.Body.String())
	}
}

func assertMsg(t *testing.T, w *httptest.ResponseRecorder, expectedMsg string) {
	t.Helper()
	env := decodeEnvelope(t, w)
	if env.Msg != expectedMsg {
		t.Errorf("expected msg %q, got %q", expectedMsg, env.Msg)
	}
}

func assertNullPayload(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	env := decodeEnvelope(t, w)
	if string(env.Payload) != "null" {
		t.Errorf("expected null payload, got %s", env.Payload)
	}
}

func init() {
	gin.SetMode(gin.TestMode)
}
