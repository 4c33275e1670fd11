package dash

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"warden/models"

	"github.com/stretchr/testify/require"
)

var testCommands = []models.Command{
	{Name: "ping", Category: "utility", Description: "Check bot latency"},
	{Name: "ban", Category: "moderation", Description: "Ban a member"},
	{Name: "kick", Category: "moderation", Description: "Kick a member"},
}

func newTestServer() (*Server, *mockConfigStore, *mockRegistry, *fakeLookup) {
	configStore := new(mockConfigStore)
	registry := new(mockRegistry)
	lookup := newFakeLookup()
	server := NewServer(":0", configStore, registry, lookup, testCommands)
	return server, configStore, registry, lookup
}

// envelope mirrors the dashboard response contract for assertions.
type envelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func doRequest(t *testing.T, server *Server, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewBuffer(encoded)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "response body: %s", rec.Body.String())
	return rec.Code, env
}

func decodeData(t *testing.T, env envelope, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, target))
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	server, _, _, _ := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/dash/guild/g1", nil)
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
