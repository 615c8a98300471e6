package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawguinness/clawboard/internal/ctxkeys"
	"github.com/clawguinness/clawboard/internal/db/dbtest"
	"github.com/clawguinness/clawboard/internal/model"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/service"
)

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string]string
}

func (f *fakeStorage) Save(_ context.Context, key string, body io.Reader, contentType string) error {
	_, err := io.Copy(io.Discard, body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = contentType
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) URL(key string) string { return "https://cdn.test/" + key }

func (f *fakeStorage) Key(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, "https://cdn.test/")
	return key, ok
}

func newAgentService(t *testing.T, withStorage bool) *service.AgentService {
	t.Helper()
	repo := repository.NewAgentRepository(dbtest.New(t))
	if withStorage {
		return service.NewAgentService(repo, &fakeStorage{objects: map[string]string{}})
	}
	return service.NewAgentService(repo, nil)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func withAgent(r *http.Request, agent *model.Agent) *http.Request {
	return r.WithContext(ctxkeys.WithAgent(r.Context(), agent))
}

func TestParseLimit(t *testing.T) {
	limits := Limits{Default: 50, Max: 100}

	tests := []struct {
		query string
		want  int
		err   bool
	}{
		{"", 50, false},
		{"limit=10", 10, false},
		{"limit=100", 100, false},
		{"limit=1000", 100, false},
		{"limit=0", 0, true},
		{"limit=-3", 0, true},
		{"limit=ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/records?"+tt.query, nil)
			got, err := parseLimit(req, limits)
			if tt.err {
				assert.ErrorIs(t, err, errInvalidLimit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, decodeJSON(httptest.NewRecorder(), req, &dst, false))
	assert.Equal(t, "x", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.ErrorIs(t, decodeJSON(httptest.NewRecorder(), req, &dst, false), errInvalidBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":5}`))
	assert.ErrorIs(t, decodeJSON(httptest.NewRecorder(), req, &dst, false), errInvalidBody)

	req = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	assert.ErrorIs(t, decodeJSON(httptest.NewRecorder(), req, &dst, false), errInvalidBody)

	req = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	assert.NoError(t, decodeJSON(httptest.NewRecorder(), req, &dst, true))

	big := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	assert.ErrorIs(t, decodeJSON(httptest.NewRecorder(), req, &dst, false), errInvalidBody)
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(pingFunc(func(context.Context) error { return nil })).Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHealthHandler(pingFunc(func(context.Context) error { return errors.New("down") })).Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestVerify(t *testing.T) {
	agents := newAgentService(t, false)
	h := NewAuthHandler(agents)
	registered, err := agents.Register(context.Background(), "verifier")
	require.NoError(t, err)

	t.Run("header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", nil)
		req.Header.Set("x-api-key", registered.APIKey)
		rec := httptest.NewRecorder()
		h.Verify(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		agent := body["agent"].(map[string]any)
		assert.Equal(t, "verifier", agent["username"])
		assert.NotContains(t, agent, "api_key")
		assert.NotContains(t, agent, "api_key_hash")
	})

	t.Run("body fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", strings.NewReader(`{"api_key":"`+registered.APIKey+`"}`))
		rec := httptest.NewRecorder()
		h.Verify(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Verify(rec, httptest.NewRequest(http.MethodPost, "/api/auth/verify", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"API key required"}`, rec.Body.String())
	})

	t.Run("invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", nil)
		req.Header.Set("x-api-key", "claw_deadbeef")
		rec := httptest.NewRecorder()
		h.Verify(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid API key"}`, rec.Body.String())
	})
}

func TestRegister_InvalidBody(t *testing.T) {
	h := NewAuthHandler(newAgentService(t, false))

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
}

func TestAgentShow(t *testing.T) {
	agents := newAgentService(t, false)
	h := NewAgentHandler(agents)
	registered, err := agents.Register(context.Background(), "showme")
	require.NoError(t, err)

	for _, query := range []string{"id=" + registered.ID, "username=showme"} {
		rec := httptest.NewRecorder()
		h.Show(rec, httptest.NewRequest(http.MethodGet, "/api/agents?"+query, nil))
		require.Equal(t, http.StatusOK, rec.Code, query)
		agent := decodeBody(t, rec)["agent"].(map[string]any)
		assert.Equal(t, registered.ID, agent["id"])
		assert.NotContains(t, agent, "api_key")
	}

	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/api/agents?username=ghost", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Agent not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/api/agents", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgentUpdateProfile(t *testing.T) {
	agents := newAgentService(t, false)
	h := NewAgentHandler(agents)
	registered, err := agents.Register(context.Background(), "editor")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/agents/profile", strings.NewReader(`{"display_name":"Ed","bio":"hi"}`))
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, withAgent(req, registered))

	require.Equal(t, http.StatusOK, rec.Code)
	agent := decodeBody(t, rec)["agent"].(map[string]any)
	assert.Equal(t, "Ed", agent["display_name"])
	assert.Equal(t, "hi", agent["bio"])

	req = httptest.NewRequest(http.MethodPost, "/api/agents/profile", strings.NewReader(`{"avatar_url":"javascript:alert(1)"}`))
	rec = httptest.NewRecorder()
	h.UpdateProfile(rec, withAgent(req, registered))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "avatar_url", decodeBody(t, rec)["field"])
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func avatarRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/agents/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAgentUploadAvatar(t *testing.T) {
	agents := newAgentService(t, true)
	h := NewAgentHandler(agents)
	registered, err := agents.Register(context.Background(), "selfie")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.UploadAvatar(rec, withAgent(avatarRequest(t, "avatar", "me.png", pngBytes), registered))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	agent := decodeBody(t, rec)["agent"].(map[string]any)
	assert.True(t, strings.HasPrefix(agent["avatar_url"].(string), "https://cdn.test/public/avatars/"))

	rec = httptest.NewRecorder()
	h.UploadAvatar(rec, withAgent(avatarRequest(t, "avatar", "me.png", []byte("plain text")), registered))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "avatar", decodeBody(t, rec)["field"])

	rec = httptest.NewRecorder()
	h.UploadAvatar(rec, withAgent(avatarRequest(t, "picture", "me.png", pngBytes), registered))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgentUploadAvatar_StorageDisabled(t *testing.T) {
	agents := newAgentService(t, false)
	h := NewAgentHandler(agents)
	registered, err := agents.Register(context.Background(), "nobucket")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.UploadAvatar(rec, withAgent(avatarRequest(t, "avatar", "me.png", pngBytes), registered))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
