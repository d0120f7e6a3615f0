package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bodyshop-chat/internal/domain"
)

type fakeSecrets struct {
	val      string
	err      error
	calls    int
	lastName string
}

func (f *fakeSecrets) GetSecret(_ context.Context, name string) (string, error) {
	f.calls++
	f.lastName = name
	return f.val, f.err
}

func TestMessagesURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://api.anthropic.com", "https://api.anthropic.com/v1/messages"},
		{"https://api.anthropic.com/", "https://api.anthropic.com/v1/messages"},
		{"http://localhost:8080/v1", "http://localhost:8080/v1/messages"},
		{"", "https://api.anthropic.com/v1/messages"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, messagesURL(tc.base), "base=%q", tc.base)
	}
}

func TestNewClient_RequiresKeySource(t *testing.T) {
	_, err := NewClient()
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be set")

	_, err = NewClient(WithAPIKey("   "))
	require.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(WithAPIKey("sk-test"), WithModel(""), WithMaxTokens(0))
	require.NoError(t, err)
	require.Equal(t, defaultBaseURL, c.baseURL)
	require.Equal(t, defaultModel, c.model)
	require.Equal(t, defaultMaxTokens, c.maxTokens)
	require.Equal(t, "anthropic", c.Provider())
}

func TestResolveAPIKey_ParamStoreFetchedOnce(t *testing.T) {
	g := &fakeSecrets{val: "sk-from-ssm"}
	c, err := NewClient(WithParamStore(g, "/bodyshop/"))
	require.NoError(t, err)

	key, err := c.resolveAPIKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sk-from-ssm", key)
	require.Equal(t, "/bodyshop/anthropic-api-key", g.lastName)

	_, _ = c.resolveAPIKey(context.Background())
	require.Equal(t, 1, g.calls)
}

func TestResolveAPIKey_StaticKeyWins(t *testing.T) {
	g := &fakeSecrets{val: "sk-from-ssm"}
	c, err := NewClient(WithParamStore(g, "/bodyshop"), WithAPIKey("sk-static"))
	require.NoError(t, err)

	key, err := c.resolveAPIKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sk-static", key)
	require.Zero(t, g.calls)
}

func TestResolveAPIKey_GetterError(t *testing.T) {
	c, err := NewClient(WithParamStore(&fakeSecrets{err: errors.New("ssm unavailable")}, "/bodyshop"))
	require.NoError(t, err)
	_, err = c.Chat(context.Background(), "sys", []domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}})
	require.ErrorContains(t, err, "ssm unavailable")
}

func TestResolveAPIKey_RetriesAfterFailedFetch(t *testing.T) {
	g := &fakeSecrets{err: errors.New("throttled")}
	c, err := NewClient(WithParamStore(g, "/bodyshop"))
	require.NoError(t, err)

	_, err = c.resolveAPIKey(context.Background())
	require.ErrorContains(t, err, "throttled")

	g.err = nil
	g.val = "sk-recovered"
	key, err := c.resolveAPIKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sk-recovered", key)
	require.Equal(t, 2, g.calls)

	_, err = c.resolveAPIKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, g.calls)
}

func TestToMessages(t *testing.T) {
	got := toMessages([]domain.ChatMessage{
		{Role: domain.RoleAssistant, Content: "Hi! How can I help?"},
		{Role: domain.RoleUser, Content: "dent"},
	})
	require.Equal(t, []message{{Role: "user", Content: "dent"}}, got)
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := NewClient(
		WithAPIKey("sk-test"),
		WithBaseURL(srv.URL),
		WithModel("claude-test"),
		WithMaxTokens(321),
		WithHTTPClient(&http.Client{Timeout: 2 * time.Second}),
	)
	require.NoError(t, err)
	return c
}

func TestClient_Chat_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/messages", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		require.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body messagesRequest
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Equal(t, "claude-test", body.Model)
		require.Equal(t, 321, body.MaxTokens)
		require.Equal(t, "You are a shop assistant.", body.System)
		require.Equal(t, []message{{Role: "user", Content: "hi"}}, body.Messages)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_123",
			"type": "message",
			"content": [{"type": "text", "text": "Hello from mock"}],
			"stop_reason": "end_turn"
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	resp, err := c.Chat(context.Background(), "You are a shop assistant.", []domain.ChatMessage{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	require.Equal(t, "Hello from mock", resp)
}

func TestClient_Chat_NoUserMessage(t *testing.T) {
	c, err := NewClient(WithAPIKey("sk-test"))
	require.NoError(t, err)
	_, err = c.Chat(context.Background(), "sys", []domain.ChatMessage{{Role: domain.RoleAssistant, Content: "hello"}})
	require.ErrorContains(t, err, "no user message")
}

func TestClient_Chat_StatusErrors(t *testing.T) {
	for _, status := range []int{400, 401, 429, 500, 529} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"type":"error"}`))
		}))

		c := newTestClient(t, srv)
		_, err := c.Chat(context.Background(), "sys", []domain.ChatMessage{{Role: "user", Content: "hi"}})
		srv.Close()

		require.Error(t, err)
		var statusErr *HTTPStatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, status, statusErr.HTTPStatusCode())
		require.Contains(t, err.Error(), "unexpected status")
	}
}

func TestClient_Chat_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not-a-json`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Chat(context.Background(), "sys", []domain.ChatMessage{{Role: "user", Content: "hi"}})
	require.ErrorContains(t, err, "decode response")
}

func TestClient_Chat_NoTextContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Chat(context.Background(), "sys", []domain.ChatMessage{{Role: "user", Content: "hi"}})
	require.ErrorContains(t, err, "no text content")
}

func TestClient_Chat_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"late"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	c.httpClient = &http.Client{Timeout: 50 * time.Millisecond}
	_, err := c.Chat(context.Background(), "sys", []domain.ChatMessage{{Role: "user", Content: "hi"}})
	require.ErrorContains(t, err, "request failed")
}
