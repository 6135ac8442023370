package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_GenerateText(t *testing.T) {
	t.Parallel()

	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[EMAIL] - ready"}}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1/", Model: "test-model"})

	text, err := c.GenerateText(context.Background(), "classify this")
	require.NoError(t, err)
	require.Equal(t, "[EMAIL] - ready", text)
	require.Equal(t, "test-model", got.Model)
	require.Equal(t, []chatMessage{{Role: "user", Content: "classify this"}}, got.Messages)
}

func TestClient_GenerateText_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "api error message",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"bad key","type":"auth"}}`,
			wantErr: ErrRequestFailed,
			wantMsg: "bad key",
		},
		{
			name:    "raw error body",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			wantErr: ErrRequestFailed,
			wantMsg: "upstream down",
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: ErrUnexpectedReply,
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    `{`,
			wantErr: ErrUnexpectedReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
			_, err := c.GenerateText(context.Background(), "p")
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				require.Contains(t, err.Error(), tt.wantMsg)
			}
			require.Equal(t, 1, calls)
		})
	}
}

func TestClient_GenerateText_MissingKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{}).GenerateText(context.Background(), "p")
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{APIKey: "k"})
	require.Equal(t, defaultBaseURL, c.config.BaseURL)
	require.Equal(t, defaultModel, c.config.Model)
	require.Equal(t, defaultTimeout, c.http.Timeout)
}
