package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		config          Config
		expectedBase    string
		expectedTimeout time.Duration
	}{
		{
			name:            "Valid configuration",
			config:          Config{BaseURL: "https://api.example.com", Timeout: 30 * time.Second},
			expectedBase:    "https://api.example.com",
			expectedTimeout: 30 * time.Second,
		},
		{
			name:            "With trailing slash",
			config:          Config{BaseURL: "https://api.example.com/", Timeout: 10 * time.Second},
			expectedBase:    "https://api.example.com",
			expectedTimeout: 10 * time.Second,
		},
		{
			name:            "Zero timeout falls back to default",
			config:          Config{BaseURL: "http://localhost:8080"},
			expectedBase:    "http://localhost:8080",
			expectedTimeout: DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			require.NotNil(t, client)
			assert.Equal(t, tt.expectedBase, client.baseURL)
			assert.Equal(t, tt.expectedTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/route/v1/driving/21,52;21.1,52.1", r.URL.Path)
		assert.Equal(t, "full", r.URL.Query().Get("overview"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"code":"Ok"}`))
	}))
	defer server.Close()

	client := NewClient(Config{Name: "osrm", BaseURL: server.URL, Timeout: 5 * time.Second})

	var out struct {
		Code string `json:"code"`
	}
	err := client.GetJSON(context.Background(), "/route/v1/driving/21,52;21.1,52.1?overview=full", &out)

	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Code)
	assert.False(t, client.HasAuth())
}

func TestClient_PostJSONWithAuth(t *testing.T) {
	payload := map[string]interface{}{"range": []interface{}{float64(1800)}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var received map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &received))
		assert.Equal(t, payload, received)

		_, _ = w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		Name:       "ors",
		BaseURL:    server.URL,
		AuthHeader: "Authorization",
		AuthKey:    "secret",
	})

	var out map[string]interface{}
	err := client.PostJSON(context.Background(), "/v2/isochrones/driving-car", payload, &out)

	require.NoError(t, err)
	assert.Equal(t, "FeatureCollection", out["type"])
	assert.True(t, client.HasAuth())
}

func TestClient_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"NoRoute"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	err := client.GetJSON(context.Background(), "/route", nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
}

func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	var out map[string]interface{}
	err := client.GetJSON(context.Background(), "/", &out)
	assert.ErrorContains(t, err, "failed to decode response")
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.GetJSON(ctx, "/", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
