package cfb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCFBDClient_FetchRatings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ratings/sp", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"team":"Ohio State","year":2025,"rating":30.1}]`))
	}))
	defer server.Close()

	client := NewCFBDClient("test-token")
	client.BaseURL = server.URL

	raw, err := client.FetchRatings(context.Background(), 2025)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"team":"Ohio State","year":2025,"rating":30.1}]`, string(raw))
}

func TestCFBDClient_FetchLines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lines", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		assert.Equal(t, "14", r.URL.Query().Get("week"))
		assert.Equal(t, "regular", r.URL.Query().Get("seasonType"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewCFBDClient("test-token")
	client.BaseURL = server.URL

	raw, err := client.FetchLines(context.Background(), 2025, 14, "regular")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestCFBDClient_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewCFBDClient("bad-token")
	client.BaseURL = server.URL

	_, err := client.FetchRatings(context.Background(), 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
