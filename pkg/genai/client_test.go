package genai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelskills-backend/pkg/genai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteJSON(t *testing.T) {
	t.Run("Should return assistant content verbatim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "test-model", body["model"])

			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"rating\":4}"}}]}`))
		}))
		defer srv.Close()

		client, err := genai.NewClient(genai.Config{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model"})
		require.NoError(t, err)

		out, err := client.CompleteJSON(context.Background(), "system", "user")
		require.NoError(t, err)
		assert.Equal(t, `{"rating":4}`, out)
	})

	t.Run("Should surface non 2xx as HTTPError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`overloaded`))
		}))
		defer srv.Close()

		client, err := genai.NewClient(genai.Config{BaseURL: srv.URL, APIKey: "k"})
		require.NoError(t, err)

		_, err = client.CompleteJSON(context.Background(), "s", "u")
		var httpErr *genai.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	})

	t.Run("Should hand back the body of a malformed 2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`rating: 4, looks good`))
		}))
		defer srv.Close()

		client, err := genai.NewClient(genai.Config{BaseURL: srv.URL, APIKey: "k"})
		require.NoError(t, err)

		out, err := client.CompleteJSON(context.Background(), "s", "u")
		assert.ErrorIs(t, err, genai.ErrMalformedResponse)
		assert.Equal(t, "rating: 4, looks good", out)
	})

	t.Run("Should refuse to build without an API key", func(t *testing.T) {
		_, err := genai.NewClient(genai.Config{})
		assert.ErrorIs(t, err, genai.ErrNotConfigured)
	})
}
