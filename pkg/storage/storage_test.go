package storage_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelskills-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabaseStore(t *testing.T) {
	t.Run("Should upload and return the public URL", func(t *testing.T) {
		var gotPath, gotType, gotUpsert string
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotType = r.Header.Get("Content-Type")
			gotUpsert = r.Header.Get("x-upsert")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		store, err := storage.NewSupabaseStore(srv.URL, "service-key", "skill-videos")
		require.NoError(t, err)

		data := []byte("video-bytes")
		url, err := store.Upload(context.Background(), "p1/s1/demo.mp4", "video/mp4", bytes.NewReader(data), int64(len(data)))
		require.NoError(t, err)

		assert.Equal(t, "/storage/v1/object/skill-videos/p1/s1/demo.mp4", gotPath)
		assert.Equal(t, "video/mp4", gotType)
		assert.Equal(t, "true", gotUpsert)
		assert.Equal(t, data, gotBody)
		assert.Equal(t, srv.URL+"/storage/v1/object/public/skill-videos/p1/s1/demo.mp4", url)
	})

	t.Run("Should fail on a rejected upload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		store, err := storage.NewSupabaseStore(srv.URL, "k", "b")
		require.NoError(t, err)

		_, err = store.Upload(context.Background(), "x.mp4", "video/mp4", bytes.NewReader(nil), 0)
		assert.Error(t, err)
	})

	t.Run("Should require credentials", func(t *testing.T) {
		_, err := storage.NewSupabaseStore("", "", "b")
		assert.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	t.Run("Should reject an unknown provider", func(t *testing.T) {
		_, err := storage.New(context.Background(), storage.Config{Provider: "ftp", Bucket: "b"})
		assert.Error(t, err)
	})

	t.Run("Should require a bucket", func(t *testing.T) {
		_, err := storage.New(context.Background(), storage.Config{Provider: storage.ProviderSupabase})
		assert.Error(t, err)
	})
}
