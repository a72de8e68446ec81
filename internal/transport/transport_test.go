package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Run("returns status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("hello"))
		}))
		defer srv.Close()

		tr := New()
		resp, err := tr.Get(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "hello", string(resp.Body))
		assert.True(t, resp.OK())
	})

	t.Run("non-2xx status is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		tr := New()
		resp, err := tr.Get(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.False(t, resp.OK())
	})

	t.Run("sends configured headers", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		tr := New(WithHeader("Authorization", "Bearer abc"))
		_, err := tr.Get(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "Bearer abc", got)
	})

	t.Run("transport failure is an error", func(t *testing.T) {
		tr := New(WithTimeout(100 * time.Millisecond))
		_, err := tr.Get(context.Background(), "http://127.0.0.1:1")

		assert.Error(t, err)
	})
}

func TestProbe(t *testing.T) {
	t.Run("true for 2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		assert.True(t, New().Probe(context.Background(), srv.URL))
	})

	t.Run("false for 3xx and above", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		assert.False(t, New().Probe(context.Background(), srv.URL))
	})

	t.Run("false when the request cannot be made", func(t *testing.T) {
		tr := New(WithTimeout(100 * time.Millisecond))
		assert.False(t, tr.Probe(context.Background(), "http://127.0.0.1:1"))
	})
}
