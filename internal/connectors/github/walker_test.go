package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitsniff/internal/core/domain"
	"gitsniff/internal/transport"
)

// newFixtureWalker wires a walker against a local server that fakes
// the contents API and the raw download host.
func newFixtureWalker(t *testing.T, handler http.Handler) (*Walker, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClientWithHTTPClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.GitHub().BaseURL = base

	return NewWalker(client, transport.New()), srv
}

// fixtureTree serves a synthetic repository:
//
//	a.png  (ignored extension)
//	b.txt  ("b text")
//	sub/c.md ("c text")
type fixtureTree struct {
	mu       sync.Mutex
	srvURL   string
	rawHits  []string
	failPath string // raw path answered with 500
}

func (f *fixtureTree) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	srvURL := f.srvURL
	f.mu.Unlock()

	switch r.URL.Path {
	case "/repos/owner/repo/contents/":
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"type":"file","name":"a.png","path":"a.png","size":4,"download_url":"` + srvURL + `/raw/a.png"},
			{"type":"file","name":"b.txt","path":"b.txt","size":6,"download_url":"` + srvURL + `/raw/b.txt"},
			{"type":"dir","name":"sub","path":"sub","url":"` + srvURL + `/repos/owner/repo/contents/sub"}
		]`))
	case "/repos/owner/repo/contents/sub":
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"type":"file","name":"c.md","path":"sub/c.md","size":6,"download_url":"` + srvURL + `/raw/sub/c.md"}
		]`))
	case "/raw/a.png", "/raw/b.txt", "/raw/sub/c.md":
		f.mu.Lock()
		f.rawHits = append(f.rawHits, r.URL.Path)
		fail := f.failPath == r.URL.Path
		f.mu.Unlock()

		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/raw/b.txt":
			_, _ = w.Write([]byte("b text"))
		case "/raw/sub/c.md":
			_, _ = w.Write([]byte("c text"))
		default:
			_, _ = w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
		}
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}
}

func collect(docs <-chan domain.FileContent, errs <-chan error) ([]domain.FileContent, error) {
	var out []domain.FileContent
	for doc := range docs {
		out = append(out, doc)
	}
	return out, <-errs
}

func TestWalk(t *testing.T) {
	t.Run("depth-first order, ignored extensions never fetched", func(t *testing.T) {
		tree := &fixtureTree{}
		w, srv := newFixtureWalker(t, tree)
		tree.srvURL = srv.URL

		docs, errs := w.Walk(context.Background(), domain.Endpoint{Owner: "owner", Name: "repo"})
		got, err := collect(docs, errs)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b.txt", got[0].Path)
		assert.Equal(t, "b text", got[0].Text)
		assert.Equal(t, "sub/c.md", got[1].Path)
		assert.Equal(t, "c text", got[1].Text)
		assert.NotContains(t, tree.rawHits, "/raw/a.png")
	})

	t.Run("retrieval failure aborts the traversal", func(t *testing.T) {
		tree := &fixtureTree{failPath: "/raw/sub/c.md"}
		w, srv := newFixtureWalker(t, tree)
		tree.srvURL = srv.URL

		docs, errs := w.Walk(context.Background(), domain.Endpoint{Owner: "owner", Name: "repo"})
		got, err := collect(docs, errs)

		require.Error(t, err)
		assert.True(t, IsRetrievalError(err), "expected retrieval error, got %v", err)
		// b.txt was emitted before the failure; run policy discards it.
		require.Len(t, got, 1)
		assert.Equal(t, "b.txt", got[0].Path)
	})

	t.Run("listing failure surfaces as API error", func(t *testing.T) {
		w, _ := newFixtureWalker(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}))

		docs, errs := w.Walk(context.Background(), domain.Endpoint{Owner: "owner", Name: "gone"})
		got, err := collect(docs, errs)

		require.Error(t, err)
		assert.True(t, IsAPIError(err), "expected API error, got %v", err)
		assert.Empty(t, got)
	})
}

func TestSkipByExtension(t *testing.T) {
	tests := []struct {
		name string
		skip bool
	}{
		{"logo.png", true},
		{"photo.JPG", true},
		{"favicon.ico", true},
		{"diagram.svg", true},
		{"README", false},
		{"main.go", false},
		{"notes.txt", false},
		{"archive.tar.gz", false},
		{"trailing.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.skip, skipByExtension(tt.name))
		})
	}
}
