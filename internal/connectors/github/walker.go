package github

import (
	"context"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"gitsniff/internal/core/domain"
	"gitsniff/internal/core/ports/driven"
	"gitsniff/internal/logger"
)

// ignoredExtensions lists image/icon formats never fetched; their
// bytes would only feed binary noise to the matchers.
var ignoredExtensions = map[string]bool{
	"png": true, "jpg": true, "ico": true, "svg": true,
}

// Ensure Walker implements the interface.
var _ driven.Walker = (*Walker)(nil)

// Walker streams file text out of a repository tree, depth-first in
// listing order. Directory listings go through the API client; file
// bodies are fetched from their download_url over the raw transport.
type Walker struct {
	client    *Client
	transport driven.Transport
}

// NewWalker creates a tree walker.
func NewWalker(client *Client, transport driven.Transport) *Walker {
	return &Walker{client: client, transport: transport}
}

// Walk traverses the tree under ep and emits one FileContent per
// scannable file. A single sequential producer preserves preorder.
// On any listing or retrieval failure the traversal aborts: the error
// channel yields the failure and the caller must discard everything
// already received.
func (w *Walker) Walk(ctx context.Context, ep domain.Endpoint) (<-chan domain.FileContent, <-chan error) {
	docs := make(chan domain.FileContent)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		if err := w.walkDir(ctx, ep, "", docs); err != nil {
			errs <- err
		}
	}()

	return docs, errs
}

// walkDir lists one directory and recurses into subdirectories in
// listing order before moving on, emitting files as they are met.
func (w *Walker) walkDir(ctx context.Context, ep domain.Endpoint, path string, out chan<- domain.FileContent) error {
	entries, err := w.client.ListDirectory(ctx, ep.Owner, ep.Name, path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		switch entry.GetType() {
		case "dir":
			if err := w.walkDir(ctx, ep, entry.GetPath(), out); err != nil {
				return err
			}
		case "file":
			if skipByExtension(entry.GetName()) {
				logger.Debug("skipping %s, extension is ignored", entry.GetPath())
				continue
			}
			content, err := w.fetchFile(ctx, entry)
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case out <- content:
			}
		default:
			logger.Warn("ignoring entry %s with unknown type %q", entry.GetPath(), entry.GetType())
		}
	}

	return nil
}

// fetchFile downloads one file's raw text.
func (w *Walker) fetchFile(ctx context.Context, entry *gh.RepositoryContent) (domain.FileContent, error) {
	path := entry.GetPath()
	url := entry.GetDownloadURL()

	logger.Debug("working on file %s, size is %d", path, entry.GetSize())

	resp, err := w.transport.Get(ctx, url)
	if err != nil {
		return domain.FileContent{}, &RetrievalError{Path: path, URL: url, Err: err}
	}
	if !resp.OK() {
		return domain.FileContent{}, &RetrievalError{Path: path, URL: url, StatusCode: resp.StatusCode}
	}

	return domain.FileContent{
		Path: path,
		Size: int64(entry.GetSize()),
		Text: string(resp.Body),
	}, nil
}

// skipByExtension reports whether the file name's final extension is
// on the ignore list. A name with no extension is never skipped.
func skipByExtension(name string) bool {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return false
	}
	return ignoredExtensions[strings.ToLower(name[idx+1:])]
}
