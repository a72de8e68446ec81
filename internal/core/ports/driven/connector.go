package driven

import (
	"context"

	"gitsniff/internal/core/domain"
)

// Resolver validates a repository identity against the live site and
// produces the canonical contents-API endpoint for the walker.
type Resolver interface {
	// Resolve fails with a *domain.ResolveError describing which part
	// of the identity was empty or invalid.
	Resolve(ctx context.Context, id domain.RepoIdentity) (domain.Endpoint, error)
}

// Walker streams the text of every scannable file reachable from a
// repository's contents root.
//
// The traversal is depth-first preorder; siblings keep listing order.
// Production is strictly sequential, so the channel order is the
// logical left-to-right order of the tree. The error channel carries
// at most one fatal traversal error; once it yields a non-nil error
// everything already consumed from the content channel must be
// treated as invalid by the caller.
type Walker interface {
	Walk(ctx context.Context, ep domain.Endpoint) (<-chan domain.FileContent, <-chan error)
}
