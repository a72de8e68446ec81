package github

import (
	"context"
	"regexp"

	"gitsniff/internal/core/domain"
	"gitsniff/internal/core/ports/driven"
	"gitsniff/internal/logger"
)

// DefaultWebBase is the web host probed during identity resolution.
const DefaultWebBase = "https://github.com"

// repoURLPattern is the expected repository-link shape: optional
// scheme, optional www, the host, then exactly two path segments of
// word characters and hyphens.
var repoURLPattern = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?github\.com/([\w-]+)/([\w-]+)$`)

// Ensure Resolver implements the interface.
var _ driven.Resolver = (*Resolver)(nil)

// Resolver validates a repository identity with live probes against
// the web site and rewrites it to the contents-API endpoint.
type Resolver struct {
	transport driven.Transport
	webBase   string
}

// NewResolver creates a resolver probing the public GitHub site.
func NewResolver(transport driven.Transport) *Resolver {
	return &Resolver{transport: transport, webBase: DefaultWebBase}
}

// NewResolverWithBase creates a resolver probing a custom web base.
// Useful for tests.
func NewResolverWithBase(transport driven.Transport, webBase string) *Resolver {
	return &Resolver{transport: transport, webBase: webBase}
}

// Resolve validates the identity and produces the canonical endpoint.
//
// A non-empty URL takes precedence: it must match the repository-link
// shape AND answer a live probe. Otherwise owner and name are checked
// in that order, owner first, so an invalid owner is never masked by
// the more specific repository error.
func (r *Resolver) Resolve(ctx context.Context, id domain.RepoIdentity) (domain.Endpoint, error) {
	if id.Empty() {
		return domain.Endpoint{}, domain.NewResolveError(domain.ResolveAllEmpty, "")
	}

	if id.URL != "" {
		m := repoURLPattern.FindStringSubmatch(id.URL)
		if m == nil || !r.transport.Probe(ctx, id.URL) {
			return domain.Endpoint{}, domain.NewResolveError(domain.ResolveInvalidURL, id.URL)
		}
		logger.Info("%s is a valid repository URL, owner and name inputs are ignored", id.URL)
		return domain.NewEndpoint(m[1], m[2]), nil
	}

	logger.Debug("no URL supplied, validating owner and name")

	if id.Owner == "" {
		return domain.Endpoint{}, domain.NewResolveError(domain.ResolveOwnerEmpty, "")
	}
	if !r.transport.Probe(ctx, r.webBase+"/"+id.Owner) {
		return domain.Endpoint{}, domain.NewResolveError(domain.ResolveOwnerInvalid, id.Owner)
	}

	if id.Name == "" {
		return domain.Endpoint{}, domain.NewResolveError(domain.ResolveRepoEmpty, "")
	}
	if !r.transport.Probe(ctx, r.webBase+"/"+id.Owner+"/"+id.Name) {
		return domain.Endpoint{}, domain.NewResolveError(domain.ResolveRepoInvalid, id.Owner+"/"+id.Name)
	}

	logger.Info("owner and name match a valid repository")
	return domain.NewEndpoint(id.Owner, id.Name), nil
}
