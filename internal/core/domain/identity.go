package domain

import (
	"fmt"
	"strings"
)

// RepoIdentity is the user-supplied identification of one repository:
// either a direct web URL, or an owner and name pair. A non-empty URL
// takes precedence over owner/name.
type RepoIdentity struct {
	URL   string
	Owner string
	Name  string
}

// Empty reports whether no usable identity was supplied at all.
func (id RepoIdentity) Empty() bool {
	return id.URL == "" && id.Owner == "" && id.Name == ""
}

// Endpoint is the canonical contents-API root for one repository tree.
// It is produced exactly once per run by the resolver and immutable after.
type Endpoint struct {
	Owner string
	Name  string
}

// NewEndpoint lower-cases the owner/name segment, matching how the
// contents API canonicalises repository paths.
func NewEndpoint(owner, name string) Endpoint {
	return Endpoint{
		Owner: strings.ToLower(owner),
		Name:  strings.ToLower(name),
	}
}

// ContentsURL returns the contents-API base URL for the repository root.
func (e Endpoint) ContentsURL() string {
	return fmt.Sprintf("https://api.github.com/repos/%s/%s/contents/", e.Owner, e.Name)
}

// String returns the owner/name slug.
func (e Endpoint) String() string {
	return e.Owner + "/" + e.Name
}
