package domain

import "fmt"

// ResolveFailure enumerates the distinct ways identity resolution can
// fail. Each kind maps to its own user-facing message and exit status,
// so the caller switches on the kind rather than on error identity.
type ResolveFailure int

const (
	// ResolveAllEmpty: no URL, owner or name was supplied.
	ResolveAllEmpty ResolveFailure = iota

	// ResolveInvalidURL: a URL was supplied but does not match the
	// repository-link shape, or its probe request did not succeed.
	ResolveInvalidURL

	// ResolveOwnerEmpty: no URL and no owner.
	ResolveOwnerEmpty

	// ResolveOwnerInvalid: the owner's profile page probe failed.
	ResolveOwnerInvalid

	// ResolveRepoEmpty: owner given but no repository name.
	ResolveRepoEmpty

	// ResolveRepoInvalid: the owner+name page probe failed.
	ResolveRepoInvalid
)

func (k ResolveFailure) String() string {
	switch k {
	case ResolveAllEmpty:
		return "all inputs empty"
	case ResolveInvalidURL:
		return "invalid repository URL"
	case ResolveOwnerEmpty:
		return "owner empty"
	case ResolveOwnerInvalid:
		return "owner invalid"
	case ResolveRepoEmpty:
		return "repository empty"
	case ResolveRepoInvalid:
		return "repository invalid"
	}
	return "unknown resolve failure"
}

// ResolveError is the typed failure returned by identity resolution.
type ResolveError struct {
	Kind   ResolveFailure
	Detail string
}

func (e *ResolveError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("resolve: %s", e.Kind)
	}
	return fmt.Sprintf("resolve: %s: %s", e.Kind, e.Detail)
}

// NewResolveError builds a ResolveError with an optional detail string.
func NewResolveError(kind ResolveFailure, detail string) *ResolveError {
	return &ResolveError{Kind: kind, Detail: detail}
}
