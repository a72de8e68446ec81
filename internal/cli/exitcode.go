package cli

import (
	"errors"

	"gitsniff/internal/connectors/github"
	"gitsniff/internal/core/domain"
)

// Exit codes. Each identity failure gets its own status so a calling
// shell can tell them apart.
const (
	ExitSuccess        = 0
	ExitParameterError = 1
	ExitAllEmpty       = 2
	ExitInvalidURL     = 3
	ExitOwnerEmpty     = 4
	ExitOwnerInvalid   = 5
	ExitRepoEmpty      = 6
	ExitRepoInvalid    = 7
	ExitRetrievalError = 8
	ExitAPIError       = 9
	ExitUnknown        = 255
)

// exitError carries an exit code and a user-facing message out of a
// command run.
type exitError struct {
	code    int
	message string
	err     error
}

func (e *exitError) Error() string {
	return e.message
}

func (e *exitError) Unwrap() error {
	return e.err
}

// scanExit maps a scan failure to its exit code and message.
func scanExit(err error) *exitError {
	var resErr *domain.ResolveError
	if errors.As(err, &resErr) {
		return &exitError{code: resolveExitCode(resErr.Kind), message: resolveMessage(resErr.Kind), err: err}
	}

	if github.IsRetrievalError(err) {
		return &exitError{
			code:    ExitRetrievalError,
			message: "a file download failed; execution stopped, partial data will not be printed",
			err:     err,
		}
	}
	if github.IsAPIError(err) || github.IsRateLimited(err) {
		return &exitError{
			code:    ExitAPIError,
			message: "GitHub API request failed; execution stopped, partial data will not be printed",
			err:     err,
		}
	}

	return &exitError{code: ExitUnknown, message: err.Error(), err: err}
}

func resolveExitCode(kind domain.ResolveFailure) int {
	switch kind {
	case domain.ResolveAllEmpty:
		return ExitAllEmpty
	case domain.ResolveInvalidURL:
		return ExitInvalidURL
	case domain.ResolveOwnerEmpty:
		return ExitOwnerEmpty
	case domain.ResolveOwnerInvalid:
		return ExitOwnerInvalid
	case domain.ResolveRepoEmpty:
		return ExitRepoEmpty
	case domain.ResolveRepoInvalid:
		return ExitRepoInvalid
	}
	return ExitUnknown
}

func resolveMessage(kind domain.ResolveFailure) string {
	switch kind {
	case domain.ResolveAllEmpty:
		return "no repository identity supplied: use --owner and --repo, or --url"
	case domain.ResolveInvalidURL:
		return "the URL provided does not match a valid GitHub repository"
	case domain.ResolveOwnerEmpty:
		return "owner is empty"
	case domain.ResolveOwnerInvalid:
		return "the owner provided does not match a valid GitHub user"
	case domain.ResolveRepoEmpty:
		return "repository is empty"
	case domain.ResolveRepoInvalid:
		return "owner and repository do not identify a valid GitHub repository"
	}
	return "unknown resolve failure"
}
