// Package github implements the GitHub adapter of the scan pipeline:
// identity resolution against the live site, and a depth-first tree
// walker over the contents API that streams file text.
package github
