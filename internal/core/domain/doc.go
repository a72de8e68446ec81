// Package domain contains the core types of the scan pipeline: repository
// identity and its resolution failures, the file content unit streamed out
// of a repository tree, finding categories, and scan run records.
package domain
