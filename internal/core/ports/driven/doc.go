// Package driven defines the outbound interfaces the scan services
// depend on. Adapters (HTTP transport, GitHub connector, TOML config,
// SQLite history) implement these.
package driven
