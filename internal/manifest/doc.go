// Package manifest reads package.json manifests from package directories.
// Each manifest is validated against an embedded JSON schema before it is
// decoded. Load scans base directories concurrently and aggregates the
// packages it finds in a stable order.
package manifest
