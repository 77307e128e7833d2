// Package naming implements the template substitution engine: per-file
// substitution contexts, the batch-relative unique-suffix prefix, the
// placeholder resolver with its auto-width counter, and %{var} expansion.
package naming
