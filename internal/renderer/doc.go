// Package renderer turns a validated catalog into output documents: the
// marketplace.json manifest and the human-readable reference docs. Content
// is always rendered fully in memory; write mode lands each file with a
// temp-file-then-rename so a file is never left half written, and dry-run
// mode touches nothing at all.
package renderer
