// Package manifest builds and validates the machine-readable marketplace
// manifest (marketplace.json). The manifest is a derived artifact: it is
// regenerated from the catalog on every run and never edited in place, so
// it cannot drift from the plugin directories it describes.
package manifest
