// Package catalog defines the in-memory model of a plugin marketplace:
// plugins, their components (agents, commands, skills), and the structured
// diagnostics produced while building the model. The catalog is built once
// per run by the scanner, checked by the validator, and handed frozen to
// the renderer.
package catalog
