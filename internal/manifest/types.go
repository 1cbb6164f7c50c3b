package manifest

import "github.com/plugsmith-labs/plugsmith/internal/catalog"

// Marketplace is the top-level shape of marketplace.json.
type Marketplace struct {
	Name     string   `json:"name"`
	Owner    Owner    `json:"owner"`
	Metadata Metadata `json:"metadata"`
	Plugins  []Plugin `json:"plugins"`
}

// Owner identifies the marketplace maintainer.
type Owner struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Metadata carries marketplace-level descriptive fields.
type Metadata struct {
	Description string `json:"description"`
	Version     string `json:"version"`
}

// Plugin is one marketplace entry, sorted into the manifest by name.
type Plugin struct {
	Name        string          `json:"name"`
	Source      string          `json:"source"`
	Description string          `json:"description"`
	Version     string          `json:"version,omitempty"`
	Category    string          `json:"category"`
	License     string          `json:"license"`
	Strict      bool            `json:"strict"`
	Keywords    []string        `json:"keywords,omitempty"`
	Author      *catalog.Author `json:"author,omitempty"`
	Agents      []Component     `json:"agents,omitempty"`
	Commands    []Component     `json:"commands,omitempty"`
	Skills      []Component     `json:"skills,omitempty"`
}

// Component is one agent, command, or skill entry under a plugin.
type Component struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Model       string `json:"model,omitempty"`
	File        string `json:"file"`
}
