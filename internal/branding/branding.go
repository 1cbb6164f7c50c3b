// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the file into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	OwnerName   string `yaml:"owner_name"`
	OwnerURL    string `yaml:"owner_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "plugsmith",
			DisplayName: "PlugSmith",
			Description: "Marketplace catalog builder for AI assistant plugins",
			HomeDir:     ".plugsmith",
			EnvPrefix:   "PLUGSMITH",
			GoModule:    "github.com/plugsmith-labs/plugsmith",
			GitHubRepo:  "plugsmith-labs/plugsmith",
			OwnerName:   "PlugSmith Labs",
			OwnerURL:    "https://github.com/plugsmith-labs",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "plugsmith").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "PlugSmith").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".plugsmith").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PLUGSMITH").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// OwnerName returns the marketplace owner name written into the manifest.
func OwnerName() string { load(); return defaults.OwnerName }

// OwnerURL returns the marketplace owner URL written into the manifest.
func OwnerURL() string { load(); return defaults.OwnerURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("OUTPUT_DIR") → "PLUGSMITH_OUTPUT_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
