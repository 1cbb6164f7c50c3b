package renderer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/aymanbagabas/go-udiff"
	"github.com/plugsmith-labs/plugsmith/internal/catalog"
	"github.com/plugsmith-labs/plugsmith/internal/manifest"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Mode selects whether rendered content is written to disk or only returned.
type Mode int

const (
	// ModeWrite writes each rendered document to its output path.
	ModeWrite Mode = iota
	// ModeDryRun renders everything in memory and writes nothing.
	ModeDryRun
)

// Options configures a Renderer.
type Options struct {
	// Now supplies the timestamp stamped into documentation targets.
	// Defaults to time.Now; tests inject a fixed clock.
	Now func() time.Time

	// Diff populates RenderResult.Diff with a unified diff against the
	// current on-disk file. Only meaningful with ModeDryRun.
	Diff bool
}

// RenderResult is the outcome for one target.
type RenderResult struct {
	Target       RenderTarget
	Content      string
	BytesWritten int    // 0 unless ModeWrite wrote the file
	Wrote        bool   // true when ModeWrite landed the file
	Diff         string // unified diff vs. existing file, when requested
}

// Renderer produces output documents from a catalog.
type Renderer struct {
	now  func() time.Time
	diff bool
}

// New returns a Renderer with the given options.
func New(opts Options) *Renderer {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Renderer{now: now, diff: opts.Diff}
}

// Render produces the requested targets from the catalog. Per-target
// failures (missing template, unwritable path) become diagnostics and the
// remaining targets still render. The error return is non-nil only when
// the context is cancelled or no target at all could be rendered.
func (r *Renderer) Render(ctx context.Context, cat *catalog.Catalog, targets []RenderTarget, mode Mode, outputDir string) ([]RenderResult, []catalog.Diagnostic, error) {
	tctx := BuildContext(cat, r.now())

	var results []RenderResult
	var diags []catalog.Diagnostic

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		content, err := r.renderTarget(target, cat, tctx)
		if err != nil {
			diags = append(diags, catalog.Errorf(catalog.CodeTemplateMissing, "", target.OutputPath,
				fmt.Sprintf("rendering target %q: %v", target.Name, err)))
			continue
		}

		result := RenderResult{Target: target, Content: content}
		outPath := filepath.Join(outputDir, target.OutputPath)

		switch mode {
		case ModeWrite:
			if err := writeFileAtomic(outPath, []byte(content)); err != nil {
				diags = append(diags, catalog.Errorf(catalog.CodeWriteFailed, "", target.OutputPath,
					fmt.Sprintf("writing target %q: %v", target.Name, err)))
				continue
			}
			result.BytesWritten = len(content)
			result.Wrote = true
		case ModeDryRun:
			if r.diff {
				result.Diff = diffAgainstExisting(outPath, content)
			}
		}

		results = append(results, result)
	}

	if len(results) == 0 && len(targets) > 0 {
		return nil, diags, fmt.Errorf("no render targets could be produced")
	}
	return results, diags, nil
}

// renderTarget produces the content for one target. The manifest target is
// pure JSON from the manifest encoder; everything else goes through its
// embedded template.
func (r *Renderer) renderTarget(target RenderTarget, cat *catalog.Catalog, tctx *Context) (string, error) {
	if target.Name == manifestTargetName {
		data, err := manifest.Encode(manifest.Build(cat))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	raw, err := templateFS.ReadFile("templates/" + target.TemplateID)
	if err != nil {
		return "", fmt.Errorf("template %q not found: %w", target.TemplateID, err)
	}

	tmpl, err := template.New(target.TemplateID).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", target.TemplateID, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, tctx); err != nil {
		return "", fmt.Errorf("executing template %q: %w", target.TemplateID, err)
	}
	return buf.String(), nil
}

// writeFileAtomic writes content to path via a temp file and rename, creating
// parent directories as needed. An interrupted run never leaves a truncated
// file behind; existing files are overwritten without backup.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalizing %s: %w", path, err)
	}
	return nil
}

// diffAgainstExisting returns a unified diff between the file currently at
// path (empty when absent) and the newly rendered content.
func diffAgainstExisting(path, content string) string {
	old := ""
	if data, err := os.ReadFile(path); err == nil {
		old = string(data)
	}
	if old == content {
		return ""
	}
	return udiff.Unified(path, path+" (rendered)", old, content)
}
