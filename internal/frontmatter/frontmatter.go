// Package frontmatter extracts the YAML metadata block from the top of a
// Markdown file. A block is delimited by a leading "---" line and a closing
// "---" line; everything after the closing delimiter is the body.
package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// Fields holds the parsed frontmatter as a flat string mapping. Non-string
// scalar values are stringified; nested structures are dropped.
type Fields map[string]string

// Get returns the value for key, or empty string.
func (f Fields) Get(key string) string {
	return f[key]
}

// Has reports whether key is present.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Extract parses content and returns its frontmatter fields. It returns an
// error when the file has no frontmatter block or the block is not valid YAML.
func Extract(content []byte) (Fields, error) {
	if !bytes.HasPrefix(content, []byte("---")) {
		return nil, fmt.Errorf("missing frontmatter block")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, fmt.Errorf("parsing markdown: %w", err)
	}

	metaData, err := meta.TryGet(pctx)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}
	if metaData == nil {
		return nil, fmt.Errorf("missing frontmatter block")
	}

	fields := make(Fields, len(metaData))
	for k, v := range metaData {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case bool, int, int64, uint64, float64:
			fields[k] = fmt.Sprint(val)
		}
	}
	return fields, nil
}

// Body returns the Markdown content after the frontmatter block. Content
// without a complete block is returned unchanged.
func Body(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
