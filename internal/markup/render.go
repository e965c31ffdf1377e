// Package markup converts user-authored markdown into HTML that is safe to
// render directly. Raw HTML in the input is escaped, not executed, and the
// rendered output is run through a sanitizer before storage.
package markup

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		// Raw HTML is intentionally NOT enabled: goldmark escapes it by default.
	)

	// UGCPolicy allows common formatting tags (links, lists, emphasis, code)
	// and strips scripts, event handlers, and style attributes.
	policy = bluemonday.UGCPolicy()
)

// Render converts markdown source to sanitized HTML.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}
