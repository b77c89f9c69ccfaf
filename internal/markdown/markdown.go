// Package markdown renders untrusted user markdown to sanitized HTML.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// External links open out of page and never leak a referrer or opener.
	p.RequireNoFollowOnLinks(true)
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

// Render converts markdown (headings, emphasis, lists, links, code,
// tables, blockquotes) to sanitized HTML. Empty input yields "".
func Render(source string) string {
	if source == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		// Conversion only fails on writer errors, which bytes.Buffer
		// never produces; sanitize the raw text as a fallback.
		return policy.Sanitize(source)
	}

	return policy.Sanitize(buf.String())
}
