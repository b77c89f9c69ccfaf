package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_BasicBlocks(t *testing.T) {
	out := Render("# Hello\n\nSome *emphasis* and **bold**.\n\n- one\n- two\n")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<em>emphasis</em>")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<li>one</li>")
}

func TestRender_Tables(t *testing.T) {
	out := Render("| a | b |\n|---|---|\n| 1 | 2 |\n")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestRender_LinksAreHardened(t *testing.T) {
	out := Render("[site](https://example.com)")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, "noopener")
	assert.Contains(t, out, "noreferrer")
	assert.Contains(t, out, "nofollow")
}

func TestRender_StripsScripts(t *testing.T) {
	out := Render("hello <script>alert(1)</script> world")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert(1)")

	out = Render(`<a href="javascript:alert(1)">x</a>`)
	assert.NotContains(t, out, "javascript:")
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render(""))
}
