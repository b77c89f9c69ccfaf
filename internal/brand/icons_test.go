package brand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSocialIconURL(t *testing.T) {
	assert.Equal(t, "https://cdn.simpleicons.org/github/000000", SocialIconURL("github"))
	assert.Equal(t, "https://cdn.simpleicons.org/x/000000", SocialIconURL("twitter"))
	assert.Equal(t, "https://cdn.simpleicons.org/bluesky/000000", SocialIconURL("bsky"))
	assert.Equal(t, "", SocialIconURL("unknown-platform"))
}

func TestRewriteIconColor(t *testing.T) {
	in := "https://cdn.simpleicons.org/github/000000"
	assert.Equal(t, "https://cdn.simpleicons.org/github/FFFFFF", RewriteIconColor(in, "FFFFFF"))
	assert.Equal(t, "https://cdn.simpleicons.org/github/FFFFFF", RewriteIconColor(in, "#FFFFFF"))

	// Non-CDN URLs pass through untouched.
	assert.Equal(t, "https://example.com/icon.png", RewriteIconColor("https://example.com/icon.png", "FFFFFF"))
	assert.Equal(t, "data:image/png;base64,AAAA", RewriteIconColor("data:image/png;base64,AAAA", "FFFFFF"))
}

func TestDetectPlatform(t *testing.T) {
	p, ok := DetectPlatform("https://github.com/alice")
	assert.True(t, ok)
	assert.Equal(t, "GitHub", p.Name)
	assert.NotEmpty(t, p.IconURL)

	p, ok = DetectPlatform("https://WWW.YOUTUBE.COM/@someone")
	assert.True(t, ok)
	assert.Equal(t, "YouTube", p.Name)

	// x.com and twitter.com map to the same display name.
	p, ok = DetectPlatform("https://x.com/alice")
	assert.True(t, ok)
	assert.Equal(t, "X (Twitter)", p.Name)

	_, ok = DetectPlatform("https://example.com")
	assert.False(t, ok)

	_, ok = DetectPlatform("")
	assert.False(t, ok)
}

func TestSuggest_EmptyQueryReturnsFullCatalog(t *testing.T) {
	all := Suggest("")
	assert.Equal(t, len(platformCatalog), len(all))
	for _, s := range all {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Slug)
		assert.True(t, strings.HasPrefix(s.IconURL, "https://cdn.simpleicons.org/"))
	}
}

func TestSuggest_FiltersByNameOrSlug(t *testing.T) {
	got := Suggest("twit")
	assert.NotEmpty(t, got)
	for _, s := range got {
		match := strings.Contains(strings.ToLower(s.Name), "twit") ||
			strings.Contains(strings.ToLower(s.Slug), "twit")
		assert.True(t, match, s.Name)
	}

	// Slug-only match.
	got = Suggest("bsky")
	assert.Empty(t, got)
	got = Suggest("bluesky")
	assert.Len(t, got, 1)
	assert.Equal(t, "Bluesky", got[0].Name)
}

func TestSuggest_CapsAtFive(t *testing.T) {
	got := Suggest("a")
	assert.Len(t, got, 5)
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Suggest("GITHUB"), Suggest("github"))
}
