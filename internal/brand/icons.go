package brand

import (
	"regexp"
	"strings"
)

// iconCDN is the template for Simple Icons assets: {slug}/{hex color}.
const iconCDN = "https://cdn.simpleicons.org/"

// iconSlugs maps normalized platform names to Simple Icons slugs.
var iconSlugs = map[string]string{
	// Traditional social
	"x": "x", "twitter": "x", "tiktok": "tiktok", "instagram": "instagram",
	"youtube": "youtube", "facebook": "facebook", "linkedin": "linkedin",
	"github": "github", "discord": "discord", "snapchat": "snapchat",
	"pinterest": "pinterest", "reddit": "reddit", "telegram": "telegram",
	"whatsapp": "whatsapp", "spotify": "spotify", "apple": "apple",
	"google": "google", "microsoft": "microsoft", "amazon": "amazon",
	"netflix": "netflix", "twitch": "twitch", "vimeo": "vimeo",
	"behance": "behance", "dribbble": "dribbble", "medium": "medium",
	"tumblr": "tumblr", "soundcloud": "soundcloud", "bandcamp": "bandcamp",
	// Web3 social
	"lens": "lens", "lensprotocol": "lens", "farcaster": "farcaster",
	"bluesky": "bluesky", "bsky": "bluesky", "friendtech": "friendtech",
	"friend.tech": "friendtech", "mirror": "mirror", "ens": "ens",
	// Web3 marketplaces
	"opensea": "opensea", "blur": "blur", "rarible": "rarible",
	"foundation": "foundation", "superrare": "superrare", "zora": "zora",
	"manifold": "manifold", "soundxyz": "soundxyz", "sound.xyz": "soundxyz",
	"audius": "audius", "showtime": "showtime",
	// Web3 tools
	"etherscan": "etherscan", "debank": "debank", "zerion": "zerion",
	"unstoppabledomains": "unstoppabledomains",
	// Web3 chains
	"ethereum": "ethereum", "polygon": "polygon", "base": "base",
	"arbitrum": "arbitrum", "optimism": "optimism", "solana": "solana",
	"avalanche": "avalanche", "avax": "avalanche", "bnbchain": "bnbchain",
	"bsc": "bnbchain",
	// Web3 DeFi
	"uniswap": "uniswap", "aave": "aave", "compound": "compound",
	"1inch": "1inch", "coinbase": "coinbase", "binance": "binance",
}

// IconURL builds a Simple Icons CDN URL for a slug and a hex color
// (without '#').
func IconURL(slug, color string) string {
	return iconCDN + slug + "/" + color
}

// SocialIconURL returns the icon CDN URL for a platform name, or "" when
// the platform has no known icon.
func SocialIconURL(platformName string) string {
	slug, ok := iconSlugs[strings.ToLower(strings.TrimSpace(platformName))]
	if !ok {
		return ""
	}
	return IconURL(slug, "000000")
}

var iconURLPattern = regexp.MustCompile(`^https://cdn\.simpleicons\.org/([^/]+)/([0-9a-fA-F]{6})$`)

// RewriteIconColor swaps the color segment of a Simple Icons URL for the
// given hex color. URLs of any other shape are returned unchanged, so a
// stored icon is re-tinted at render time without touching the row.
func RewriteIconColor(iconURL, color string) string {
	m := iconURLPattern.FindStringSubmatch(iconURL)
	if m == nil {
		return iconURL
	}
	return IconURL(m[1], strings.TrimPrefix(color, "#"))
}

// Platform is a URL-detection result.
type Platform struct {
	Name    string `json:"name"`
	IconURL string `json:"iconUrl,omitempty"`
}

type urlPattern struct {
	pattern *regexp.Regexp
	name    string
}

var urlPatterns = []urlPattern{
	// Traditional social
	{regexp.MustCompile(`(?:x\.com|twitter\.com)`), "X (Twitter)"},
	{regexp.MustCompile(`tiktok\.com`), "TikTok"},
	{regexp.MustCompile(`instagram\.com`), "Instagram"},
	{regexp.MustCompile(`youtube\.com|youtu\.be`), "YouTube"},
	{regexp.MustCompile(`facebook\.com`), "Facebook"},
	{regexp.MustCompile(`linkedin\.com`), "LinkedIn"},
	{regexp.MustCompile(`github\.com`), "GitHub"},
	{regexp.MustCompile(`discord\.(?:com|gg)`), "Discord"},
	{regexp.MustCompile(`snapchat\.com`), "Snapchat"},
	{regexp.MustCompile(`pinterest\.com`), "Pinterest"},
	{regexp.MustCompile(`reddit\.com`), "Reddit"},
	{regexp.MustCompile(`t\.me|telegram\.org`), "Telegram"},
	{regexp.MustCompile(`whatsapp\.com`), "WhatsApp"},
	{regexp.MustCompile(`spotify\.com`), "Spotify"},
	{regexp.MustCompile(`twitch\.tv`), "Twitch"},
	{regexp.MustCompile(`vimeo\.com`), "Vimeo"},
	{regexp.MustCompile(`behance\.net`), "Behance"},
	{regexp.MustCompile(`dribbble\.com`), "Dribbble"},
	{regexp.MustCompile(`medium\.com`), "Medium"},
	{regexp.MustCompile(`tumblr\.com`), "Tumblr"},
	{regexp.MustCompile(`soundcloud\.com`), "SoundCloud"},
	{regexp.MustCompile(`bandcamp\.com`), "Bandcamp"},
	// Web3 social
	{regexp.MustCompile(`lens\.xyz`), "Lens Protocol"},
	{regexp.MustCompile(`warpcast\.com|farcaster\.xyz`), "Farcaster"},
	{regexp.MustCompile(`bsky\.app`), "Bluesky"},
	{regexp.MustCompile(`friend\.tech`), "Friend.tech"},
	{regexp.MustCompile(`mirror\.xyz`), "Mirror"},
	{regexp.MustCompile(`ens\.domains`), "ENS"},
	// Web3 marketplaces
	{regexp.MustCompile(`opensea\.io`), "OpenSea"},
	{regexp.MustCompile(`blur\.io`), "Blur"},
	{regexp.MustCompile(`rarible\.com`), "Rarible"},
	{regexp.MustCompile(`foundation\.app`), "Foundation"},
	{regexp.MustCompile(`superrare\.com`), "SuperRare"},
	{regexp.MustCompile(`zora\.co`), "Zora"},
	{regexp.MustCompile(`manifold\.xyz`), "Manifold"},
	{regexp.MustCompile(`sound\.xyz`), "Sound.xyz"},
	{regexp.MustCompile(`audius\.co`), "Audius"},
	{regexp.MustCompile(`showtime\.xyz`), "Showtime"},
	// Web3 tools
	{regexp.MustCompile(`etherscan\.io`), "Etherscan"},
	{regexp.MustCompile(`debank\.com`), "DeBank"},
	{regexp.MustCompile(`zerion\.io`), "Zerion"},
	{regexp.MustCompile(`unstoppabledomains\.com`), "Unstoppable Domains"},
	// Web3 chains
	{regexp.MustCompile(`ethereum\.org`), "Ethereum"},
	{regexp.MustCompile(`polygon\.technology`), "Polygon"},
	{regexp.MustCompile(`base\.org`), "Base"},
	{regexp.MustCompile(`arbitrum\.io`), "Arbitrum"},
	{regexp.MustCompile(`optimism\.io`), "Optimism"},
	{regexp.MustCompile(`solana\.com`), "Solana"},
	{regexp.MustCompile(`avax\.network|avalanche\.network`), "Avalanche"},
	{regexp.MustCompile(`bnbchain\.org`), "BNB Chain"},
	// Web3 DeFi
	{regexp.MustCompile(`uniswap\.org`), "Uniswap"},
	{regexp.MustCompile(`aave\.com`), "Aave"},
	{regexp.MustCompile(`compound\.finance`), "Compound"},
	{regexp.MustCompile(`1inch\.io`), "1inch"},
	{regexp.MustCompile(`coinbase\.com`), "Coinbase"},
	{regexp.MustCompile(`binance\.com`), "Binance"},
}

var nonLetters = regexp.MustCompile(`[^a-z]`)

// DetectPlatform matches a URL against the known platform domains.
// The first pattern wins. The icon URL is looked up from the display name
// with non-letters stripped, so a few decorated names ("X (Twitter)",
// "1inch") resolve without an icon.
func DetectPlatform(url string) (*Platform, bool) {
	if url == "" {
		return nil, false
	}

	lower := strings.ToLower(url)
	for _, p := range urlPatterns {
		if p.pattern.MatchString(lower) {
			key := nonLetters.ReplaceAllString(strings.ToLower(p.name), "")
			return &Platform{Name: p.name, IconURL: SocialIconURL(key)}, true
		}
	}

	return nil, false
}

// Suggestion is one entry of the platform catalog offered while typing.
type Suggestion struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	URL     string `json:"url"`
	IconURL string `json:"iconUrl"`
}

type catalogEntry struct {
	name string
	slug string
	url  string
}

var platformCatalog = []catalogEntry{
	// Traditional social
	{"X (Twitter)", "x", "https://x.com/"},
	{"TikTok", "tiktok", "https://www.tiktok.com/@"},
	{"Instagram", "instagram", "https://www.instagram.com/"},
	{"YouTube", "youtube", "https://www.youtube.com/@"},
	{"Facebook", "facebook", "https://www.facebook.com/"},
	{"LinkedIn", "linkedin", "https://www.linkedin.com/in/"},
	{"GitHub", "github", "https://github.com/"},
	{"Discord", "discord", "https://discord.gg/"},
	{"Snapchat", "snapchat", "https://www.snapchat.com/add/"},
	{"Pinterest", "pinterest", "https://www.pinterest.com/"},
	{"Reddit", "reddit", "https://www.reddit.com/user/"},
	{"Telegram", "telegram", "https://t.me/"},
	{"WhatsApp", "whatsapp", "https://wa.me/"},
	{"Spotify", "spotify", "https://open.spotify.com/user/"},
	{"Twitch", "twitch", "https://www.twitch.tv/"},
	{"Vimeo", "vimeo", "https://vimeo.com/"},
	{"Behance", "behance", "https://www.behance.net/"},
	{"Dribbble", "dribbble", "https://dribbble.com/"},
	{"Medium", "medium", "https://medium.com/@"},
	{"Tumblr", "tumblr", "https://www.tumblr.com/blog/"},
	{"SoundCloud", "soundcloud", "https://soundcloud.com/"},
	{"Bandcamp", "bandcamp", "https://bandcamp.com/"},
	// Web3 social
	{"Lens Protocol", "lens", "https://lens.xyz/u/"},
	{"Farcaster", "farcaster", "https://farcaster.xyz/"},
	{"Bluesky", "bluesky", "https://bsky.app/profile/"},
	{"Friend.tech", "friendtech", "https://friend.tech/"},
	{"Mirror", "mirror", "https://mirror.xyz/"},
	{"ENS", "ens", "https://app.ens.domains/"},
	// Web3 marketplaces
	{"OpenSea", "opensea", "https://opensea.io/"},
	{"Blur", "blur", "https://blur.io/"},
	{"Rarible", "rarible", "https://rarible.com/"},
	{"Foundation", "foundation", "https://foundation.app/@"},
	{"SuperRare", "superrare", "https://superrare.com/"},
	{"Zora", "zora", "https://zora.co/"},
	{"Manifold", "manifold", "https://manifold.xyz/"},
	{"Sound.xyz", "soundxyz", "https://sound.xyz/"},
	{"Audius", "audius", "https://audius.co/"},
	{"Showtime", "showtime", "https://showtime.xyz/@"},
	// Web3 tools
	{"Etherscan", "etherscan", "https://etherscan.io/address/"},
	{"DeBank", "debank", "https://debank.com/profile/"},
	{"Zerion", "zerion", "https://app.zerion.io/"},
	{"Unstoppable Domains", "unstoppabledomains", "https://unstoppabledomains.com/"},
	// Web3 chains
	{"Ethereum", "ethereum", "https://ethereum.org/"},
	{"Polygon", "polygon", "https://polygon.technology/"},
	{"Base", "base", "https://base.org/"},
	{"Arbitrum", "arbitrum", "https://arbitrum.io/"},
	{"Optimism", "optimism", "https://www.optimism.io/"},
	{"Solana", "solana", "https://solana.com/"},
	{"Avalanche", "avalanche", "https://www.avax.network/"},
	{"BNB Chain", "bnbchain", "https://www.bnbchain.org/"},
	// Web3 DeFi
	{"Uniswap", "uniswap", "https://uniswap.org/"},
	{"Aave", "aave", "https://aave.com/"},
	{"Compound", "compound", "https://compound.finance/"},
	{"1inch", "1inch", "https://1inch.io/"},
	{"Coinbase", "coinbase", "https://www.coinbase.com/"},
	{"Binance", "binance", "https://www.binance.com/"},
}

const maxSuggestions = 5

// Suggest filters the platform catalog by a case-insensitive substring of
// the name or slug, capped at 5 results. An empty query returns the whole
// catalog uncapped.
func Suggest(query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Suggestion, 0, maxSuggestions)
	for _, p := range platformCatalog {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.name), q) &&
			!strings.Contains(strings.ToLower(p.slug), q) {
			continue
		}
		out = append(out, Suggestion{
			Name:    p.name,
			Slug:    p.slug,
			URL:     p.url,
			IconURL: IconURL(p.slug, "000000"),
		})
		if q != "" && len(out) == maxSuggestions {
			break
		}
	}

	return out
}
