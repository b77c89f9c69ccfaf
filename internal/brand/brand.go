// Package brand maps platform names and URLs to display colors and icons.
// Everything here is a pure lookup; no I/O is performed.
package brand

import (
	"strconv"
	"strings"
)

// Colors holds the default display scheme for a platform.
type Colors struct {
	Background string `json:"backgroundColor"` // hex color or a CSS gradient
	Text       string `json:"textColor"`       // hex color
	Icon       string `json:"iconColor"`       // hex color without '#', as used by the icon CDN
	IsGradient bool   `json:"isGradient,omitempty"`
}

// DefaultColors is the neutral fallback when no platform matches.
var DefaultColors = Colors{
	Background: "#FFFFFF",
	Text:       "#000000",
	Icon:       "000000",
}

type brandEntry struct {
	key    string
	colors Colors
}

const instagramGradient = "linear-gradient(45deg, #f09433 0%, #e6683c 25%, #dc2743 50%, #cc2366 75%, #bc1888 100%)"

// lightOn is a background with white text and icon, darkOn the inverse.
func lightOn(bg string) Colors {
	return Colors{Background: bg, Text: "#FFFFFF", Icon: "FFFFFF"}
}

func darkOn(bg string) Colors {
	return Colors{Background: bg, Text: "#000000", Icon: "000000"}
}

var black = lightOn("#000000")

// brandTable is ordered: the substring fallback in Resolve picks the first
// matching entry, so the order must stay stable.
var brandTable = []brandEntry{
	// Traditional social
	{"x", black},
	{"twitter", black},
	{"tiktok", black},
	{"instagram", Colors{Background: instagramGradient, Text: "#FFFFFF", Icon: "FFFFFF", IsGradient: true}},
	{"youtube", lightOn("#FF0000")},
	{"facebook", lightOn("#1877F2")},
	{"linkedin", lightOn("#0A66C2")},
	{"github", lightOn("#181717")},
	{"discord", lightOn("#5865F2")},
	{"snapchat", darkOn("#FFFC00")},
	{"pinterest", lightOn("#BD081C")},
	{"reddit", lightOn("#FF4500")},
	{"telegram", lightOn("#0088CC")},
	{"whatsapp", lightOn("#25D366")},
	{"spotify", lightOn("#1DB954")},
	{"twitch", lightOn("#9146FF")},
	{"vimeo", lightOn("#1AB7EA")},
	{"behance", lightOn("#1769FF")},
	{"dribbble", lightOn("#EA4C89")},
	{"medium", black},
	{"tumblr", lightOn("#001935")},
	{"soundcloud", lightOn("#FF3300")},
	{"bandcamp", lightOn("#629AA0")},

	// Web3 social
	{"lens", lightOn("#00501E")},
	{"lensprotocol", lightOn("#00501E")},
	{"farcaster", lightOn("#8A63D2")},
	{"bluesky", lightOn("#00A8E8")},
	{"bsky", lightOn("#00A8E8")},
	{"friendtech", black},
	{"friend.tech", black},
	{"mirror", black},
	{"ens", lightOn("#5298FF")},

	// Web3 marketplaces
	{"opensea", lightOn("#2081E2")},
	{"blur", black},
	{"rarible", darkOn("#FEDA03")},
	{"foundation", black},
	{"superrare", black},
	{"zora", black},
	{"manifold", black},
	{"soundxyz", black},
	{"sound.xyz", black},
	{"audius", lightOn("#313131")},
	{"showtime", black},

	// Web3 tools
	{"etherscan", lightOn("#21325B")},
	{"debank", lightOn("#1C1C1E")},
	{"zerion", black},
	{"unstoppabledomains", lightOn("#2E65F5")},

	// Web3 chains
	{"ethereum", lightOn("#627EEA")},
	{"polygon", lightOn("#8247E5")},
	{"base", lightOn("#0052FF")},
	{"arbitrum", lightOn("#28A0F0")},
	{"optimism", lightOn("#FF0420")},
	{"solana", lightOn("#9945FF")},
	{"avalanche", lightOn("#E84142")},
	{"avax", lightOn("#E84142")},
	{"bnbchain", darkOn("#F3BA2F")},
	{"bsc", darkOn("#F3BA2F")},

	// Web3 DeFi
	{"uniswap", lightOn("#FF007A")},
	{"aave", lightOn("#B6509E")},
	{"compound", lightOn("#00D395")},
	{"1inch", black},
	{"coinbase", lightOn("#0052FF")},
	{"binance", darkOn("#F3BA2F")},
}

var brandIndex = func() map[string]Colors {
	m := make(map[string]Colors, len(brandTable))
	for _, e := range brandTable {
		m[e.key] = e.colors
	}
	return m
}()

// Resolve returns the default display colors for a platform name or URL.
// Lookup order: exact match on the normalized input, then the first table
// entry contained in the input (or containing it), then DefaultColors.
func Resolve(nameOrURL string) Colors {
	normalized := strings.ToLower(strings.TrimSpace(nameOrURL))

	if c, ok := brandIndex[normalized]; ok {
		return c
	}

	if normalized != "" {
		// Loose containment match, e.g. "x (twitter)" hits "x".
		for _, e := range brandTable {
			if strings.Contains(normalized, e.key) || strings.Contains(e.key, normalized) {
				return e.colors
			}
		}
	}

	return DefaultColors
}

// HexToRGB parses a "#RRGGBB" (or "RRGGBB") color. ok is false for
// anything else, including gradients.
func HexToRGB(hex string) (r, g, b int, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

// IsDark reports whether a hex color is dark enough to need light text.
func IsDark(hex string) bool {
	r, g, b, ok := HexToRGB(hex)
	if !ok {
		return false
	}
	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	return luminance < 0.5
}
