package address

import (
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ErrInvalidAddress is returned when the input is not a well-formed wallet address.
var ErrInvalidAddress = errors.New("invalid wallet address")

// Normalize returns the EIP-55 checksummed form of a wallet address.
// Input may use any letter casing but must be "0x" followed by 40 hex digits.
func Normalize(addr string) (string, error) {
	s := strings.TrimSpace(addr)
	if len(s) != 42 || (s[:2] != "0x" && s[:2] != "0X") {
		return "", ErrInvalidAddress
	}

	lower := strings.ToLower(s[2:])
	if _, err := hex.DecodeString(lower); err != nil {
		return "", ErrInvalidAddress
	}

	// Checksum casing: a hex letter is uppercased when the corresponding
	// nibble of keccak256(lowercase address) is >= 8.
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			out[i] = c - 'a' + 'A'
		}
	}

	return "0x" + string(out), nil
}

// Shorten returns the truncated display form of an address:
// the first 6 characters and the last 4, joined by "...".
func Shorten(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// IsShortened reports whether a display name looks like a raw or truncated
// wallet address rather than a chosen name.
func IsShortened(name string) bool {
	return strings.HasPrefix(name, "0x")
}
