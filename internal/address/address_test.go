package address

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_ChecksumVectors(t *testing.T) {
	// Checksummed forms from the EIP-55 reference vectors.
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}

	for _, want := range vectors {
		t.Run(want, func(t *testing.T) {
			got, err := Normalize(strings.ToLower(want))
			assert.NoError(t, err)
			assert.Equal(t, want, got)

			// Normalizing an already checksummed address is a no-op.
			again, err := Normalize(want)
			assert.NoError(t, err)
			assert.Equal(t, want, again)

			// All-uppercase hex digits normalize to the same form.
			upper := "0x" + strings.ToUpper(want[2:])
			got, err = Normalize(upper)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"not-an-address",
		"0x123",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAe",    // 39 hex chars
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAedd",  // 41 hex chars
		"0xzzzzb6053F3E94C9b9A09f33669435E7Ef1BeAed",   // non-hex
		"5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed0x",   // no prefix
	}

	for _, in := range inputs {
		_, err := Normalize(in)
		assert.ErrorIs(t, err, ErrInvalidAddress, "input %q", in)
	}
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "0x5aAe...eAed", Shorten("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.Equal(t, "0xabc", Shorten("0xabc"))
}

func TestIsShortened(t *testing.T) {
	assert.True(t, IsShortened("0x5aAe...eAed"))
	assert.True(t, IsShortened("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.False(t, IsShortened("alice"))
}
