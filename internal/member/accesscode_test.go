package member_test

import (
	"regexp"
	"testing"

	"github.com/adeyemik/union-register/go-api-server/internal/member"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessCode_Format(t *testing.T) {
	// Given: The issuance format - six symbols, no I, O, 0 or 1
	codePattern := regexp.MustCompile(`^[A-HJ-NP-Z2-9]{6}$`)

	// When: Generating a batch of codes
	for i := 0; i < 1000; i++ {
		code, err := member.GenerateAccessCode()
		require.NoError(t, err)

		// Then: Every code matches the issuance format
		assert.Regexp(t, codePattern, code)
		assert.Len(t, code, member.AccessCodeLength)
	}
}

func TestGenerateAccessCode_AlphabetExcludesAmbiguousSymbols(t *testing.T) {
	// Then: The alphabet has 32 symbols and none of the lookalikes
	assert.Len(t, member.AccessCodeAlphabet, 32)
	for _, forbidden := range []string{"I", "O", "0", "1"} {
		assert.NotContains(t, member.AccessCodeAlphabet, forbidden)
	}
}

func TestGenerateAccessCode_RarelyCollides(t *testing.T) {
	// Given: A batch far smaller than the 32^6 code space
	const batch = 5000
	seen := make(map[string]bool, batch)

	// When: Generating the batch
	duplicates := 0
	for i := 0; i < batch; i++ {
		code, err := member.GenerateAccessCode()
		require.NoError(t, err)
		if seen[code] {
			duplicates++
		}
		seen[code] = true
	}

	// Then: Collisions are effectively absent at this scale
	assert.Zero(t, duplicates)
}

func TestGenerateAccessCode_UsesWholeAlphabet(t *testing.T) {
	// When: Generating enough codes to touch every symbol
	used := make(map[rune]bool)
	for i := 0; i < 2000; i++ {
		code, err := member.GenerateAccessCode()
		require.NoError(t, err)
		for _, r := range code {
			used[r] = true
		}
	}

	// Then: No symbol of the alphabet is unreachable
	for _, r := range member.AccessCodeAlphabet {
		assert.True(t, used[r], "symbol %q never drawn", string(r))
	}
}
