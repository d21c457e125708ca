package member

import (
	"crypto/rand"
	"fmt"
)

const (
	// AccessCodeAlphabet is the 32-symbol issuance alphabet: uppercase
	// letters and digits with the visually ambiguous I, O, 0 and 1 removed.
	AccessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// AccessCodeLength is the fixed code length. 32^6 codes keep collision
	// retries rare at any plausible membership size.
	AccessCodeLength = 6

	// maxCodeAttempts caps the collision-retry loop so issuance cannot spin
	// forever against a pathologically full directory.
	maxCodeAttempts = 10000
)

// GenerateAccessCode draws one random candidate code. Codes are shared
// secrets, so the randomness comes from crypto/rand. The alphabet size
// divides 256, which keeps the byte-modulo mapping unbiased.
func GenerateAccessCode() (string, error) {
	buf := make([]byte, AccessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	code := make([]byte, AccessCodeLength)
	for i, b := range buf {
		code[i] = AccessCodeAlphabet[int(b)%len(AccessCodeAlphabet)]
	}
	return string(code), nil
}
