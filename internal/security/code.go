package security

import (
	"crypto/rand"
	"fmt"
)

// Check-in codes are 8 characters drawn uniformly from [A-Z0-9], shown to
// the participant once the registration is confirmed and re-entered
// (manually or via QR scan) by the organizer at the door.
const (
	CheckInCodeLength   = 8
	checkInCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewCheckInCode issues a fresh verification code. Uniqueness is
// probabilistic (36^8 space); the schema adds a per-event unique index for
// defense in depth.
func NewCheckInCode() (string, error) {
	// Reject bytes >= 252 (the largest multiple of 36 below 256) so every
	// alphabet character is equally likely.
	const limit = 252
	code := make([]byte, 0, CheckInCodeLength)
	buf := make([]byte, 16)
	for len(code) < CheckInCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			code = append(code, checkInCodeAlphabet[int(b)%len(checkInCodeAlphabet)])
			if len(code) == CheckInCodeLength {
				break
			}
		}
	}
	return string(code), nil
}

// ValidCheckInCode reports whether s has the exact check-in code format.
func ValidCheckInCode(s string) bool {
	if len(s) != CheckInCodeLength {
		return false
	}
	for _, c := range s {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
