package auth

import (
	"crypto/rand"
	"fmt"
)

const (
	// MemberTokenLength is the length of the opaque per-membership secret.
	MemberTokenLength = 40

	// InviteCodeLength is the length of the human-shareable room code.
	InviteCodeLength = 6

	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// No 0/O, 1/I/L: invite codes get read aloud and typed back.
	inviteAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// randRead is swapped out in tests for a deterministic source.
var randRead = rand.Read

// GenerateToken returns a cryptographically random alphanumeric string
// of length n, used as a membership secret.
func GenerateToken(n int) (string, error) {
	return randomString(n, tokenAlphabet)
}

// GenerateInviteCode returns a short upper-case code over an alphabet
// with visually confusable characters removed.
func GenerateInviteCode() (string, error) {
	return randomString(InviteCodeLength, inviteAlphabet)
}

func randomString(n int, alphabet string) (string, error) {
	b := make([]byte, n)
	if _, err := randRead(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b), nil
}
