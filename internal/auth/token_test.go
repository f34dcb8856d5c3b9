package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(MemberTokenLength)
	require.NoError(t, err)
	assert.Len(t, token, MemberTokenLength)

	for _, r := range token {
		assert.Contains(t, tokenAlphabet, string(r))
	}

	other, err := GenerateToken(MemberTokenLength)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestGenerateInviteCode(t *testing.T) {
	code, err := GenerateInviteCode()
	require.NoError(t, err)
	assert.Len(t, code, InviteCodeLength)
	assert.Equal(t, strings.ToUpper(code), code)

	for _, confusable := range []string{"0", "O", "1", "I", "L"} {
		assert.NotContains(t, code, confusable)
	}
}

func TestRandomString_Deterministic(t *testing.T) {
	orig := randRead
	defer func() { randRead = orig }()

	randRead = func(b []byte) (int, error) {
		for i := range b {
			b[i] = byte(i)
		}
		return len(b), nil
	}

	first, err := GenerateInviteCode()
	require.NoError(t, err)
	second, err := GenerateInviteCode()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
