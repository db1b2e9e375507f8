package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issued = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	claims := NewClaims("user-123", AudienceUser, issued, time.Hour)

	tok, err := GenerateToken(claims, secret)
	require.NoError(t, err)

	got, err := ParseToken(tok, AudienceUser, secret, issued.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "user-123", got.Subject)
	assert.Equal(t, claims.ID, got.ID)
	assert.NotEmpty(t, got.ID)
}

func TestNewClaims_UniqueTokenIDs(t *testing.T) {
	t.Parallel()

	a := NewClaims("u1", AudienceUser, issued, time.Hour)
	b := NewClaims("u1", AudienceUser, issued, time.Hour)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseToken_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	validity := 30 * 24 * time.Hour
	tok, err := GenerateToken(NewClaims("u1", AudienceUser, issued, validity), secret)
	require.NoError(t, err)

	_, err = ParseToken(tok, AudienceUser, secret, issued.Add(29*24*time.Hour))
	require.NoError(t, err, "token must be accepted within its validity")

	_, err = ParseToken(tok, AudienceUser, secret, issued.Add(validity+time.Minute))
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParseToken_Rejections(t *testing.T) {
	t.Parallel()

	secret := []byte("right-secret")
	userTok, err := GenerateToken(NewClaims("u2", AudienceUser, issued, time.Hour), secret)
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ID: "j", Subject: "u2", Audience: jwt.ClaimStrings{AudienceUser},
	}})
	noExpTok, err := noExp.SignedString(secret)
	require.NoError(t, err)

	noneTok, err := jwt.NewWithClaims(jwt.SigningMethodNone, NewClaims("u2", AudienceUser, issued, time.Hour)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	pos := len(userTok) - 6
	swap := byte('A')
	if userTok[pos] == 'A' {
		swap = 'B'
	}
	tampered := userTok[:pos] + string(swap) + userTok[pos+1:]

	tests := []struct {
		name     string
		token    string
		audience string
		secret   []byte
	}{
		{name: "wrong secret", token: userTok, audience: AudienceUser, secret: []byte("wrong-secret")},
		{name: "wrong audience", token: userTok, audience: AudienceAdmin, secret: secret},
		{name: "malformed", token: "not.a.jwt", audience: AudienceUser, secret: secret},
		{name: "empty", token: "", audience: AudienceUser, secret: secret},
		{name: "missing expiry", token: noExpTok, audience: AudienceUser, secret: secret},
		{name: "alg none", token: noneTok, audience: AudienceUser, secret: secret},
		{name: "tampered signature", token: tampered, audience: AudienceUser, secret: secret},
		{name: "truncated", token: userTok[:len(userTok)-5], audience: AudienceUser, secret: secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.audience, tt.secret, issued.Add(time.Minute))
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}
