package session

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCookie(t *testing.T) {
	s := Session{IsAuthenticated: true, Token: "tok-abc", TokenType: "bearer"}

	encoded := EncodeCookie(s)
	assert.NotContains(t, encoded, `"`, "cookie value must be URL-escaped")

	decoded := DecodeCookie(encoded)
	assert.Equal(t, s, decoded)
}

func TestDecodeCookieMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "garbage", value: "not json at all"},
		{name: "bad escape", value: "%zz%"},
		{name: "wrong shape", value: url.QueryEscape(`{"token":"flat"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeCookie(tt.value)
			assert.False(t, got.IsAuthenticated)
			assert.False(t, got.HasToken())
		})
	}
}

func TestDecodeCookieUnescapedJSON(t *testing.T) {
	// Some clients store the envelope without escaping; accept it too.
	got := DecodeCookie(`{"state":{"isAuthenticated":true,"token":"raw","tokenType":"bearer"}}`)
	assert.True(t, got.IsAuthenticated)
	assert.Equal(t, "raw", got.Token)
}

func TestAuthorizationValue(t *testing.T) {
	assert.Equal(t, "bearer abc", Session{Token: "abc"}.AuthorizationValue())
	assert.Equal(t, "Token abc", Session{Token: "abc", TokenType: "Token"}.AuthorizationValue())
}
