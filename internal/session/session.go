package session

import (
	"encoding/json"
	"net/url"
)

const DefaultTokenType = "bearer"

// Session is the authenticated-user credential and status, persisted
// across gateway restarts and mirrored into a cookie so the request
// gate can read it without touching the primary store.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Token           string `json:"token,omitempty"`
	TokenType       string `json:"tokenType,omitempty"`
}

func (s Session) HasToken() bool {
	return s.Token != ""
}

// AuthorizationValue renders the header value, e.g. "bearer eyJ...".
func (s Session) AuthorizationValue() string {
	tokenType := s.TokenType
	if tokenType == "" {
		tokenType = DefaultTokenType
	}
	return tokenType + " " + s.Token
}

// envelope matches the persisted shape: {"state":{...}}. The nesting is
// part of the serialization contract shared with the cookie mirror.
type envelope struct {
	State Session `json:"state"`
}

// EncodeCookie serializes a session for the cookie channel.
func EncodeCookie(s Session) string {
	raw, _ := json.Marshal(envelope{State: s})
	return url.QueryEscape(string(raw))
}

// DecodeCookie parses a cookie value written by EncodeCookie. A missing
// or malformed value decodes to the zero (unauthenticated) session.
func DecodeCookie(value string) Session {
	if value == "" {
		return Session{}
	}
	raw, err := url.QueryUnescape(value)
	if err != nil {
		raw = value
	}
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Session{}
	}
	return env.State
}
