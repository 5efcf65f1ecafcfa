// Package auth gates the dashboard: credential checks, signed session
// tokens and the gin middleware that enforces them.
package auth

import (
	"crypto/subtle"
	"strings"
)

// Identity is the authenticated principal carried in a session token.
type Identity struct {
	Username string
}

type CredentialVerifier interface {
	Verify(username, password string) (*Identity, bool)
}

// StaticCredentials accepts exactly one configured username/password pair.
type StaticCredentials struct {
	username string
	password string
}

func NewStaticCredentials(username, password string) *StaticCredentials {
	return &StaticCredentials{
		username: strings.TrimSpace(username),
		password: strings.TrimSpace(password),
	}
}

func (s *StaticCredentials) Verify(username, password string) (*Identity, bool) {
	if s.username == "" || s.password == "" {
		return nil, false
	}

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return nil, false
	}
	return &Identity{Username: s.username}, true
}
