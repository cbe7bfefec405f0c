// Package session holds the read contract for the current user's session.
// The core never reads ambient storage; callers build a Session and pass it in.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AuthorizationHeader = "Authorization"
	UsernameHeader      = "X-Username"
	bearerPrefix        = "Bearer "
)

// Session is a snapshot of the authentication state
type Session struct {
	Token         string
	Username      string
	Authenticated bool
}

// Anonymous is the unauthenticated session
var Anonymous = Session{}

// New builds a session from a bearer token and an optional username.
func New(token, username string) Session {
	return NewAt(token, username, time.Now())
}

// NewAt is New evaluated at now. A missing token means unauthenticated. Tokens
// that parse as JWTs are rejected once expired, and their username or sub
// claim takes precedence over username; username only names the holder of
// an opaque token or of a JWT carrying neither claim. Signatures are not
// checked here, the backend does that.
func NewAt(token, username string, now time.Time) Session {
	token = strings.TrimSpace(token)
	username = strings.TrimSpace(username)
	if token == "" {
		return Session{Username: username}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && !now.Before(exp.Time) {
			return Session{Username: username}
		}
		if claimed := usernameClaim(claims); claimed != "" {
			username = claimed
		}
	}

	return Session{Token: token, Username: username, Authenticated: true}
}

func usernameClaim(claims jwt.MapClaims) string {
	if name, ok := claims["username"].(string); ok && name != "" {
		return name
	}
	sub, _ := claims.GetSubject()
	return sub
}

// FromRequest reads the Authorization bearer token and X-Username header
func FromRequest(r *http.Request) Session {
	header := r.Header.Get(AuthorizationHeader)
	token := ""
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		token = header[len(bearerPrefix):]
	}
	return New(token, r.Header.Get(UsernameHeader))
}

// BearerHeader returns the Authorization header value for s
func (s Session) BearerHeader() string {
	if s.Token == "" {
		return ""
	}
	return bearerPrefix + s.Token
}
