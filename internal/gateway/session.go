// internal/gateway/session.go
package gateway

// Session supplies the current user identity and the bearer credentials
// attached to authenticated gateway calls. It is owned by the host's auth
// layer; the sync core only consumes it.
type Session interface {
	UserID() string
	UserName() string
	UserEmail() string
	// Credentials returns the auth scheme (typically "Bearer") and token.
	// ok is false when the user holds no credential; authenticated calls
	// then short-circuit to the local fallback path without hitting the wire.
	Credentials() (scheme, token string, ok bool)
}

// StaticSession is a fixed-identity Session, used by the demo binary and tests.
type StaticSession struct {
	ID     string
	Name   string
	Email  string
	Scheme string
	Token  string
}

func (s StaticSession) UserID() string    { return s.ID }
func (s StaticSession) UserName() string  { return s.Name }
func (s StaticSession) UserEmail() string { return s.Email }

func (s StaticSession) Credentials() (string, string, bool) {
	if s.Token == "" {
		return "", "", false
	}
	scheme := s.Scheme
	if scheme == "" {
		scheme = "Bearer"
	}
	return scheme, s.Token, true
}
