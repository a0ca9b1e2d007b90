package services

import (
	"errors"
	"sync"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords; the message must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Session is the process-wide authenticated identity. Role is cached at
// login time. Sessions are never persisted across restarts.
type Session struct {
	Authenticated bool
	Username      string
	Role          string
}

// Authenticator holds the single active session and gates it on the
// credential store.
type Authenticator struct {
	mu             sync.Mutex
	credentials    *CredentialService
	session        Session
	failedAttempts int
}

func NewAuthenticator(credentials *CredentialService) *Authenticator {
	return &Authenticator{credentials: credentials}
}

func (auth *Authenticator) Login(username string, password string) (Session, error) {
	auth.mu.Lock()
	defer auth.mu.Unlock()

	if !auth.credentials.Verify(username, password) {
		auth.failedAttempts++
		return Session{}, ErrInvalidCredentials
	}

	user, err := auth.credentials.Lookup(username)
	if err != nil {
		// The user vanished between verify and lookup; treat it as a
		// plain login failure.
		auth.failedAttempts++
		return Session{}, ErrInvalidCredentials
	}

	auth.failedAttempts = 0
	auth.session = Session{
		Authenticated: true,
		Username:      user.Username,
		Role:          user.Role,
	}
	return auth.session, nil
}

// Logout clears the session unconditionally and is safe to call repeatedly.
func (auth *Authenticator) Logout() {
	auth.mu.Lock()
	defer auth.mu.Unlock()
	auth.session = Session{}
}

func (auth *Authenticator) Current() Session {
	auth.mu.Lock()
	defer auth.mu.Unlock()
	return auth.session
}

// FailedAttempts is an extension point for rate limiting; nothing enforces
// a lockout yet.
func (auth *Authenticator) FailedAttempts() int {
	auth.mu.Lock()
	defer auth.mu.Unlock()
	return auth.failedAttempts
}
