package authstate

import (
	"context"
	"fmt"
)

// TokenStore reads the locally persisted credential token. GetToken reports
// the token and whether one is present; it must not perform network calls.
type TokenStore interface {
	GetToken() (string, bool)
}

// TokenStoreFunc adapts a function into a TokenStore.
type TokenStoreFunc func() (string, bool)

// GetToken satisfies the TokenStore interface.
func (f TokenStoreFunc) GetToken() (string, bool) {
	if f == nil {
		return "", false
	}
	return f()
}

// VerificationClient validates a token with the remote service.
// A (nil, nil) return means the service recognized the token as invalid
// without raising an error. Classified failures carry a provider code and
// message (see NewServiceError).
type VerificationClient interface {
	GetTokenInfo(ctx context.Context, token string) (*TokenInfo, error)
}

// ProfileFetcher retrieves the profile record for a validated subject.
// A (nil, nil) return means the profile was not found.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, token, username string) (*Profile, error)
}

// TokenInfo is the validation metadata returned by the verification service.
type TokenInfo struct {
	// User is the identifying username/subject of the token owner.
	User string

	// Fields carries any provider-specific metadata verbatim.
	Fields map[string]any
}

// Profile is the user profile record attached to an authenticated outcome.
type Profile struct {
	Username  string
	Name      string
	Email     string
	AvatarURL string
	Metadata  map[string]any
}

// Logger is the minimal logging contract used across the package.
type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

// LoggerProvider resolves named, scoped loggers.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTHSTATE "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTHSTATE "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTHSTATE "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTHSTATE "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
