package domain

import (
	"crypto/rand"
	"regexp"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
)

// AccessClaims is the access-token payload. Memberships are embedded so that
// request handling never needs a per-request database lookup.
type AccessClaims struct {
	UserID      string       `json:"user_id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Email       string       `json:"email"`
	CompanyID   *string      `json:"company_id,omitempty"`
	Memberships []Membership `json:"memberships"`
}

// RefreshClaims is the refresh-token payload. SID keys the server-side
// session entry; a fresh SID is minted at login and at every rotation.
type RefreshClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	SID    string `json:"sid"`
}

// TokenPair is returned by login and refresh
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SessionEntry is the server-side record tracking one refresh slot.
// RefreshToken always equals the last refresh token issued under SID;
// that equality is the anti-replay anchor.
type SessionEntry struct {
	SessionID    string `json:"session_id"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest represents a self-service credential creation
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

var sidEntropy = &ulid.LockedMonotonicReader{MonotonicReader: ulid.Monotonic(rand.Reader, 0)}

// NewSessionID mints a session id. IDs are unique, time-sortable, and
// lexicographically monotonic even within the same millisecond.
func NewSessionID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), sidEntropy).String()
}

// Token lifetimes used when the configured expiry cannot be parsed.
const (
	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

var ttlPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// maxTTLUnits bounds the numeric part of a TTL string so that even the day
// multiplier stays within time.Duration.
const maxTTLUnits = 100_000

// ParseTTL converts an expiry string like "7d" or "12h" into a duration.
// Unrecognized or out-of-range values fall back to the given default.
func ParseTTL(s string, fallback time.Duration) time.Duration {
	m := ttlPattern.FindStringSubmatch(s)
	if m == nil {
		return fallback
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n > maxTTLUnits {
		return fallback
	}
	value := time.Duration(n)

	switch m[2] {
	case "s":
		return value * time.Second
	case "m":
		return value * time.Minute
	case "h":
		return value * time.Hour
	default:
		return value * 24 * time.Hour
	}
}

// ParseRefreshTTL parses a session lifetime, falling back to DefaultRefreshTTL.
func ParseRefreshTTL(s string) time.Duration {
	return ParseTTL(s, DefaultRefreshTTL)
}
