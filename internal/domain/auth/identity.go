package auth

import (
	"strings"

	"github.com/google/uuid"
)

// Identity is a caller resolved from a verified access token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Caller describes who is acting on a request. Identity is nil for anonymous
// callers; ClaimedEmail is what an anonymous caller typed into the request body.
type Caller struct {
	Identity     *Identity
	ClaimedEmail string
}

func Anonymous(claimedEmail string) Caller {
	return Caller{ClaimedEmail: claimedEmail}
}

func Authenticated(id Identity, claimedEmail string) Caller {
	return Caller{Identity: &id, ClaimedEmail: claimedEmail}
}

func (c Caller) IsAuthenticated() bool {
	return c.Identity != nil && c.Identity.UserID != uuid.Nil
}

// Is reports whether the caller's resolved identity equals userID.
func (c Caller) Is(userID uuid.UUID) bool {
	return c.IsAuthenticated() && c.Identity.UserID == userID
}

// EmailMatches compares the claimed email against stored case-insensitively.
// An empty claim never matches.
func (c Caller) EmailMatches(stored string) bool {
	claimed := NormalizeEmail(c.ClaimedEmail)
	return claimed != "" && claimed == NormalizeEmail(stored)
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
