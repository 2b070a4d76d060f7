package domain

import (
	"github.com/google/uuid"
)

// TokenData is the identity claim recovered from a verified access token.
// It lives only for the duration of a request.
type TokenData struct {
	UserID string
}

// UUID parses the identity claim into a concrete user id. A token whose id
// claim was missing or malformed fails here, which callers report as a
// not-found condition rather than an authentication failure.
func (t TokenData) UUID() (uuid.UUID, error) {
	return uuid.Parse(t.UserID)
}
