package structs

import (
	"time"

	"github.com/google/uuid"
)

// AuthClaims are the validated claims of an access token. Token
// issuance lives in the identity provider; this server only verifies.
type AuthClaims struct {
	Sub   uuid.UUID `json:"sub"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
}
