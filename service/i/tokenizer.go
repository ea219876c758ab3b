package i

import (
	"time"
)

// Tokenizer issues and checks the bearer tokens guarding the record routes.
type Tokenizer interface {
	// Generate creates a token with the given claims and expiration duration.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)

	// Subject validates a token and returns its "sub" claim.
	Subject(token string) (string, error)
}
