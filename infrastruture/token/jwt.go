package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/dgrijalva/jwt-go"
)

const (
	issuerClaim  = "iss"
	subjectClaim = "sub"
	expiryClaim  = "exp"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongIssuer      = errors.New("token was issued by someone else")
	ErrMissingSubject   = errors.New("token has no subject")
	ErrUnexpectedMethod = errors.New("unexpected signing method")
)

var _ i.Tokenizer = &JwtService{}

// JwtService signs and verifies HS256 tokens for a single issuer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Issue creates a token for subject that expires after expTime.
func (s *JwtService) Issue(subject string, expTime time.Duration) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}
	return s.Generate(map[string]interface{}{subjectClaim: subject}, expTime)
}

// Generate creates a JWT for the given claims. Expiry and issuer are always
// set by the service and cannot be overridden through claims.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	jwtClaims := jwt.MapClaims{}
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims[expiryClaim] = time.Now().UTC().Add(expTime).Unix()
	jwtClaims[issuerClaim] = s.issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the claims if valid.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrWrongIssuer
	}

	return claims, nil
}

// Subject validates a token and returns the subject it was issued for.
func (s *JwtService) Subject(tokenString string) (string, error) {
	claims, err := s.Decode(tokenString)
	if err != nil {
		return "", err
	}

	subject, _ := claims[subjectClaim].(string)
	if subject == "" {
		return "", ErrMissingSubject
	}
	return subject, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedMethod
	}
	return []byte(s.secretKey), nil
}
