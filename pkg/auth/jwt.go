package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/dinehub/config"
	"github.com/shashiranjanraj/dinehub/pkg/collection"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the elevated role that bypasses ownership checks.
const RoleAdmin = "admin"

// RoleUser is assigned to every self-registered account.
const RoleUser = "user"

// ErrMissingSubject is returned when a token carries no subject claim.
var ErrMissingSubject = errors.New("auth: token has no subject")

// Identity is the account data embedded into an access token.
type Identity struct {
	ID       string
	Username string
	Name     string
	Roles    []string
}

// Claims holds the typed JWT payload.
type Claims struct {
	Username string   `json:"unique_name"`
	Name     string   `json:"name,omitempty"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether role is among the token's roles.
func (c *Claims) HasRole(role string) bool {
	return collection.Contains(c.Roles, func(r string) bool { return r == role })
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken creates a signed access token for id, valid for
// JWT_ACCESS_TOKEN_MINUTES from now.
func GenerateToken(id Identity) (string, error) {
	now := time.Now()
	ttl := time.Duration(config.JWTAccessTokenMinutes()) * time.Minute

	name := id.Name
	if name == "" {
		name = id.Username
	}

	claims := Claims{
		Username: id.Username,
		Name:     name,
		Roles:    append([]string(nil), id.Roles...),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			Issuer:    config.JWTIssuer(),
			Audience:  jwt.ClaimStrings{config.JWTAudience()},
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string: signature, issuer,
// audience and lifetime with a 30 second leeway.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(config.JWTIssuer()),
		jwt.WithAudience(config.JWTAudience()),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
