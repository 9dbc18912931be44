package auth

import (
	"fmt"
	"os"
	"time"

	"acadia-schools/app/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 14

// Token and session lifetimes default to a school day's worth of use and can
// be tuned per deployment (Go duration strings, e.g. "8h").
func tokenTTL() time.Duration   { return envDuration("JWT_TTL", 24*time.Hour) }
func sessionTTL() time.Duration { return envDuration("SESSION_TTL", 24*time.Hour) }

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GenerateSessionID() uuid.UUID {
	return uuid.New()
}

func GetSessionExpiry() time.Time {
	return time.Now().Add(sessionTTL())
}

// JWTClaims carries the staff identity between requests. Roles travel as
// names and rebuild into models.Role values on the way back in, so the
// marks workflow checks the same role set that was present at login.
type JWTClaims struct {
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
	jwt.RegisteredClaims
}

// User materializes the claims back into the staff account the handlers and
// the marks workflow consume.
func (c *JWTClaims) User() *models.User {
	user := &models.User{
		ID:        c.UserID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		IsActive:  true,
	}
	for _, name := range c.Roles {
		user.Roles = append(user.Roles, &models.Role{Name: name})
	}
	return user
}

// HasRole reports whether the claims carry the named role, e.g.
// models.RoleAdmin.
func (c *JWTClaims) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}
	return false
}

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "acadia-schools-secret-key" // Default for development
	}
	return []byte(secret)
}

// GenerateJWT issues a signed token for the user, with role names taken
// from the user's loaded roles.
func GenerateJWT(user *models.User) (string, error) {
	roles := make([]string, len(user.Roles))
	for i, role := range user.Roles {
		roles[i] = role.Name
	}

	claims := JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "acadia-schools",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}
