package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"acadia-schools/app/models"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	staff := &models.User{
		ID:        "u1",
		Email:     "t@school.test",
		FirstName: "Amina",
		LastName:  "Nakato",
		Roles:     []*models.Role{{Name: models.RoleTeacher}},
	}

	token, err := GenerateJWT(staff)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "t@school.test", claims.Email)
	assert.Equal(t, []string{models.RoleTeacher}, claims.Roles)

	assert.True(t, claims.HasRole(models.RoleTeacher))
	assert.False(t, claims.HasRole(models.RoleAdmin))

	// The rebuilt user carries the same roles the workflow checks
	user := claims.User()
	assert.Equal(t, staff.ID, user.ID)
	assert.True(t, user.HasRole(models.RoleTeacher))
	assert.False(t, user.HasRole(models.RoleAdmin))
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestGenerateSessionID(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()
	assert.NotEqual(t, a, b)
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "8h")
	assert.Equal(t, 8*time.Hour, tokenTTL())

	t.Setenv("JWT_TTL", "nonsense")
	assert.Equal(t, 24*time.Hour, tokenTTL())

	t.Setenv("JWT_TTL", "")
	assert.Equal(t, 24*time.Hour, tokenTTL())
}
