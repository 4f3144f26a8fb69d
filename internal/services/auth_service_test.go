package services_test

import (
	"testing"
	"time"

	"temp_dashboard/internal/repository"
	"temp_dashboard/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) services.AuthService {
	return services.NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&services.RegisterInput{
		Email:     "brand@example.com",
		Password:  "s3cret-pass",
		FirstName: "Jamie",
		LastName:  "Lee",
		Role:      "brand",
	})
	require.NoError(t, err)
	assert.Equal(t, "brand", user.Role)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")

	result, err := svc.Login(&services.LoginInput{Email: "brand@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.ID)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.NotEmpty(t, result.AccessToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&services.RegisterInput{
		Email:     "brand@example.com",
		Password:  "s3cret-pass",
		FirstName: "Jamie",
		LastName:  "Lee",
	})
	require.NoError(t, err)

	_, err = svc.Login(&services.LoginInput{Email: "brand@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(&services.LoginInput{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	input := &services.RegisterInput{
		Email:     "brand@example.com",
		Password:  "s3cret-pass",
		FirstName: "Jamie",
		LastName:  "Lee",
	}
	_, err := svc.Register(input)
	require.NoError(t, err)

	_, err = svc.Register(input)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&services.RegisterInput{
		Email:     "brand@example.com",
		Password:  "s3cret-pass",
		FirstName: "Jamie",
		LastName:  "Lee",
		Role:      "brand",
	})
	require.NoError(t, err)

	result, err := svc.Login(&services.LoginInput{Email: "brand@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	tokenData, err := svc.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, tokenData.UserID)
	assert.Equal(t, "brand", tokenData.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
