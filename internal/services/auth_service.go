package services

import (
	"fmt"
	"time"

	"temp_dashboard/internal/models"
	"temp_dashboard/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=admin brand"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"token_type"`
}

// TokenData is the identity extracted from a bearer token. Downstream services
// trust the user id without re-verifying it.
type TokenData struct {
	UserID uuid.UUID
	Role   string
}

type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(input *RegisterInput) (*models.User, error)
	Login(input *LoginInput) (*LoginResult, error)
	ValidateToken(token string) (*TokenData, error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{userRepo: userRepo, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *authService) Register(input *RegisterInput) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = string(models.RoleAdmin)
	}

	user := &models.User{
		Email:     input.Email,
		Password:  string(hashed),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	user.LastLogin = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return &LoginResult{
		ID:          user.ID,
		Role:        user.Role,
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenData, error) {
	token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return &TokenData{UserID: userID, Role: claims.Role}, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	claims := &authClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
