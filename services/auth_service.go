package services

import (
	"strings"
	"time"

	"github.com/rahul202k24/RestaurantPro/entity"
	"github.com/rahul202k24/RestaurantPro/repository"
	"github.com/rahul202k24/RestaurantPro/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles staff registration and login.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(username, password string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, &ValidationError{Field: "username", Message: "is required"}
	}
	if len(password) < 6 {
		return nil, &ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Role:     "staff",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
