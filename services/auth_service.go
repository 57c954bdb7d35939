package services

import (
	"errors"
	"strings"
	"time"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/godz1llla/DAMDI-QR-ORG/repository"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRestaurantBlocked  = errors.New("restaurant is deactivated")
)

type AuthService struct {
	userRepo  *repository.UserRepository
	restRepo  *repository.RestaurantRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, restRepo *repository.RestaurantRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		restRepo:  restRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login checks credentials and, for tenant-bound roles, that the tenant is
// still active. Deactivated restaurants keep their data but lose access.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if user.Role == entity.RoleAdmin || user.Role == entity.RoleStaff {
		if user.RestaurantID == nil {
			return "", nil, ErrRestaurantBlocked
		}
		rest, err := s.restRepo.FindByID(*user.RestaurantID)
		if err != nil || !rest.IsActive {
			return "", nil, ErrRestaurantBlocked
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.RestaurantID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
