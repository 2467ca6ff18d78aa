package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/redis"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrIncompleteAddress   = errors.New("address requires street, city, state and pincode")
	ErrNamePhoneRequired   = errors.New("name and phone are required")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

type AuthConfig struct {
	JWTSecret     string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// ProfileUpdate carries the editable profile fields. A nil Address leaves the
// saved address untouched; a non-nil one must be complete or empty.
type ProfileUpdate struct {
	Name    string
	Phone   string
	Address *model.Address
}

type AuthService interface {
	Register(email, password, name, phone string) (*model.User, *util.TokenPair, error)
	Login(email, password string) (*model.User, *util.TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
	Refresh(refreshToken string) (*util.TokenPair, error)
	GetProfile(userID uint) (*model.User, error)
	UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      AuthConfig
}

func NewAuthService(userRepo repository.UserRepository, cfg AuthConfig) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(email, password, name, phone string) (*model.User, *util.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	logger.Info("Registering new user", map[string]interface{}{
		"email": email,
	})

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		logger.Warn("Registration rejected: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, nil)
		return nil, nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Phone:        phone,
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, pair, nil
}

func (s *authService) Login(email, password string) (*model.User, *util.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: unknown email", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: wrong password", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return user, pair, nil
}

// Logout blacklists the access token for the remainder of its lifetime so it
// cannot be replayed before expiry.
func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := util.ValidateToken(accessToken, s.cfg.JWTSecret)
	if err != nil {
		// Already invalid or expired tokens need no blacklisting.
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := redis.BlacklistToken(ctx, accessToken, remaining); err != nil {
		logger.Error("Failed to blacklist token on logout", err, map[string]interface{}{
			"user_id": claims.UserID,
		})
		return err
	}

	logger.Info("User logged out", map[string]interface{}{
		"user_id": claims.UserID,
	})
	return nil
}

func (s *authService) Refresh(refreshToken string) (*util.TokenPair, error) {
	claims, err := util.ValidateToken(refreshToken, s.cfg.JWTSecret)
	if err != nil || claims.TokenType != "refresh" {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	if strings.TrimSpace(update.Name) == "" || strings.TrimSpace(update.Phone) == "" {
		return nil, ErrNamePhoneRequired
	}
	// Address is all-or-nothing: either fully specified or cleared.
	if update.Address != nil && !update.Address.IsEmpty() && !update.Address.IsComplete() {
		return nil, ErrIncompleteAddress
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = strings.TrimSpace(update.Name)
	user.Phone = strings.TrimSpace(update.Phone)
	if update.Address != nil {
		user.Address = *update.Address
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("Profile updated", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}

func (s *authService) issueTokens(user *model.User) (*util.TokenPair, error) {
	return util.GenerateTokenPair(user.ID, user.Email, string(user.Role),
		s.cfg.JWTSecret, s.cfg.AccessExpiry, s.cfg.RefreshExpiry)
}
