package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"goatgrids/internal/dto"
	"goatgrids/internal/middleware"
	"goatgrids/internal/model"
	"goatgrids/internal/repository"
)

const defaultAdminPassword = "admin123"

type AuthService interface {
	Login(username, password string) (*dto.LoginResponse, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	// EnsureDefaultAdmin seeds an admin account when the user collection is
	// empty, so a fresh deployment can be logged into.
	EnsureDefaultAdmin() error
}

type authServiceImpl struct {
	users  repository.UserRepository
	secret string
}

func NewAuthService(users repository.UserRepository, secret string) AuthService {
	return &authServiceImpl{
		users:  users,
		secret: secret,
	}
}

func (s *authServiceImpl) Login(username, password string) (*dto.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, Validationf("Username and password required")
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := middleware.NewStaffToken(s.secret, user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.StaffUser{ID: user.ID, Username: user.Username},
	}, nil
}

func (s *authServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return Validationf("Current and new password required")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(userID, string(hash))
}

func (s *authServiceImpl) EnsureDefaultAdmin() error {
	users, err := s.users.All()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.Create(&model.User{
		ID:       uuid.NewString(),
		Username: "admin",
		Password: string(hash),
	}); err != nil {
		return err
	}

	log.Println("Default admin user initialized")
	return nil
}
