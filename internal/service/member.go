package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"goatgrids/internal/dto"
	"goatgrids/internal/middleware"
	"goatgrids/internal/model"
	"goatgrids/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

type MemberService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(email, password string) (*dto.MemberLoginResponse, error)
	Profile(id string) (*dto.MemberProfile, error)
	UpdateProfile(id string, req *dto.UpdateProfileRequest) (*dto.MemberProfile, error)
	ChangePassword(id, currentPassword, newPassword string) error
	PublicProfile(id string) (*dto.MemberPublicProfile, error)
}

type memberServiceImpl struct {
	members repository.MemberRepository
	secret  string
}

func NewMemberService(members repository.MemberRepository, secret string) MemberService {
	return &memberServiceImpl{
		members: members,
		secret:  secret,
	}
}

func (s *memberServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if req.Email == "" || req.Password == "" || req.DisplayName == "" {
		return nil, Validationf("Email, password, and display name are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, Validationf("Invalid email format")
	}
	if len(req.Password) < minPasswordLength {
		return nil, Validationf("Password must be at least %d characters", minPasswordLength)
	}

	if _, err := s.members.FindByEmail(req.Email); err == nil {
		return nil, Validationf("Email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	member := &model.Member{
		ID:          uuid.NewString(),
		Email:       strings.ToLower(req.Email),
		Password:    string(hash),
		DisplayName: req.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.members.Create(member); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Message: "Registration successful",
		Member:  memberProfile(member),
	}, nil
}

func (s *memberServiceImpl) Login(email, password string) (*dto.MemberLoginResponse, error) {
	if email == "" || password == "" {
		return nil, Validationf("Email and password required")
	}

	member, err := s.members.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := middleware.NewMemberToken(s.secret, member.ID, member.Email, member.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.MemberLoginResponse{
		Token:  token,
		Member: memberProfile(member),
	}, nil
}

func (s *memberServiceImpl) Profile(id string) (*dto.MemberProfile, error) {
	member, err := s.members.FindByID(id)
	if err != nil {
		return nil, err
	}
	profile := memberProfile(member)
	return &profile, nil
}

func (s *memberServiceImpl) UpdateProfile(id string, req *dto.UpdateProfileRequest) (*dto.MemberProfile, error) {
	member, err := s.members.Update(id, func(m *model.Member) {
		if req.DisplayName != nil && *req.DisplayName != "" {
			m.DisplayName = *req.DisplayName
		}
		if req.Bio != nil {
			m.Bio = *req.Bio
		}
		m.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return nil, err
	}
	profile := memberProfile(member)
	return &profile, nil
}

func (s *memberServiceImpl) ChangePassword(id, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return Validationf("Current and new password required")
	}
	if len(newPassword) < minPasswordLength {
		return Validationf("New password must be at least %d characters", minPasswordLength)
	}

	member, err := s.members.FindByID(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.members.Update(id, func(m *model.Member) {
		m.Password = string(hash)
		m.UpdatedAt = time.Now().UTC()
	})
	return err
}

func (s *memberServiceImpl) PublicProfile(id string) (*dto.MemberPublicProfile, error) {
	member, err := s.members.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.MemberPublicProfile{
		ID:          member.ID,
		DisplayName: member.DisplayName,
		Bio:         member.Bio,
		AvatarImage: member.AvatarImage,
		CreatedAt:   member.CreatedAt,
	}, nil
}

func memberProfile(m *model.Member) dto.MemberProfile {
	return dto.MemberProfile{
		ID:          m.ID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Bio:         m.Bio,
		AvatarImage: m.AvatarImage,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
