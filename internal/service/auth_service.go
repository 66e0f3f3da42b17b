package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"mathquiz_backend/internal/config"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"mathquiz_backend/pkg/logger"
	"net/mail"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

type StudentSignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Class    int    `json:"class" binding:"required"`
}

type TeacherSignupRequest struct {
	Email            string `json:"email" binding:"required"`
	Password         string `json:"password" binding:"required"`
	FullName         string `json:"fullName" binding:"required"`
	RegistrationCode string `json:"registrationCode" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthService struct {
	Users UserStore
	JWT   config.JWTConfig

	mu               sync.RWMutex
	registrationCode string
	emailSuffixes    []string
}

func NewAuthService(users UserStore, jwtCfg config.JWTConfig, authCfg config.AuthConfig) *AuthService {
	s := &AuthService{Users: users, JWT: jwtCfg}
	s.SetAuthConfig(authCfg)
	return s
}

// SetAuthConfig swaps the teacher registration settings, e.g. on config reload.
func (s *AuthService) SetAuthConfig(cfg config.AuthConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrationCode = cfg.TeacherRegistrationCode
	s.emailSuffixes = append([]string(nil), cfg.TeacherEmailSuffixes...)
}

func (s *AuthService) RegisterStudent(ctx context.Context, req StudentSignupRequest) (*model.User, error) {
	if !model.IsValidClassLevel(req.Class) {
		return nil, util.Validation("class must be 8, 9 or 10")
	}
	class := req.Class
	user := &model.User{
		Email:    req.Email,
		FullName: req.FullName,
		Class:    &class,
		Role:     model.Student,
		Password: req.Password,
	}
	if err := s.register(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) RegisterTeacher(ctx context.Context, req TeacherSignupRequest) (*model.User, error) {
	s.mu.RLock()
	code, suffixes := s.registrationCode, s.emailSuffixes
	s.mu.RUnlock()

	if code == "" {
		return nil, util.ErrTeacherSignupOff
	}
	if subtle.ConstantTimeCompare([]byte(req.RegistrationCode), []byte(code)) != 1 {
		return nil, util.ErrBadRegistrationKey
	}
	if !isInstitutionalEmail(req.Email, suffixes) {
		return nil, util.Validation("please use an institutional email address")
	}

	user := &model.User{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     model.Teacher,
		Password: req.Password,
	}
	if err := s.register(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func isInstitutionalEmail(email string, suffixes []string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if strings.Contains(email, "teacher") {
		return true
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(email, strings.ToLower(suffix)) {
			return true
		}
	}
	return false
}

func (s *AuthService) register(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.FullName = strings.TrimSpace(user.FullName)
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return util.Validation("invalid email address")
	}
	if user.FullName == "" {
		return util.Validation("full name is required")
	}
	if len(user.Password) < minPasswordLength {
		return util.Validation("password must be at least 6 characters")
	}

	_, err := s.Users.FindByEmail(ctx, user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return util.Internal("look up email", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return util.Internal("hash password", err)
	}
	user.Password = string(hashedPassword)
	if err := s.Users.Create(ctx, user); err != nil {
		return util.Internal("create user", err)
	}
	logger.Log.Info("User registered",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)))
	return nil
}

// Login checks credentials and, when role is set, that the account has it.
// No token is issued for a role mismatch.
func (s *AuthService) Login(ctx context.Context, req LoginRequest, role model.UserRole) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.Users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return nil, util.Internal("look up user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	switch {
	case role == model.Teacher && user.Role != model.Teacher:
		return nil, util.ErrNotTeacher
	case role == model.Student && user.Role != model.Student:
		return nil, util.ErrNotStudent
	}

	token, err := util.GenerateJWT(user, s.JWT.Secret, s.JWT.ExpireTime)
	if err != nil {
		return nil, util.Internal("sign token", err)
	}
	return &LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, util.Internal("load profile", err)
	}
	return user, nil
}
