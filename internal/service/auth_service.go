package service

import (
	"context"
	"os"
	"time"

	"stock-visibility-be/internal/dto"
	"stock-visibility-be/internal/pkg/logger"
	"stock-visibility-be/internal/repository/memory"
	"stock-visibility-be/internal/repository/specification"
	"stock-visibility-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory    unitofwork.RepositoryFactory
	loginAttempts *memory.LoginAttemptRepository
	logger        logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	loginAttempts *memory.LoginAttemptRepository,
	sysLogger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:    uowFactory,
		loginAttempts: loginAttempts,
		logger:        sysLogger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.loginAttempts.IsBlocked(req.Email) {
		return nil, fiber.NewError(fiber.StatusTooManyRequests, "Too many failed attempts, try again later")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.AdminUserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.loginAttempts.RecordFailure(req.Email)
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.loginAttempts.RecordFailure(req.Email)
		s.logger.Warn("AuthService", "Failed login attempt", map[string]interface{}{"email": req.Email})
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if user.Status != "active" {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is not active")
	}

	s.loginAttempts.Reset(req.Email)

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:    signed,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
