package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/seyf-eddine19/HRM/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, username string) (*AuthResponse, error)
	ChangeCredentials(ctx context.Context, req ChangeCredentialsRequest) (AuthResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (string, string, AuthResponse, error) {
	op, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("login failed, unknown username", zap.String("username", username))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.Password), []byte(password)); err != nil {
		s.logger.Warn("login failed, wrong password", zap.String("username", username))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(op.Username, op.Role, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(op.Username, op.Role, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("username", op.Username))
	return accessToken, refreshToken, AuthResponse{
		Username: op.Username,
		Role:     op.Role,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	op, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrOperatorNotFound
	}

	newAccessToken, err := s.generateToken(op.Username, op.Role, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(op.Username, op.Role, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, AuthResponse{
		Username: op.Username,
		Role:     op.Role,
	}, nil
}

func (s *service) GetMe(ctx context.Context, username string) (*AuthResponse, error) {
	op, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, autherrors.ErrOperatorNotFound
	}
	return &AuthResponse{
		Username: op.Username,
		Role:     op.Role,
	}, nil
}

// ChangeCredentials rewrites the single operator row. The old password must
// verify before anything changes, and the new password is stored hashed.
func (s *service) ChangeCredentials(ctx context.Context, req ChangeCredentialsRequest) (AuthResponse, error) {
	op, err := s.repo.Get(ctx)
	if err != nil {
		return AuthResponse{}, autherrors.ErrOperatorNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.Password), []byte(req.OldPassword)); err != nil {
		s.logger.Warn("change credentials failed, wrong old password")
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	op.Username = req.Username
	op.Password = string(hashed)
	if err := s.repo.Save(ctx, op); err != nil {
		s.logger.Error("change credentials persist failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("operator credentials changed", zap.String("username", op.Username))
	return AuthResponse{
		Username: op.Username,
		Role:     op.Role,
	}, nil
}

func (s *service) generateToken(username, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
