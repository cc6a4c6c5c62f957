package auth

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	autherrors "go-timekeep/internal/auth/errors"
	"go-timekeep/internal/employee"
	"go-timekeep/internal/shared/counter"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const employeeNoCounter = "employee"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	counters     counter.Repository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	counters counter.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		counters:     counters,
		logger:       l,
	}
}

// Register creates the employee profile and its login in one transaction,
// so a failed user insert never leaves an orphaned employee row.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidHireDate
	}

	seq, err := s.counters.GetNextValue(ctx, employeeNoCounter)
	if err != nil {
		return AuthResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	emp := &employee.Employee{
		ID:         uuid.New(),
		EmployeeNo: fmt.Sprintf("EMP-%06d", seq),
		FullName:   req.FullName,
		Email:      req.Email,
		HireDate:   hireDate,
	}
	if err := s.employeeRepo.WithTx(tx).Create(ctx, emp); err != nil {
		return AuthResponse{}, employee.MapRepositoryError(err)
	}

	user := &User{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		Email:      req.Email,
		Password:   string(hashed),
		IsActive:   true,
	}
	if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	if err := tx.Commit(); err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("employee registered",
		zap.String("employee_no", emp.EmployeeNo),
		zap.String("employee_id", emp.ID.String()),
	)

	return AuthResponse{
		ID:         user.ID.String(),
		EmployeeID: emp.ID.String(),
		EmployeeNo: emp.EmployeeNo,
		Email:      user.Email,
		FullName:   emp.FullName,
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(user.ID.String(), user.EmployeeID.String(), time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(user.ID.String(), user.EmployeeID.String(), time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	resp := AuthResponse{
		ID:         user.ID.String(),
		EmployeeID: user.EmployeeID.String(),
		Email:      user.Email,
	}
	if emp, err := s.employeeRepo.FindByID(ctx, user.EmployeeID.String()); err == nil {
		resp.EmployeeNo = emp.EmployeeNo
		resp.FullName = emp.FullName
	}

	return accessToken, refreshToken, resp, nil
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

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	newAccessToken, err := s.generateToken(user.ID.String(), user.EmployeeID.String(), time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(user.ID.String(), user.EmployeeID.String(), time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, AuthResponse{
		ID:         user.ID.String(),
		EmployeeID: user.EmployeeID.String(),
		Email:      user.Email,
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := &AuthResponse{
		ID:         user.ID.String(),
		EmployeeID: user.EmployeeID.String(),
		Email:      user.Email,
	}
	if emp, err := s.employeeRepo.FindByID(ctx, user.EmployeeID.String()); err == nil {
		resp.EmployeeNo = emp.EmployeeNo
		resp.FullName = emp.FullName
	}
	return resp, nil
}

func (s *service) generateToken(userID, employeeID string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     userID,
		"employee_id": employeeID,
		"exp":         time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
