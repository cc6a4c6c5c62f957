package payrate

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-timekeep/internal/payment"
	payrateerrors "go-timekeep/internal/payrate/errors"
	"go-timekeep/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payrate_service.go -destination=mock/payrate_service_mock.go -package=mock
type Service interface {
	Set(ctx context.Context, employeeID string, req SetPayRateRequest) (SetPayRateResponse, error)
	GetCurrent(ctx context.Context, employeeID string) (PayRateResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]PayRateResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	payments payment.Service
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, payments payment.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("payrate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrate.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		payments: payments,
		logger:   l,
	}
}

// Set appends a new rate to the employee's history and recomputes every
// payment record dated on or after the effective date. Days before the
// effective date keep their old amounts.
func (s *service) Set(
	ctx context.Context,
	employeeID string,
	req SetPayRateRequest,
) (SetPayRateResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return SetPayRateResponse{}, payrateerrors.ErrInvalidEmployeeID
	}
	if req.Schedule != payment.ScheduleHourly && req.Schedule != payment.ScheduleDaily {
		return SetPayRateResponse{}, payrateerrors.ErrInvalidSchedule
	}
	if req.RateCents <= 0 {
		return SetPayRateResponse{}, payrateerrors.ErrInvalidRate
	}
	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return SetPayRateResponse{}, payrateerrors.ErrInvalidEffectiveDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SetPayRateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rate := &PayRate{
		ID:            uuid.New(),
		EmployeeID:    empID,
		RateCents:     req.RateCents,
		Schedule:      req.Schedule,
		EffectiveDate: effectiveDate,
	}
	if err := qtx.Create(ctx, rate); err != nil {
		return SetPayRateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SetPayRateResponse{}, err
	}

	// Recomputation runs after commit so the new rate is visible to the
	// payment module's effective-rate lookup.
	recomputed, err := s.payments.RecomputeFrom(ctx, employeeID, payment.RateInput{
		Schedule:      rate.Schedule,
		RateCents:     rate.RateCents,
		EffectiveDate: rate.EffectiveDate,
	})
	if err != nil {
		s.logger.Error("recompute after rate change failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return SetPayRateResponse{}, err
	}

	s.logger.Info("pay rate set",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("schedule", rate.Schedule),
		zap.Int64("rate_cents", rate.RateCents),
		zap.Int("recomputed_days", recomputed),
	)

	return SetPayRateResponse{
		PayRate:        mapRateToResponse(*rate),
		RecomputedDays: recomputed,
	}, nil
}

func (s *service) GetCurrent(ctx context.Context, employeeID string) (PayRateResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayRateResponse{}, payrateerrors.ErrInvalidEmployeeID
	}

	rate, err := s.repo.FindCurrent(ctx, employeeID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayRateResponse{}, payrateerrors.ErrPayRateNotFound
		}
		return PayRateResponse{}, err
	}
	return mapRateToResponse(*rate), nil
}

func (s *service) GetHistory(ctx context.Context, employeeID string) ([]PayRateResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrateerrors.ErrInvalidEmployeeID
	}

	rates, err := s.repo.ListHistory(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]PayRateResponse, len(rates))
	for i := range rates {
		resp[i] = mapRateToResponse(rates[i])
	}
	return resp, nil
}

func mapRateToResponse(rate PayRate) PayRateResponse {
	return PayRateResponse{
		ID:            rate.ID.String(),
		EmployeeID:    rate.EmployeeID.String(),
		RateCents:     rate.RateCents,
		Schedule:      rate.Schedule,
		EffectiveDate: rate.EffectiveDate.Format("2006-01-02"),
		CreatedAt:     rate.CreatedAt.Format(time.RFC3339),
	}
}
