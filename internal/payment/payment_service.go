package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	paymenterrors "go-timekeep/internal/payment/errors"
	"go-timekeep/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ScheduleHourly = "Hourly"
	ScheduleDaily  = "Daily"

	StatusUnpaid = "UNPAID"
	StatusPaid   = "PAID"
)

const (
	payoutCacheKeyPrefix = "payments:payout:"
	payoutCacheTTL       = 5 * time.Minute
)

// ComputeAmount converts one day's worked seconds into money. Hourly pay
// counts whole hours only; partial hours are dropped, not rounded. Daily
// pay is flat for any day with at least one closed work interval.
func ComputeAmount(schedule string, rateCents int64, totalSeconds float64) (int64, error) {
	switch schedule {
	case ScheduleHourly:
		hours := int64(totalSeconds / 3600)
		return hours * rateCents, nil
	case ScheduleDaily:
		if totalSeconds > 0 {
			return rateCents, nil
		}
		return 0, nil
	default:
		return 0, paymenterrors.ErrInvalidSchedule
	}
}

// RateInput is the applicable pay rate as the payrate module hands it over.
type RateInput struct {
	Schedule      string
	RateCents     int64
	EffectiveDate time.Time
}

//go:generate mockgen -source=payment_service.go -destination=mock/payment_service_mock.go -package=mock
type Service interface {
	ComputeForDate(ctx context.Context, employeeID string, date time.Time) (PaymentRecordResponse, error)
	RecomputeFrom(ctx context.Context, employeeID string, rate RateInput) (int, error)
	GetPayout(ctx context.Context, employeeID string, req PayoutRequest) (PayoutResponse, error)
	MarkPaid(ctx context.Context, employeeID string, req MarkPaidRequest) (MarkPaidResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// ComputeForDate derives one day's payment record from its summary and the
// pay rate effective on that date. Used by the workday-completed consumer.
func (s *service) ComputeForDate(
	ctx context.Context,
	employeeID string,
	date time.Time,
) (PaymentRecordResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return PaymentRecordResponse{}, paymenterrors.ErrInvalidEmployeeID
	}

	summary, err := s.repo.FindSummaryByDate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PaymentRecordResponse{}, paymenterrors.ErrSummaryNotFound
		}
		return PaymentRecordResponse{}, err
	}

	rate, err := s.repo.FindEffectiveRate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PaymentRecordResponse{}, paymenterrors.ErrMissingPayRate
		}
		return PaymentRecordResponse{}, err
	}

	amount, err := ComputeAmount(rate.Schedule, rate.RateCents, summary.TotalSeconds)
	if err != nil {
		return PaymentRecordResponse{}, err
	}

	rec := &PaymentRecord{
		ID:             uuid.New(),
		EmployeeID:     empID,
		Date:           summary.Date,
		DailySummaryID: summary.ID,
		AmountCents:    amount,
		Status:         StatusUnpaid,
	}
	if err := s.repo.UpsertRecord(ctx, rec); err != nil {
		return PaymentRecordResponse{}, err
	}

	s.invalidatePayoutCache(ctx, employeeID)

	s.logger.Info("payment record computed",
		zap.String("employee_id", employeeID),
		zap.String("date", summary.Date.Format("2006-01-02")),
		zap.Int64("amount_cents", amount),
	)

	return mapRecordToResponse(*rec), nil
}

// RecomputeFrom re-derives payment records for every summary dated on or
// after the rate's effective date. Days are independent: one failed day is
// logged and skipped, the rest still compute.
func (s *service) RecomputeFrom(
	ctx context.Context,
	employeeID string,
	rate RateInput,
) (int, error) {
	rid := contextutil.GetRequestID(ctx)

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return 0, paymenterrors.ErrInvalidEmployeeID
	}
	if rate.Schedule != ScheduleHourly && rate.Schedule != ScheduleDaily {
		return 0, paymenterrors.ErrInvalidSchedule
	}

	summaries, err := s.repo.FindSummariesFrom(ctx, employeeID, rate.EffectiveDate)
	if err != nil {
		return 0, err
	}

	computed := 0
	for i := range summaries {
		amount, err := ComputeAmount(rate.Schedule, rate.RateCents, summaries[i].TotalSeconds)
		if err != nil {
			return computed, err
		}

		rec := &PaymentRecord{
			ID:             uuid.New(),
			EmployeeID:     empID,
			Date:           summaries[i].Date,
			DailySummaryID: summaries[i].ID,
			AmountCents:    amount,
			Status:         StatusUnpaid,
		}
		if err := s.repo.UpsertRecord(ctx, rec); err != nil {
			s.logger.Error("upsert payment record failed",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.String("date", summaries[i].Date.Format("2006-01-02")),
				zap.Error(err),
			)
			continue
		}
		computed++
	}

	s.invalidatePayoutCache(ctx, employeeID)

	s.logger.Info("payment records recomputed",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("days", computed),
	)

	return computed, nil
}

func (s *service) GetPayout(
	ctx context.Context,
	employeeID string,
	req PayoutRequest,
) (PayoutResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayoutResponse{}, paymenterrors.ErrInvalidEmployeeID
	}

	from, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return PayoutResponse{}, paymenterrors.ErrInvalidDateFormat
	}
	to, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return PayoutResponse{}, paymenterrors.ErrInvalidDateFormat
	}
	if from.After(to) {
		return PayoutResponse{}, paymenterrors.ErrInvalidDateRange
	}

	cacheKey := payoutCacheKey(employeeID, req.Filter, req.StartDate, req.EndDate)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp PayoutResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent identical reads while the cache is cold
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		records, err := s.repo.FindRecords(ctx, employeeID, from, to)
		if err != nil {
			return nil, err
		}

		buckets, err := GroupRecords(records, req.Filter)
		if err != nil {
			return nil, err
		}

		resp := PayoutResponse{
			Buckets: buckets,
			Chart:   Reversed(buckets),
			Records: mapRecordsToResponse(records),
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, payload, payoutCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return PayoutResponse{}, err
	}

	return v.(PayoutResponse), nil
}

func (s *service) MarkPaid(
	ctx context.Context,
	employeeID string,
	req MarkPaidRequest,
) (MarkPaidResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return MarkPaidResponse{}, paymenterrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MarkPaidResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	updated, err := qtx.MarkPaid(ctx, employeeID, req.Records, time.Now().UTC())
	if err != nil {
		return MarkPaidResponse{}, err
	}
	if updated == 0 {
		return MarkPaidResponse{}, paymenterrors.ErrNoRecordsUpdated
	}

	if err := tx.Commit(); err != nil {
		return MarkPaidResponse{}, err
	}

	s.invalidatePayoutCache(ctx, employeeID)

	s.logger.Info("payment records marked paid",
		zap.String("employee_id", employeeID),
		zap.Int64("updated", updated),
	)

	return MarkPaidResponse{Updated: updated}, nil
}

func payoutCacheKey(employeeID, filter, from, to string) string {
	return fmt.Sprintf("%s%s:%s:%s:%s", payoutCacheKeyPrefix, employeeID, filter, from, to)
}

func (s *service) invalidatePayoutCache(ctx context.Context, employeeID string) {
	if s.rdb == nil {
		return
	}

	pattern := payoutCacheKeyPrefix + employeeID + ":*"
	iter := s.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Error("invalidate payout cache failed",
				zap.String("key", iter.Val()),
				zap.Error(err),
			)
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Error("scan payout cache failed",
			zap.String("pattern", pattern),
			zap.Error(err),
		)
	}
}

func mapRecordToResponse(rec PaymentRecord) PaymentRecordResponse {
	resp := PaymentRecordResponse{
		ID:          rec.ID.String(),
		EmployeeID:  rec.EmployeeID.String(),
		Date:        rec.Date.Format("2006-01-02"),
		AmountCents: rec.AmountCents,
		Status:      rec.Status,
	}
	if rec.PaidAt != nil {
		v := rec.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}

func mapRecordsToResponse(records []PaymentRecord) []PaymentRecordResponse {
	resp := make([]PaymentRecordResponse, len(records))
	for i, rec := range records {
		resp[i] = mapRecordToResponse(rec)
	}
	return resp
}
