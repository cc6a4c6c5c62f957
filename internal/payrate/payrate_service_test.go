package payrate

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-timekeep/internal/payment"
	payrateerrors "go-timekeep/internal/payrate/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn      func(tx *sql.Tx) Repository
	createFn      func(ctx context.Context, rate *PayRate) error
	findCurrentFn func(ctx context.Context, employeeID string, asOf time.Time) (*PayRate, error)
	listHistoryFn func(ctx context.Context, employeeID string) ([]PayRate, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, rate *PayRate) error {
	return f.createFn(ctx, rate)
}
func (f *fakeRepo) FindCurrent(ctx context.Context, employeeID string, asOf time.Time) (*PayRate, error) {
	return f.findCurrentFn(ctx, employeeID, asOf)
}
func (f *fakeRepo) ListHistory(ctx context.Context, employeeID string) ([]PayRate, error) {
	return f.listHistoryFn(ctx, employeeID)
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, rate *PayRate) error { return nil }
	repo.findCurrentFn = func(ctx context.Context, employeeID string, asOf time.Time) (*PayRate, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.listHistoryFn = func(ctx context.Context, employeeID string) ([]PayRate, error) { return nil, nil }
	return repo
}

type fakePaymentService struct {
	recomputeFromFn func(ctx context.Context, employeeID string, rate payment.RateInput) (int, error)
}

func (f *fakePaymentService) ComputeForDate(ctx context.Context, employeeID string, date time.Time) (payment.PaymentRecordResponse, error) {
	return payment.PaymentRecordResponse{}, nil
}
func (f *fakePaymentService) RecomputeFrom(ctx context.Context, employeeID string, rate payment.RateInput) (int, error) {
	return f.recomputeFromFn(ctx, employeeID, rate)
}
func (f *fakePaymentService) GetPayout(ctx context.Context, employeeID string, req payment.PayoutRequest) (payment.PayoutResponse, error) {
	return payment.PayoutResponse{}, nil
}
func (f *fakePaymentService) MarkPaid(ctx context.Context, employeeID string, req payment.MarkPaidRequest) (payment.MarkPaidResponse, error) {
	return payment.MarkPaidResponse{}, nil
}

func TestService_Set_RecomputesFromEffectiveDate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()

	var saved PayRate
	repo := newFakeRepo()
	repo.createFn = func(ctx context.Context, rate *PayRate) error { saved = *rate; return nil }

	var recomputeInput payment.RateInput
	payments := &fakePaymentService{
		recomputeFromFn: func(ctx context.Context, employeeID string, rate payment.RateInput) (int, error) {
			recomputeInput = rate
			return 3, nil
		},
	}

	svc := NewService(db, repo, payments)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Set(context.Background(), employeeID, SetPayRateRequest{
		RateCents:     1500,
		Schedule:      payment.ScheduleHourly,
		EffectiveDate: "2026-03-09",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), saved.RateCents)
	assert.Equal(t, payment.ScheduleHourly, saved.Schedule)
	assert.Equal(t, 3, resp.RecomputedDays)
	assert.Equal(t, "2026-03-09", recomputeInput.EffectiveDate.Format("2006-01-02"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Set_Validation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo(), &fakePaymentService{})
	employeeID := uuid.New().String()

	_, err := svc.Set(context.Background(), employeeID, SetPayRateRequest{
		RateCents: 1500, Schedule: "Weekly", EffectiveDate: "2026-03-09",
	})
	assert.ErrorIs(t, err, payrateerrors.ErrInvalidSchedule)

	_, err = svc.Set(context.Background(), employeeID, SetPayRateRequest{
		RateCents: 0, Schedule: payment.ScheduleDaily, EffectiveDate: "2026-03-09",
	})
	assert.ErrorIs(t, err, payrateerrors.ErrInvalidRate)

	_, err = svc.Set(context.Background(), employeeID, SetPayRateRequest{
		RateCents: 1500, Schedule: payment.ScheduleDaily, EffectiveDate: "09/03/2026",
	})
	assert.ErrorIs(t, err, payrateerrors.ErrInvalidEffectiveDate)

	_, err = svc.Set(context.Background(), "not-a-uuid", SetPayRateRequest{
		RateCents: 1500, Schedule: payment.ScheduleDaily, EffectiveDate: "2026-03-09",
	})
	assert.ErrorIs(t, err, payrateerrors.ErrInvalidEmployeeID)
}

func TestService_GetCurrent(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findCurrentFn = func(ctx context.Context, employeeID string, asOf time.Time) (*PayRate, error) {
		return &PayRate{
			ID:            uuid.New(),
			EmployeeID:    uuid.New(),
			RateCents:     2000,
			Schedule:      payment.ScheduleDaily,
			EffectiveDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil
	}

	svc := NewService(db, repo, &fakePaymentService{})

	resp, err := svc.GetCurrent(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.Equal(t, int64(2000), resp.RateCents)
	assert.Equal(t, "2026-01-01", resp.EffectiveDate)
}

func TestService_GetCurrent_NotConfigured(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo(), &fakePaymentService{})

	_, err := svc.GetCurrent(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, payrateerrors.ErrPayRateNotFound)
}
