package timesheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-timekeep/internal/events"
	"go-timekeep/internal/messaging/kafka"
	"go-timekeep/internal/shared/contextutil"
	timesheeterrors "go-timekeep/internal/timesheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitClockRequest) (ClockEventResponse, error)
	GetSummary(ctx context.Context, employeeID string) (SummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	loc    *time.Location
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, loc *time.Location) Service {
	return NewServiceWithOutbox(db, repo, nil, loc)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		loc:    loc,
		logger: l,
	}
}

// Submit appends one clock event timestamped at the moment of acceptance.
// The event, the recomputed daily summary and (on TIME_OUT) the outbox
// event land in one transaction; a rejected action writes nothing.
func (s *service) Submit(
	ctx context.Context,
	employeeID string,
	req SubmitClockRequest,
) (ClockEventResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return ClockEventResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit clock begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ClockEventResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	now := time.Now().In(s.loc)
	day := dayOf(now, s.loc)

	state := StateNotStarted
	var summaryID uuid.UUID
	summary, err := qtx.FindSummary(ctx, employeeID, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ClockEventResponse{}, err
	}
	if err == nil {
		state = summary.DayState
		summaryID = summary.ID
	}

	next, err := NextDayState(state, req.Action)
	if err != nil {
		s.logger.Warn("clock action rejected",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.String("action", req.Action),
			zap.String("day_state", state),
		)
		return ClockEventResponse{}, err
	}

	event := &ClockEvent{
		ID:         uuid.New(),
		EmployeeID: empID,
		EventDate:  day,
		EventTime:  now,
		Kind:       req.Action,
	}
	if err := qtx.CreateEvent(ctx, event); err != nil {
		s.logger.Error("persist clock event failed", zap.String("request_id", rid), zap.Error(err))
		return ClockEventResponse{}, err
	}

	dayEvents, err := qtx.ListEventsByDay(ctx, employeeID, day)
	if err != nil {
		return ClockEventResponse{}, err
	}

	if summaryID == uuid.Nil {
		summaryID = uuid.New()
	}
	upsert := &DailySummary{
		ID:           summaryID,
		EmployeeID:   empID,
		Date:         day,
		TotalSeconds: TotalSeconds(dayEvents),
		TimeSpan:     TimeSpan(dayEvents),
		DayState:     next,
	}
	if err := qtx.UpsertSummary(ctx, upsert); err != nil {
		s.logger.Error("upsert daily summary failed", zap.String("request_id", rid), zap.Error(err))
		return ClockEventResponse{}, err
	}

	if req.Action == KindTimeOut && s.outbox != nil {
		if err := s.queueWorkdayCompleted(ctx, tx, rid, employeeID, day, now); err != nil {
			return ClockEventResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit clock commit failed", zap.String("request_id", rid), zap.Error(err))
		return ClockEventResponse{}, err
	}

	s.logger.Info("clock event accepted",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("action", req.Action),
		zap.Float64("total_seconds", upsert.TotalSeconds),
	)

	return mapEventToResponse(*event), nil
}

func (s *service) GetSummary(ctx context.Context, employeeID string) (SummaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return SummaryResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}

	day := dayOf(time.Now().In(s.loc), s.loc)

	resp := SummaryResponse{}

	latest, err := s.repo.FindLatestEvent(ctx, employeeID, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return SummaryResponse{}, err
	}
	if err == nil {
		resp.LastAction = latest.Kind
	}

	summary, err := s.repo.FindSummary(ctx, employeeID, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return SummaryResponse{}, err
	}
	if err == nil {
		mapped := mapSummaryToResponse(*summary)
		resp.DailySummary = &mapped
	}

	return resp, nil
}

func (s *service) queueWorkdayCompleted(
	ctx context.Context,
	tx *sql.Tx,
	rid, employeeID string,
	day time.Time,
	now time.Time,
) error {
	event := events.WorkdayCompletedEvent{
		EventType:  "workday_completed",
		RequestID:  rid,
		EmployeeID: employeeID,
		Date:       day.Format("2006-01-02"),
		OccurredAt: now.UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "workday",
		AggregateID:   employeeID,
		EventType:     event.EventType,
		Topic:         events.WorkdayCompletedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue workday completed failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// dayOf truncates to local midnight, the day boundary for all clocking.
func dayOf(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func mapEventToResponse(e ClockEvent) ClockEventResponse {
	return ClockEventResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID.String(),
		Date:       e.EventDate.Format("2006-01-02"),
		Time:       e.EventTime.Format(time.RFC3339),
		Kind:       e.Kind,
	}
}

func mapSummaryToResponse(s DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		EmployeeID:   s.EmployeeID.String(),
		Date:         s.Date.Format("2006-01-02"),
		TotalSeconds: s.TotalSeconds,
		TimeSpan:     s.TimeSpan,
		DayState:     s.DayState,
	}
}
