package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-timekeep/internal/events"
	"go-timekeep/internal/payment"
	paymenterrors "go-timekeep/internal/payment/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeWorkdayCompleted derives the payment record for each completed
// workday. A day without an applicable pay rate is skipped and committed;
// it will be picked up when a rate is registered.
func ConsumeWorkdayCompleted(
	ctx context.Context,
	reader *kafkago.Reader,
	paymentService payment.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.workday_completed")
	log.Info("workday completed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("workday completed consumer stopped")
				return
			}
			log.Error("fetch workday completed message failed", zap.Error(err))
			continue
		}

		var event events.WorkdayCompletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode workday completed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		date, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			log.Error("invalid date in workday completed event",
				zap.String("date", event.Date),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = paymentService.ComputeForDate(ctx, event.EmployeeID, date)
		if err != nil {
			if errors.Is(err, paymenterrors.ErrMissingPayRate) || errors.Is(err, paymenterrors.ErrSummaryNotFound) {
				log.Warn("completed workday not payable yet, skipping",
					zap.String("employee_id", event.EmployeeID),
					zap.String("date", event.Date),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			log.Error("compute payment record failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("date", event.Date),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit workday completed message failed", zap.Error(err))
			continue
		}

		log.Info("payment record computed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("date", event.Date),
		)
	}
}
