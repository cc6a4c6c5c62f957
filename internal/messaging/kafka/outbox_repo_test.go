package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func pendingEvent() OutboxEvent {
	return OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     uuid.NewString(),
		AggregateType: "workday",
		AggregateID:   uuid.NewString(),
		EventType:     "workday_completed",
		Topic:         "hr.timesheet.lifecycle.v1",
		Payload:       []byte(`{"date":"2026-03-09"}`),
		Status:        OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, ValidateOutboxEvent(pendingEvent()))

	missingID := pendingEvent()
	missingID.ID = ""
	assert.Error(t, ValidateOutboxEvent(missingID))

	missingTopic := pendingEvent()
	missingTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(missingTopic))

	emptyPayload := pendingEvent()
	emptyPayload.Payload = nil
	assert.Error(t, ValidateOutboxEvent(emptyPayload))

	badStatus := pendingEvent()
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_CreateInsideTx(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	event := pendingEvent()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			event.ID, event.RequestID, event.AggregateType, event.AggregateID,
			event.EventType, event.Topic, event.Payload, event.Status,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.WithTx(tx).Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Create_RejectsInvalidEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := NewOutboxRepository(db)

	event := pendingEvent()
	event.Topic = ""
	assert.Error(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	event := pendingEvent()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type", "topic",
		"payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		event.ID, event.AggregateType, event.AggregateID, event.EventType,
		event.Topic, event.Payload, event.Status, 0, time.Now(),
	)

	mock.ExpectQuery("SELECT .+ FROM outbox_events").
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 50).
		WillReturnRows(rows)

	repo := NewOutboxRepository(db)
	events, err := repo.ListPending(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
	assert.Equal(t, event.Topic, events[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.NewString()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(context.Background(), id))
	assert.NoError(t, repo.MarkFailed(context.Background(), id, "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
