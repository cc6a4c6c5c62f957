package inquiry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	inquiryerrors "go-timekeep/internal/inquiry/errors"
	"go-timekeep/internal/shared/contextutil"
	"go-timekeep/internal/shared/counter"
	"go-timekeep/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const transactionNoCounter = "inquiry"

//go:generate mockgen -source=inquiry_service.go -destination=mock/inquiry_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateInquiryRequest) (InquiryResponse, error)
	GetByID(ctx context.Context, id string) (InquiryResponse, error)
	GetByTransactionNo(ctx context.Context, transactionNo string) (InquiryResponse, error)
	List(ctx context.Context, q ListInquiriesQuery) ([]InquiryResponse, *response.PaginationMeta, error)
	UpdateStatus(ctx context.Context, id string, req UpdateInquiryStatusRequest) (InquiryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counters counter.Repository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counters counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("inquiry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inquiry.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counters: counters,
		logger:   l,
	}
}

// Create stores a contact-form submission under a fresh reference number.
// Unauthenticated callers reach this through the rate-limited public route.
func (s *service) Create(ctx context.Context, req CreateInquiryRequest) (InquiryResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	seq, err := s.counters.GetNextValue(ctx, transactionNoCounter)
	if err != nil {
		return InquiryResponse{}, err
	}

	inq := &Inquiry{
		ID:            uuid.New(),
		TransactionNo: fmt.Sprintf("INQ-%06d", seq),
		Name:          req.Name,
		Email:         req.Email,
		Subject:       req.Subject,
		Message:       req.Message,
		Status:        StatusNew,
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		return InquiryResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("inquiry received",
		zap.String("request_id", rid),
		zap.String("transaction_no", inq.TransactionNo),
	)

	return mapInquiryToResponse(*inq), nil
}

func (s *service) GetByID(ctx context.Context, id string) (InquiryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return InquiryResponse{}, inquiryerrors.ErrInvalidInquiryID
	}

	inq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return InquiryResponse{}, mapRepositoryError(err)
	}
	return mapInquiryToResponse(*inq), nil
}

// GetByTransactionNo looks an inquiry up by the reference number handed to
// the submitter, so support can resolve tickets without exposing row ids.
func (s *service) GetByTransactionNo(ctx context.Context, transactionNo string) (InquiryResponse, error) {
	if transactionNo == "" {
		return InquiryResponse{}, inquiryerrors.ErrInvalidInquiryID
	}

	inq, err := s.repo.FindByTransactionNo(ctx, transactionNo)
	if err != nil {
		return InquiryResponse{}, mapRepositoryError(err)
	}
	return mapInquiryToResponse(*inq), nil
}

func (s *service) List(ctx context.Context, q ListInquiriesQuery) ([]InquiryResponse, *response.PaginationMeta, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 20
	}

	rows, total, err := s.repo.List(ctx, q.Status, (page-1)*limit, limit)
	if err != nil {
		return nil, nil, err
	}

	resp := make([]InquiryResponse, len(rows))
	for i := range rows {
		resp[i] = mapInquiryToResponse(rows[i])
	}
	meta := response.NewPaginationMeta(total, page, limit)
	return resp, &meta, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateInquiryStatusRequest) (InquiryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return InquiryResponse{}, inquiryerrors.ErrInvalidInquiryID
	}

	switch req.Status {
	case StatusNew, StatusInProgress, StatusResolved:
	default:
		return InquiryResponse{}, inquiryerrors.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return InquiryResponse{}, mapRepositoryError(err)
	}

	inq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return InquiryResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("inquiry status updated",
		zap.String("inquiry_id", id),
		zap.String("status", req.Status),
	)

	return mapInquiryToResponse(*inq), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return inquiryerrors.ErrInvalidInquiryID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("inquiry deleted", zap.String("inquiry_id", id))
	return nil
}

func mapInquiryToResponse(inq Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:            inq.ID.String(),
		TransactionNo: inq.TransactionNo,
		Name:          inq.Name,
		Email:         inq.Email,
		Subject:       inq.Subject,
		Message:       inq.Message,
		Status:        inq.Status,
		CreatedAt:     inq.CreatedAt.Format(time.RFC3339),
	}
}
