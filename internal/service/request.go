package service

import (
	"context"
	"fmt"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/internal/notify"
	"github.com/garaga28/Librario/internal/repository"
	"go.uber.org/zap"
)

// RequestService drives the PENDING -> ACCEPTED/REJECTED workflow that
// precedes a librarian-approved loan.
type RequestService struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier notify.Notifier
}

func NewRequestService(repo repository.Repository, notifier notify.Notifier, log *zap.Logger) *RequestService {
	return &RequestService{
		log:      log,
		repo:     repo,
		notifier: notifier,
	}
}

func (s *RequestService) Submit(ctx context.Context, req model.SubmitRequestRequest) (model.BorrowingRequest, error) {
	member, err := s.repo.GetMember(ctx, req.MemberID)
	if err != nil {
		return model.BorrowingRequest{}, err
	}
	book, err := s.repo.GetBook(ctx, req.BookID)
	if err != nil {
		return model.BorrowingRequest{}, err
	}

	request, err := s.repo.CreateRequest(ctx, req.MemberID, req.BookID)
	if err != nil {
		return model.BorrowingRequest{}, err
	}

	s.notifier.Notify(ctx, notify.AudienceLibrarians, "",
		fmt.Sprintf("A new borrowing request for %q has been submitted by %s.", book.Title, member.Name),
		"borrowingRequest")
	return request, nil
}

func (s *RequestService) ListPending(ctx context.Context) ([]model.PendingRequest, error) {
	return s.repo.ListPendingRequests(ctx)
}

// Accept runs the accept composite; when the book ran out between submit
// and accept the request stays PENDING and ErrUnavailable is retryable.
func (s *RequestService) Accept(ctx context.Context, requestID int64) (model.BorrowingRecord, error) {
	record, book, err := s.repo.AcceptRequest(ctx, requestID)
	if err != nil {
		return model.BorrowingRecord{}, err
	}

	member, err := s.repo.GetMember(ctx, record.MemberID)
	if err != nil {
		s.log.Warn("accept: member lookup for notification", zap.Error(err))
		return record, nil
	}
	sendBorrowConfirmation(ctx, s.notifier, member, book, record.BorrowDate)
	notifyLowStock(ctx, s.notifier, book)
	s.notifier.Notify(ctx, notify.AudienceMember, member.Name,
		fmt.Sprintf("Your borrowing request for %q has been accepted.", book.Title),
		"borrowingRequest")
	s.notifier.Notify(ctx, notify.AudienceLibrarians, "",
		fmt.Sprintf("Borrowing request #%d accepted: %q lent to %s.", requestID, book.Title, member.Name),
		"borrowingRequest")
	return record, nil
}

func (s *RequestService) Reject(ctx context.Context, requestID int64) (model.BorrowingRequest, error) {
	request, err := s.repo.RejectRequest(ctx, requestID)
	if err != nil {
		return model.BorrowingRequest{}, err
	}

	if member, err := s.repo.GetMember(ctx, request.MemberID); err == nil {
		s.notifier.Notify(ctx, notify.AudienceMember, member.Name,
			"Your borrowing request has been rejected.", "borrowingRequest")
		s.notifier.Notify(ctx, notify.AudienceLibrarians, "",
			fmt.Sprintf("Borrowing request #%d from %s has been rejected.", requestID, member.Name),
			"borrowingRequest")
	}
	return request, nil
}
