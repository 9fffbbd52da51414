package service

import (
	"context"
	"time"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/internal/notify"
	"github.com/garaga28/Librario/internal/repository"
	"go.uber.org/zap"
)

// LoanService records actual loans regardless of how they originate:
// member self-service, request approval, or librarian-initiated.
type LoanService struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier notify.Notifier
}

func NewLoanService(repo repository.Repository, notifier notify.Notifier, log *zap.Logger) *LoanService {
	return &LoanService{
		log:      log,
		repo:     repo,
		notifier: notifier,
	}
}

func (s *LoanService) Open(ctx context.Context, memberID, bookID int64) (model.BorrowingRecord, error) {
	member, err := s.repo.GetMember(ctx, memberID)
	if err != nil {
		return model.BorrowingRecord{}, err
	}

	record, book, err := s.repo.CreateLoan(ctx, memberID, bookID)
	if err != nil {
		return model.BorrowingRecord{}, err
	}

	sendBorrowConfirmation(ctx, s.notifier, member, book, record.BorrowDate)
	notifyLowStock(ctx, s.notifier, book)
	return record, nil
}

func (s *LoanService) Close(ctx context.Context, memberID, bookID int64) (model.BorrowingRecord, error) {
	record, book, err := s.repo.CloseLoan(ctx, memberID, bookID)
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	s.sendReturnEvents(ctx, record, book)
	return record, nil
}

// CloseByID is the librarian path; it rejects already-returned loans.
func (s *LoanService) CloseByID(ctx context.Context, recordID int64) (model.BorrowingRecord, error) {
	record, book, err := s.repo.CloseLoanByID(ctx, recordID)
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	s.sendReturnEvents(ctx, record, book)
	return record, nil
}

func (s *LoanService) sendReturnEvents(ctx context.Context, record model.BorrowingRecord, book model.Book) {
	member, err := s.repo.GetMember(ctx, record.MemberID)
	if err != nil {
		s.log.Warn("close: member lookup for notification", zap.Error(err))
		return
	}
	returnedAt := time.Now()
	if record.ReturnDate != nil {
		returnedAt = *record.ReturnDate
	}
	sendReturnConfirmation(ctx, s.notifier, member, book, returnedAt)
}

func (s *LoanService) ListActive(ctx context.Context, memberID int64) ([]model.ActiveLoan, error) {
	rows, err := s.repo.ListLoans(ctx, memberID, false)
	if err != nil {
		return nil, err
	}
	out := make([]model.ActiveLoan, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.ActiveLoan{
			LoanRow:            row,
			ExpectedReturnDate: DueDate(row.BorrowDate, row.MembershipType),
		})
	}
	return out, nil
}

func (s *LoanService) ListReturned(ctx context.Context, memberID int64) ([]model.LoanRow, error) {
	return s.repo.ListLoans(ctx, memberID, true)
}

func (s *LoanService) ListAll(ctx context.Context) ([]model.LoanRow, error) {
	return s.repo.ListAllLoans(ctx)
}
