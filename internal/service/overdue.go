package service

import (
	"context"
	"time"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	BasicLoanDays   = 15
	PremiumLoanDays = 30
	FinePerDay      = 10.0
)

// LoanPeriodDays maps the membership tier to the loan period. Anything
// that is not BASIC gets the PREMIUM period.
func LoanPeriodDays(mt model.MembershipType) int {
	if mt == model.MembershipBasic {
		return BasicLoanDays
	}
	return PremiumLoanDays
}

// toDate truncates a timestamp to its calendar date, reconstructed at UTC
// midnight so day subtraction is always an exact multiple of 24h (local
// midnights drift across DST transitions).
func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func DueDate(borrowDate time.Time, mt model.MembershipType) time.Time {
	return toDate(borrowDate).AddDate(0, 0, LoanPeriodDays(mt))
}

func IsOverdue(borrowDate time.Time, mt model.MembershipType, today time.Time) bool {
	return toDate(today).After(DueDate(borrowDate, mt))
}

func OverdueDays(borrowDate time.Time, mt model.MembershipType, today time.Time) int {
	days := int(toDate(today).Sub(DueDate(borrowDate, mt)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func FineAmount(borrowDate time.Time, mt model.MembershipType, today time.Time) float64 {
	return float64(OverdueDays(borrowDate, mt, today)) * FinePerDay
}

type OverdueService struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewOverdueService(repo repository.Repository, log *zap.Logger) *OverdueService {
	return &OverdueService{
		log:  log,
		repo: repo,
	}
}

// ListOverdue projects every overdue unreturned loan with its computed fine
// and the settlement state of its overdue debt.
func (s *OverdueService) ListOverdue(ctx context.Context, memberID *int64) ([]model.OverdueBook, error) {
	rows, err := s.repo.ListUnreturnedLoans(ctx, memberID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	overdue := make([]model.LoanRow, 0, len(rows))
	for _, row := range rows {
		if IsOverdue(row.BorrowDate, row.MembershipType, today) {
			overdue = append(overdue, row)
		}
	}

	out := make([]model.OverdueBook, len(overdue))
	gg, ctx := errgroup.WithContext(ctx)
	gg.SetLimit(8)
	for i, row := range overdue {
		i, row := i, row
		gg.Go(func() error {
			settled, err := s.repo.HasCompletedOverduePayment(ctx, row.BorrowingRecordID)
			if err != nil {
				return err
			}
			status := "Pending"
			if settled {
				status = "Completed"
			}
			out[i] = model.OverdueBook{
				BorrowingRecordID: row.BorrowingRecordID,
				BookTitle:         row.BookTitle,
				MemberID:          row.MemberID,
				MemberName:        row.MemberName,
				BorrowDate:        row.BorrowDate,
				DueDate:           DueDate(row.BorrowDate, row.MembershipType),
				OverdueDays:       OverdueDays(row.BorrowDate, row.MembershipType, today),
				FineAmount:        FineAmount(row.BorrowDate, row.MembershipType, today),
				PaymentStatus:     status,
			}
			return nil
		})
	}
	if err := gg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
