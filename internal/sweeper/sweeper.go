package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/internal/notify"
	"github.com/garaga28/Librario/internal/service"
	"go.uber.org/zap"
)

// LoanLister is the slice of the repository the sweeper reads.
type LoanLister interface {
	ListUnreturnedLoans(ctx context.Context, memberID *int64) ([]model.LoanRow, error)
}

// Sweeper runs the periodic read-only sweeps over unreturned loans:
// due-date reminders and overdue alerts. It never mutates loan or copy
// state; it only emits events.
type Sweeper struct {
	log      *zap.Logger
	repo     LoanLister
	notifier notify.Notifier
	interval time.Duration
}

func New(repo LoanLister, notifier notify.Notifier, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{
		log:      log.Named("sweeper"),
		repo:     repo,
		notifier: notifier,
		interval: interval,
	}
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Sweep(ctx)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context) {
	rows, err := s.repo.ListUnreturnedLoans(ctx, nil)
	if err != nil {
		s.log.Error("sweep: list unreturned", zap.Error(err))
		return
	}
	today := time.Now()
	for _, row := range rows {
		s.remindDueSoon(ctx, row, today)
		s.alertOverdue(ctx, row, today)
	}
}

// remindDueSoon fires for loans due in exactly two days.
func (s *Sweeper) remindDueSoon(ctx context.Context, row model.LoanRow, today time.Time) {
	due := service.DueDate(row.BorrowDate, row.MembershipType)
	if daysUntil(today, due) != 2 {
		return
	}
	s.notifier.SendEmail(ctx, row.MemberEmail, "Library Book Due Date Reminder!", "due_date_reminder", map[string]string{
		"memberName": row.MemberName,
		"bookTitle":  row.BookTitle,
		"bookAuthor": row.BookAuthor,
		"dueDate":    due.Format("02-01-2006"),
	})
}

func (s *Sweeper) alertOverdue(ctx context.Context, row model.LoanRow, today time.Time) {
	if !service.IsOverdue(row.BorrowDate, row.MembershipType, today) {
		return
	}
	due := service.DueDate(row.BorrowDate, row.MembershipType)
	s.notifier.SendEmail(ctx, row.MemberEmail, "URGENT: Overdue Book Alert!", "overdue_alert", map[string]string{
		"memberName": row.MemberName,
		"bookTitle":  row.BookTitle,
		"bookAuthor": row.BookAuthor,
		"dueDate":    due.Format("02-01-2006"),
		"finePerDay": fmt.Sprintf("%.2f", service.FinePerDay),
	})
}

// daysUntil counts exact calendar days from today to due. Both ends are
// pinned to UTC midnight, so a DST transition in between cannot skew the
// count and skip the reminder window.
func daysUntil(today, due time.Time) int {
	y, m, d := today.Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dy, dm, dd := due.Date()
	return int(time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC).Sub(t).Hours() / 24)
}
