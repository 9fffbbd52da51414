package service

import (
	"context"
	"fmt"
	"time"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/internal/notify"
)

// template ids understood by the email gateway; the core only supplies
// structured fields, never markup
const (
	tplBorrowConfirmation  = "borrow_confirmation"
	tplReturnConfirmation  = "return_confirmation"
	tplDueDateReminder     = "due_date_reminder"
	tplOverdueAlert        = "overdue_alert"
	tplPaymentConfirmation = "payment_confirmation"
)

const dateLayout = "02-01-2006"

func sendBorrowConfirmation(ctx context.Context, n notify.Notifier, member model.Member, book model.Book, borrowDate time.Time) {
	n.SendEmail(ctx, member.Email, "Book Borrowed Successfully!", tplBorrowConfirmation, map[string]string{
		"memberName": member.Name,
		"bookTitle":  book.Title,
		"bookAuthor": book.Author,
		"borrowDate": borrowDate.Format(dateLayout),
		"dueDate":    DueDate(borrowDate, member.MembershipType).Format(dateLayout),
	})
}

func sendReturnConfirmation(ctx context.Context, n notify.Notifier, member model.Member, book model.Book, returnDate time.Time) {
	n.SendEmail(ctx, member.Email, "Book Returned Successfully!", tplReturnConfirmation, map[string]string{
		"memberName": member.Name,
		"bookTitle":  book.Title,
		"bookAuthor": book.Author,
		"returnDate": returnDate.Format(dateLayout),
	})
}

// notifyLowStock fires when the last-but-one copy leaves the shelf.
func notifyLowStock(ctx context.Context, n notify.Notifier, book model.Book) {
	if book.AvailableCopies != 1 {
		return
	}
	n.Notify(ctx, notify.AudienceLibrarians,
		"", fmt.Sprintf("Low stock alert: only 1 copy of %q by %s left.", book.Title, book.Author),
		"lowStock")
}
