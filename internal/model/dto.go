package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	TotalCopies int    `json:"totalCopies" validate:"required,gt=0"`
}

type ResizeCopiesRequest struct {
	TotalCopies int `json:"totalCopies" validate:"gte=0"`
}

type SubmitRequestRequest struct {
	BookID   int64 `json:"bookId" validate:"required"`
	MemberID int64 `json:"-" validate:"required"`
}

// PendingRequest is the librarian projection of a PENDING request.
type PendingRequest struct {
	RequestID   int64     `json:"requestId" db:"id"`
	MemberID    int64     `json:"memberId" db:"member_id"`
	MemberName  string    `json:"memberName" db:"member_name"`
	BookID      int64     `json:"bookId" db:"book_id"`
	BookTitle   string    `json:"bookTitle" db:"book_title"`
	RequestDate time.Time `json:"requestDate" db:"request_date"`
}

type OpenLoanRequest struct {
	MemberID int64 `json:"memberId" validate:"required"`
	BookID   int64 `json:"bookId" validate:"required"`
}

type CloseLoanRequest struct {
	MemberID int64 `json:"memberId" validate:"required"`
	BookID   int64 `json:"bookId" validate:"required"`
}

// LoanRow is a loan joined with its book and member, the shape every loan
// projection reads.
type LoanRow struct {
	BorrowingRecordID int64          `json:"borrowingRecordId" db:"id"`
	MemberID          int64          `json:"memberId" db:"member_id"`
	MemberName        string         `json:"memberName" db:"member_name"`
	MemberEmail       string         `json:"-" db:"member_email"`
	MembershipType    MembershipType `json:"-" db:"membership_type"`
	BookID            int64          `json:"bookId" db:"book_id"`
	BookTitle         string         `json:"bookTitle" db:"book_title"`
	BookAuthor        string         `json:"bookAuthor" db:"book_author"`
	BorrowDate        time.Time      `json:"borrowDate" db:"borrow_date"`
	ReturnDate        *time.Time     `json:"returnDate,omitempty" db:"return_date"`
	Returned          bool           `json:"returned" db:"returned"`
}

// ActiveLoan adds the computed due date to an unreturned LoanRow.
type ActiveLoan struct {
	LoanRow
	ExpectedReturnDate time.Time `json:"expectedReturnDate"`
}

type OverdueBook struct {
	BorrowingRecordID int64     `json:"borrowingRecordId"`
	BookTitle         string    `json:"bookTitle"`
	MemberID          int64     `json:"memberId"`
	MemberName        string    `json:"memberName"`
	BorrowDate        time.Time `json:"borrowDate"`
	DueDate           time.Time `json:"dueDate"`
	OverdueDays       int       `json:"overdueDays"`
	FineAmount        float64   `json:"fineAmount"`
	PaymentStatus     string    `json:"paymentStatus"`
}

type CreateOnlineOrderRequest struct {
	MemberID          int64           `json:"memberId" validate:"required"`
	Amount            decimal.Decimal `json:"amount" validate:"required"`
	Type              PaymentType     `json:"type" validate:"required,oneof=membership_fee overdue_charges"`
	BorrowingRecordID *int64          `json:"borrowingRecordId,omitempty"`
}

type OnlineOrder struct {
	OrderID  string          `json:"orderId"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type CashPaymentRequest struct {
	MemberID          int64           `json:"memberId" validate:"required"`
	Amount            decimal.Decimal `json:"amount" validate:"required"`
	Type              PaymentType     `json:"type" validate:"required,oneof=membership_fee overdue_charges"`
	BorrowingRecordID *int64          `json:"borrowingRecordId,omitempty"`
}

// PaymentHistory is a payment row joined with the paying member's name.
type PaymentHistory struct {
	Payment
	MemberName string `json:"memberName" db:"member_name"`
}
