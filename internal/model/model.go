package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookStatus string

const (
	BookAvailable BookStatus = "AVAILABLE"
	BookOnLoan    BookStatus = "ON_LOAN"
)

type MembershipType string

const (
	MembershipBasic   MembershipType = "BASIC"
	MembershipPremium MembershipType = "PREMIUM"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestRejected RequestStatus = "REJECTED"
)

type PaymentType string

const (
	PaymentMembershipFee  PaymentType = "membership_fee"
	PaymentOverdueCharges PaymentType = "overdue_charges"
)

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type Book struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Author          string     `json:"author" db:"author"`
	TotalCopies     int        `json:"totalCopies" db:"total_copies"`
	AvailableCopies int        `json:"availableCopies" db:"available_copies"`
	Status          BookStatus `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"-" db:"created_at"`
	UpdatedAt       time.Time  `json:"-" db:"updated_at"`
}

type Member struct {
	ID             int64          `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Email          string         `json:"email" db:"email"`
	MembershipType MembershipType `json:"membershipType" db:"membership_type"`
	StartDate      time.Time      `json:"startDate" db:"start_date"`
	EndDate        time.Time      `json:"endDate" db:"end_date"`
}

// IsActive reports whether now falls inside [StartDate, EndDate] inclusive.
func (m Member) IsActive(now time.Time) bool {
	return !now.Before(m.StartDate) && !now.After(m.EndDate)
}

type BorrowingRequest struct {
	ID          int64         `json:"requestId" db:"id"`
	MemberID    int64         `json:"memberId" db:"member_id"`
	BookID      int64         `json:"bookId" db:"book_id"`
	RequestDate time.Time     `json:"requestDate" db:"request_date"`
	Status      RequestStatus `json:"status" db:"status"`
}

type BorrowingRecord struct {
	ID         int64      `json:"borrowingRecordId" db:"id"`
	MemberID   int64      `json:"memberId" db:"member_id"`
	BookID     int64      `json:"bookId" db:"book_id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
	Returned   bool       `json:"returned" db:"returned"`
}

type Payment struct {
	ID                int64           `json:"paymentId" db:"id"`
	MemberID          int64           `json:"memberId" db:"member_id"`
	BorrowingRecordID *int64          `json:"borrowingRecordId,omitempty" db:"borrowing_record_id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	Type              PaymentType     `json:"type" db:"type"`
	Method            PaymentMethod   `json:"method" db:"method"`
	Status            PaymentStatus   `json:"status" db:"status"`
	GatewayOrderID    *string         `json:"gatewayOrderId,omitempty" db:"gateway_order_id"`
	GatewayPaymentID  *string         `json:"gatewayPaymentId,omitempty" db:"gateway_payment_id"`
	GatewaySignature  *string         `json:"-" db:"gateway_signature"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
}
