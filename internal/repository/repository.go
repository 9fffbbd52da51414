package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/garaga28/Librario/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	BookRepository
	MemberRepository
	RequestRepository
	LoanRepository
	PaymentRepository
}

type BookRepository interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	BorrowCopy(ctx context.Context, bookID int64) (model.Book, error)
	ReturnCopy(ctx context.Context, bookID int64) (model.Book, error)
	ResizeCopies(ctx context.Context, bookID int64, newTotal int) (model.Book, error)
}

type MemberRepository interface {
	GetMember(ctx context.Context, id int64) (model.Member, error)
}

type RequestRepository interface {
	CreateRequest(ctx context.Context, memberID, bookID int64) (model.BorrowingRequest, error)
	ListPendingRequests(ctx context.Context) ([]model.PendingRequest, error)
	AcceptRequest(ctx context.Context, requestID int64) (model.BorrowingRecord, model.Book, error)
	RejectRequest(ctx context.Context, requestID int64) (model.BorrowingRequest, error)
}

type LoanRepository interface {
	CreateLoan(ctx context.Context, memberID, bookID int64) (model.BorrowingRecord, model.Book, error)
	CloseLoan(ctx context.Context, memberID, bookID int64) (model.BorrowingRecord, model.Book, error)
	CloseLoanByID(ctx context.Context, recordID int64) (model.BorrowingRecord, model.Book, error)
	GetLoan(ctx context.Context, recordID int64) (model.BorrowingRecord, error)
	ListLoans(ctx context.Context, memberID int64, returned bool) ([]model.LoanRow, error)
	ListAllLoans(ctx context.Context) ([]model.LoanRow, error)
	ListUnreturnedLoans(ctx context.Context, memberID *int64) ([]model.LoanRow, error)
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, p model.Payment) (model.Payment, error)
	GetPaymentByOrderID(ctx context.Context, orderID string) (model.Payment, error)
	SettlePayment(ctx context.Context, id int64, gatewayPaymentID, signature string) (model.Payment, error)
	FailPayment(ctx context.Context, id int64) error
	RecordCashPayment(ctx context.Context, req model.CashPaymentRequest) (model.Payment, *model.BorrowingRecord, error)
	SettleOverdueDebt(ctx context.Context, recordID int64, fine decimal.Decimal) (model.Payment, error)
	HasCompletedOverduePayment(ctx context.Context, recordID int64) (bool, error)
	PaymentHistoryByMember(ctx context.Context, memberID int64) ([]model.PaymentHistory, error)
	PaymentHistoryAll(ctx context.Context) ([]model.PaymentHistory, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName    = `books`
	membersTableName  = `members`
	requestsTableName = `borrowing_requests`
	recordsTableName  = `borrowing_records`
	paymentsTableName = `payments`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// withTx runs fn inside a transaction; every multi-entity mutation goes
// through here so copy counters and rows commit or roll back together.
func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
