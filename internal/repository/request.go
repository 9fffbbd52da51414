package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/garaga28/Librario/internal/errs"
	"github.com/garaga28/Librario/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const requestColumns = `id, member_id, book_id, request_date, status`

func (r *repository) CreateRequest(ctx context.Context, memberID, bookID int64) (model.BorrowingRequest, error) {
	q, args, err := qb.Insert(requestsTableName).
		Columns("member_id", "book_id", "status").
		Values(memberID, bookID, model.RequestPending).
		Suffix("returning " + requestColumns).
		ToSql()
	if err != nil {
		return model.BorrowingRequest{}, err
	}
	var req model.BorrowingRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		if isUniqueViolation(err) {
			// a PENDING request for this pair already exists
			return model.BorrowingRequest{}, errs.ErrConflict
		}
		r.log.Error("CreateRequest", zap.String("q", q), zap.Any("args", args))
		return model.BorrowingRequest{}, err
	}
	return req, nil
}

func (r *repository) ListPendingRequests(ctx context.Context) ([]model.PendingRequest, error) {
	q, args, err := qb.Select("r.id", "r.member_id", "m.name as member_name",
		"r.book_id", "b.title as book_title", "r.request_date").
		From(requestsTableName + " r").
		Join(membersTableName + " m on m.id = r.member_id").
		Join(booksTableName + " b on b.id = r.book_id").
		Where(sq.Eq{"r.status": model.RequestPending}).
		OrderBy("r.request_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.PendingRequest
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// AcceptRequest performs the whole accept composite in one transaction:
// lock the request, decrement the copy, open the loan, flip the status.
// ErrUnavailable rolls everything back and the request stays PENDING.
func (r *repository) AcceptRequest(ctx context.Context, requestID int64) (model.BorrowingRecord, model.Book, error) {
	var (
		record model.BorrowingRecord
		book   model.Book
	)
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var req model.BorrowingRequest
		err := tx.GetContext(ctx, &req,
			`select `+requestColumns+` from borrowing_requests where id = $1 for update`, requestID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if req.Status != model.RequestPending {
			return errs.ErrInvalidState
		}

		if book, err = borrowCopyTx(ctx, tx, req.BookID); err != nil {
			return err
		}
		if record, err = insertLoanTx(ctx, tx, req.MemberID, req.BookID); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`update borrowing_requests set status = $2 where id = $1`,
			requestID, model.RequestAccepted)
		return err
	})
	if err != nil {
		return model.BorrowingRecord{}, model.Book{}, err
	}
	return record, book, nil
}

func (r *repository) RejectRequest(ctx context.Context, requestID int64) (model.BorrowingRequest, error) {
	var req model.BorrowingRequest
	err := r.db.GetContext(ctx, &req, `
update borrowing_requests
set status = 'REJECTED'
where id = $1 and status = 'PENDING'
returning `+requestColumns, requestID)
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.BorrowingRequest{}, err
	}
	// distinguish absent from already-terminal
	if err := r.db.GetContext(ctx, &req,
		`select `+requestColumns+` from borrowing_requests where id = $1`, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRequest{}, errs.ErrNotFound
		}
		return model.BorrowingRequest{}, err
	}
	return model.BorrowingRequest{}, errs.ErrInvalidState
}
