package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/garaga28/Librario/internal/errs"
	"github.com/garaga28/Librario/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const recordColumns = `id, member_id, book_id, borrow_date, return_date, returned`

const loanRowColumns = `r.id, r.member_id, m.name as member_name, m.email as member_email,
m.membership_type, r.book_id, b.title as book_title, b.author as book_author,
r.borrow_date, r.return_date, r.returned`

func insertLoanTx(ctx context.Context, tx *sqlx.Tx, memberID, bookID int64) (model.BorrowingRecord, error) {
	var record model.BorrowingRecord
	err := tx.GetContext(ctx, &record, `
insert into borrowing_records (member_id, book_id, borrow_date, returned)
values ($1, $2, now(), false)
returning `+recordColumns, memberID, bookID)
	if err != nil {
		if isUniqueViolation(err) {
			// this pair already has an unreturned loan
			return model.BorrowingRecord{}, errs.ErrConflict
		}
		return model.BorrowingRecord{}, err
	}
	return record, nil
}

func closeLoanTx(ctx context.Context, tx *sqlx.Tx, recordID int64) (model.BorrowingRecord, error) {
	var record model.BorrowingRecord
	err := tx.GetContext(ctx, &record, `
update borrowing_records
set returned = true, return_date = now()
where id = $1 and not returned
returning `+recordColumns, recordID)
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	return record, nil
}

func (r *repository) CreateLoan(ctx context.Context, memberID, bookID int64) (model.BorrowingRecord, model.Book, error) {
	var (
		record model.BorrowingRecord
		book   model.Book
	)
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		if book, err = borrowCopyTx(ctx, tx, bookID); err != nil {
			return err
		}
		record, err = insertLoanTx(ctx, tx, memberID, bookID)
		return err
	})
	if err != nil {
		return model.BorrowingRecord{}, model.Book{}, err
	}
	return record, book, nil
}

func (r *repository) CloseLoan(ctx context.Context, memberID, bookID int64) (model.BorrowingRecord, model.Book, error) {
	var (
		record model.BorrowingRecord
		book   model.Book
	)
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &record, `
update borrowing_records
set returned = true, return_date = now()
where member_id = $1 and book_id = $2 and not returned
returning `+recordColumns, memberID, bookID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// no active loan for the pair
				return errs.ErrNotFound
			}
			return err
		}
		book, err = returnCopyTx(ctx, tx, bookID)
		return err
	})
	if err != nil {
		return model.BorrowingRecord{}, model.Book{}, err
	}
	return record, book, nil
}

func (r *repository) CloseLoanByID(ctx context.Context, recordID int64) (model.BorrowingRecord, model.Book, error) {
	var (
		record model.BorrowingRecord
		book   model.Book
	)
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var current model.BorrowingRecord
		err := tx.GetContext(ctx, &current,
			`select `+recordColumns+` from borrowing_records where id = $1 for update`, recordID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if current.Returned {
			return errs.ErrConflict
		}
		if record, err = closeLoanTx(ctx, tx, recordID); err != nil {
			return err
		}
		book, err = returnCopyTx(ctx, tx, current.BookID)
		return err
	})
	if err != nil {
		return model.BorrowingRecord{}, model.Book{}, err
	}
	return record, book, nil
}

func (r *repository) GetLoan(ctx context.Context, recordID int64) (model.BorrowingRecord, error) {
	var record model.BorrowingRecord
	err := r.db.GetContext(ctx, &record,
		`select `+recordColumns+` from borrowing_records where id = $1`, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRecord{}, errs.ErrNotFound
		}
		return model.BorrowingRecord{}, err
	}
	return record, nil
}

func (r *repository) ListLoans(ctx context.Context, memberID int64, returned bool) ([]model.LoanRow, error) {
	return r.listLoanRows(ctx, sq.And{sq.Eq{"r.member_id": memberID}, sq.Eq{"r.returned": returned}})
}

func (r *repository) ListAllLoans(ctx context.Context) ([]model.LoanRow, error) {
	return r.listLoanRows(ctx, nil)
}

// ListUnreturnedLoans feeds the overdue calculator and the background
// sweeps; memberID narrows the scan when non-nil.
func (r *repository) ListUnreturnedLoans(ctx context.Context, memberID *int64) ([]model.LoanRow, error) {
	pred := sq.And{sq.Eq{"r.returned": false}}
	if memberID != nil {
		pred = append(pred, sq.Eq{"r.member_id": *memberID})
	}
	return r.listLoanRows(ctx, pred)
}

func (r *repository) listLoanRows(ctx context.Context, pred interface{}) ([]model.LoanRow, error) {
	q := qb.Select(loanRowColumns).
		From(recordsTableName + " r").
		Join(membersTableName + " m on m.id = r.member_id").
		Join(booksTableName + " b on b.id = r.book_id").
		OrderBy("r.borrow_date", "r.id")
	if pred != nil {
		q = q.Where(pred)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var rows []model.LoanRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
