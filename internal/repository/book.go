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

const bookColumns = `id, title, author, total_copies, available_copies, status, created_at, updated_at`

// borrowCopyQuery is the check-and-decrement in one statement: the guard on
// available_copies settles the race between concurrent borrowers without an
// explicit row lock.
const borrowCopyQuery = `
update books
set available_copies = available_copies - 1,
    status           = case when available_copies - 1 > 0 then 'AVAILABLE' else 'ON_LOAN' end,
    updated_at       = now()
where id = $1
  and available_copies > 0
returning ` + bookColumns

const returnCopyQuery = `
update books
set available_copies = available_copies + 1,
    status           = 'AVAILABLE',
    updated_at       = now()
where id = $1
  and available_copies < total_copies
returning ` + bookColumns

const resizeCopiesQuery = `
update books
set available_copies = greatest(0, $2 - (total_copies - available_copies)),
    total_copies     = $2,
    status           = case when greatest(0, $2 - (total_copies - available_copies)) > 0
                            then 'AVAILABLE' else 'ON_LOAN' end,
    updated_at       = now()
where id = $1
returning ` + bookColumns

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "total_copies", "available_copies", "status").
		Values(req.Title, req.Author, req.TotalCopies, req.TotalCopies, model.BookAvailable).
		Suffix("returning " + bookColumns).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	q, args, err := qb.Select(bookColumns).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select(bookColumns).
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) BorrowCopy(ctx context.Context, bookID int64) (model.Book, error) {
	var book model.Book
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		book, err = borrowCopyTx(ctx, tx, bookID)
		return err
	})
	return book, err
}

func (r *repository) ReturnCopy(ctx context.Context, bookID int64) (model.Book, error) {
	var book model.Book
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		book, err = returnCopyTx(ctx, tx, bookID)
		return err
	})
	return book, err
}

func (r *repository) ResizeCopies(ctx context.Context, bookID int64, newTotal int) (model.Book, error) {
	var book model.Book
	if err := r.db.GetContext(ctx, &book, resizeCopiesQuery, bookID, newTotal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// borrowCopyTx distinguishes "book absent" from "no copies left" so callers
// can surface ErrUnavailable as a retryable condition.
func borrowCopyTx(ctx context.Context, tx *sqlx.Tx, bookID int64) (model.Book, error) {
	var book model.Book
	if err := tx.GetContext(ctx, &book, borrowCopyQuery, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if err := tx.GetContext(ctx, &book, `select `+bookColumns+` from books where id = $1`, bookID); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return model.Book{}, errs.ErrNotFound
				}
				return model.Book{}, err
			}
			return model.Book{}, errs.ErrUnavailable
		}
		return model.Book{}, err
	}
	return book, nil
}

func returnCopyTx(ctx context.Context, tx *sqlx.Tx, bookID int64) (model.Book, error) {
	var book model.Book
	if err := tx.GetContext(ctx, &book, returnCopyQuery, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if err := tx.GetContext(ctx, &book, `select `+bookColumns+` from books where id = $1`, bookID); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return model.Book{}, errs.ErrNotFound
				}
				return model.Book{}, err
			}
			// all copies already on the shelf: bookkeeping bug upstream
			return model.Book{}, errs.ErrConflict
		}
		return model.Book{}, err
	}
	return book, nil
}
