package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/garaga28/Librario/internal/errs"
	"github.com/garaga28/Librario/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const paymentColumns = `id, member_id, borrowing_record_id, amount, type, method, status,
gateway_order_id, gateway_payment_id, gateway_signature, created_at`

func (r *repository) CreatePayment(ctx context.Context, p model.Payment) (model.Payment, error) {
	q, args, err := qb.Insert(paymentsTableName).
		Columns("member_id", "borrowing_record_id", "amount", "type", "method", "status", "gateway_order_id").
		Values(p.MemberID, p.BorrowingRecordID, p.Amount, p.Type, p.Method, p.Status, p.GatewayOrderID).
		Suffix("returning " + paymentColumns).
		ToSql()
	if err != nil {
		return model.Payment{}, err
	}
	var out model.Payment
	if err := r.db.GetContext(ctx, &out, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Payment{}, errs.ErrConflict
		}
		r.log.Error("CreatePayment", zap.String("q", q), zap.Any("args", args))
		return model.Payment{}, err
	}
	return out, nil
}

func (r *repository) GetPaymentByOrderID(ctx context.Context, orderID string) (model.Payment, error) {
	q, args, err := qb.Select(paymentColumns).
		From(paymentsTableName).
		Where(sq.Eq{"gateway_order_id": orderID}).
		ToSql()
	if err != nil {
		return model.Payment{}, err
	}
	var p model.Payment
	if err := r.db.GetContext(ctx, &p, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Payment{}, errs.ErrNotFound
		}
		return model.Payment{}, err
	}
	return p, nil
}

func (r *repository) SettlePayment(ctx context.Context, id int64, gatewayPaymentID, signature string) (model.Payment, error) {
	var p model.Payment
	err := r.db.GetContext(ctx, &p, `
update payments
set status = 'completed', gateway_payment_id = $2, gateway_signature = $3
where id = $1 and status = 'pending'
returning `+paymentColumns, id, gatewayPaymentID, signature)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Payment{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Payment{}, errs.ErrConflict
		}
		return model.Payment{}, err
	}
	return p, nil
}

func (r *repository) FailPayment(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`update payments set status = 'failed' where id = $1 and status = 'pending'`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// RecordCashPayment stores the completed payment and, when tied to a loan,
// settles the loan in the same transaction: cash at the counter implies the
// book came back, so the copy increments with the returned flag.
func (r *repository) RecordCashPayment(ctx context.Context, req model.CashPaymentRequest) (model.Payment, *model.BorrowingRecord, error) {
	var (
		payment model.Payment
		record  *model.BorrowingRecord
	)
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &payment, `
insert into payments (member_id, borrowing_record_id, amount, type, method, status)
values ($1, $2, $3, $4, 'cash', 'completed')
returning `+paymentColumns, req.MemberID, req.BorrowingRecordID, req.Amount, req.Type)
		if err != nil {
			if isUniqueViolation(err) {
				return errs.ErrConflict
			}
			return err
		}
		if req.BorrowingRecordID == nil {
			return nil
		}

		var current model.BorrowingRecord
		err = tx.GetContext(ctx, &current,
			`select `+recordColumns+` from borrowing_records where id = $1 for update`, *req.BorrowingRecordID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if current.Returned {
			record = &current
			return nil
		}
		closed, err := closeLoanTx(ctx, tx, current.ID)
		if err != nil {
			return err
		}
		if _, err := returnCopyTx(ctx, tx, current.BookID); err != nil {
			return err
		}
		record = &closed
		return nil
	})
	if err != nil {
		return model.Payment{}, nil, err
	}
	return payment, record, nil
}

// SettleOverdueDebt completes the pending overdue payment for the loan, or
// synthesizes one from the computed fine. A loan already settled returns its
// existing completed payment; the partial unique index makes a second
// completed row impossible either way.
func (r *repository) SettleOverdueDebt(ctx context.Context, recordID int64, fine decimal.Decimal) (model.Payment, error) {
	var payment model.Payment
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var record model.BorrowingRecord
		err := tx.GetContext(ctx, &record,
			`select `+recordColumns+` from borrowing_records where id = $1`, recordID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}

		// the already-settled check comes first: completing a pending row
		// while a completed one exists would trip the partial unique index
		// and abort the whole transaction
		err = tx.GetContext(ctx, &payment, `
select `+paymentColumns+` from payments
where borrowing_record_id = $1 and status = 'completed' and type = 'overdue_charges'`, recordID)
		if err == nil {
			// already settled: idempotent no-op
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		err = tx.GetContext(ctx, &payment, `
update payments
set status = 'completed'
where borrowing_record_id = $1 and status = 'pending' and type = 'overdue_charges'
returning `+paymentColumns, recordID)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			// settled concurrently between the lookup and the update
			return errs.ErrConflict
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		err = tx.GetContext(ctx, &payment, `
insert into payments (member_id, borrowing_record_id, amount, type, method, status)
values ($1, $2, $3, 'overdue_charges', 'cash', 'completed')
returning `+paymentColumns, record.MemberID, recordID, fine)
		if isUniqueViolation(err) {
			return errs.ErrConflict
		}
		return err
	})
	if err != nil {
		return model.Payment{}, err
	}
	return payment, nil
}

func (r *repository) HasCompletedOverduePayment(ctx context.Context, recordID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
select exists (
    select 1 from payments
    where borrowing_record_id = $1 and status = 'completed' and type = 'overdue_charges'
)`, recordID)
	return exists, err
}

func (r *repository) PaymentHistoryByMember(ctx context.Context, memberID int64) ([]model.PaymentHistory, error) {
	return r.paymentHistory(ctx, sq.Eq{"p.member_id": memberID})
}

func (r *repository) PaymentHistoryAll(ctx context.Context) ([]model.PaymentHistory, error) {
	return r.paymentHistory(ctx, nil)
}

func (r *repository) paymentHistory(ctx context.Context, pred interface{}) ([]model.PaymentHistory, error) {
	q := qb.Select(`p.id, p.member_id, p.borrowing_record_id, p.amount, p.type, p.method,
p.status, p.gateway_order_id, p.gateway_payment_id, p.gateway_signature, p.created_at,
m.name as member_name`).
		From(paymentsTableName + " p").
		Join(membersTableName + " m on m.id = p.member_id").
		OrderBy("p.created_at desc", "p.id desc")
	if pred != nil {
		q = q.Where(pred)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.PaymentHistory
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
