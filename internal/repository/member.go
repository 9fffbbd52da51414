package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/garaga28/Librario/internal/errs"
	"github.com/garaga28/Librario/internal/model"
	"github.com/pkg/errors"
)

const memberColumns = `id, name, email, membership_type, start_date, end_date`

func (r *repository) GetMember(ctx context.Context, id int64) (model.Member, error) {
	q, args, err := qb.Select(memberColumns).
		From(membersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}
	var m model.Member
	if err := r.db.GetContext(ctx, &m, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, err
	}
	return m, nil
}
