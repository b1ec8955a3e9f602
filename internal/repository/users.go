package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"

	"github.com/taha-arar/blog/internal/model"
)

// Users is the user persistence surface
type Users interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.User, error)
	PageSearch(ctx context.Context, criteria string, page, size int) (Page[*model.User], error)
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsers creates the user repository
func NewUsers(db *bun.DB) Users {
	return &users{db: db}
}

func (r *users) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	err := r.db.NewSelect().
		Model(user).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, scanErr(err, "user", id)
	}
	return user, nil
}

func (r *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.db.NewSelect().
		Model(user).
		Where("?TableAlias.email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, scanErr(err, "user", email)
	}
	return user, nil
}

func (r *users) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.db.NewSelect().
		Model((*model.User)(nil)).
		Where("?TableAlias.email = ?", email).
		Exists(ctx)
}

func (r *users) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to insert user")
	}
	return user, nil
}

func (r *users) Update(ctx context.Context, user *model.User) (*model.User, error) {
	res, err := r.db.NewUpdate().
		Model(user).
		WherePK().
		ExcludeColumn("created_at").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update user")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, notFound("user", user.ID)
	}
	return user, nil
}

func (r *users) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*model.User)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete user")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return notFound("user", id)
	}
	return nil
}

func (r *users) List(ctx context.Context) ([]*model.User, error) {
	var records []*model.User
	err := r.db.NewSelect().
		Model(&records).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list users")
	}
	return records, nil
}

func (r *users) PageSearch(ctx context.Context, criteria string, page, size int) (Page[*model.User], error) {
	page, size = normalizePaging(page, size)

	var records []*model.User
	q := r.db.NewSelect().Model(&records)

	if criteria = strings.TrimSpace(criteria); criteria != "" {
		pattern := "%" + strings.ToLower(criteria) + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("lower(?TableAlias.first_name) LIKE ?", pattern).
				WhereOr("lower(?TableAlias.last_name) LIKE ?", pattern).
				WhereOr("lower(?TableAlias.email) LIKE ?", pattern)
			if id, err := strconv.ParseInt(criteria, 10, 64); err == nil {
				q = q.WhereOr("?TableAlias.id = ?", id)
			}
			return q
		})
	}

	total, err := q.
		Order("id ASC").
		Limit(size).
		Offset(page * size).
		ScanAndCount(ctx)
	if err != nil {
		return Page[*model.User]{}, errors.Wrap(err, errors.CategoryInternal, "failed to search users")
	}

	return NewPage(records, page, size, total), nil
}
