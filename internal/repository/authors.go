package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"

	"github.com/taha-arar/blog/internal/model"
)

// Authors is the author persistence surface
type Authors interface {
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, author *model.Author) (*model.Author, error)
	Update(ctx context.Context, author *model.Author) (*model.Author, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Author, error)
	PageList(ctx context.Context, page, size int) (Page[*model.Author], error)
	PageSearch(ctx context.Context, criteria string, page, size int) (Page[*model.Author], error)
}

type authors struct {
	db *bun.DB
}

var _ Authors = (*authors)(nil)

// NewAuthors creates the author repository
func NewAuthors(db *bun.DB) Authors {
	return &authors{db: db}
}

func (r *authors) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	author := &model.Author{}
	err := r.db.NewSelect().
		Model(author).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, scanErr(err, "author", id)
	}
	return author, nil
}

func (r *authors) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.db.NewSelect().
		Model((*model.Author)(nil)).
		Where("?TableAlias.id = ?", id).
		Exists(ctx)
}

func (r *authors) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.db.NewSelect().
		Model((*model.Author)(nil)).
		Where("?TableAlias.email = ?", email).
		Exists(ctx)
}

func (r *authors) Create(ctx context.Context, author *model.Author) (*model.Author, error) {
	if _, err := r.db.NewInsert().Model(author).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to insert author")
	}
	return author, nil
}

func (r *authors) Update(ctx context.Context, author *model.Author) (*model.Author, error) {
	res, err := r.db.NewUpdate().
		Model(author).
		WherePK().
		ExcludeColumn("created_at").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update author")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, notFound("author", author.ID)
	}
	return author, nil
}

func (r *authors) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*model.Author)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete author")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return notFound("author", id)
	}
	return nil
}

func (r *authors) List(ctx context.Context) ([]*model.Author, error) {
	var records []*model.Author
	err := r.db.NewSelect().
		Model(&records).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list authors")
	}
	return records, nil
}

func (r *authors) PageList(ctx context.Context, page, size int) (Page[*model.Author], error) {
	return r.page(ctx, "", page, size)
}

func (r *authors) PageSearch(ctx context.Context, criteria string, page, size int) (Page[*model.Author], error) {
	return r.page(ctx, criteria, page, size)
}

func (r *authors) page(ctx context.Context, criteria string, page, size int) (Page[*model.Author], error) {
	page, size = normalizePaging(page, size)

	var records []*model.Author
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
		return Page[*model.Author]{}, errors.Wrap(err, errors.CategoryInternal, "failed to page authors")
	}

	return NewPage(records, page, size, total), nil
}
