package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"

	"github.com/taha-arar/blog/internal/model"
)

// Articles is the article persistence surface
type Articles interface {
	GetByID(ctx context.Context, id int64) (*model.Article, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, article *model.Article) (*model.Article, error)
	Update(ctx context.Context, article *model.Article) (*model.Article, error)
	List(ctx context.Context) ([]*model.Article, error)
	PageList(ctx context.Context, page, size int) (Page[*model.Article], error)
	PageSearch(ctx context.Context, criteria string, page, size int) (Page[*model.Article], error)
}

type articles struct {
	db *bun.DB
}

var _ Articles = (*articles)(nil)

// NewArticles creates the article repository
func NewArticles(db *bun.DB) Articles {
	return &articles{db: db}
}

func (r *articles) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	article := &model.Article{}
	err := r.db.NewSelect().
		Model(article).
		Relation("Author").
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, scanErr(err, "article", id)
	}
	return article, nil
}

func (r *articles) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return r.db.NewSelect().
		Model((*model.Article)(nil)).
		Where("?TableAlias.title = ?", title).
		Exists(ctx)
}

func (r *articles) Create(ctx context.Context, article *model.Article) (*model.Article, error) {
	if _, err := r.db.NewInsert().Model(article).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to insert article")
	}
	return article, nil
}

func (r *articles) Update(ctx context.Context, article *model.Article) (*model.Article, error) {
	res, err := r.db.NewUpdate().
		Model(article).
		WherePK().
		ExcludeColumn("created_at").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update article")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, notFound("article", article.ID)
	}
	return article, nil
}

func (r *articles) List(ctx context.Context) ([]*model.Article, error) {
	var records []*model.Article
	err := r.db.NewSelect().
		Model(&records).
		Relation("Author").
		Order("art.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list articles")
	}
	return records, nil
}

func (r *articles) PageList(ctx context.Context, page, size int) (Page[*model.Article], error) {
	return r.page(ctx, "", page, size)
}

func (r *articles) PageSearch(ctx context.Context, criteria string, page, size int) (Page[*model.Article], error) {
	return r.page(ctx, criteria, page, size)
}

func (r *articles) page(ctx context.Context, criteria string, page, size int) (Page[*model.Article], error) {
	page, size = normalizePaging(page, size)

	var records []*model.Article
	q := r.db.NewSelect().
		Model(&records).
		Relation("Author")

	if criteria = strings.TrimSpace(criteria); criteria != "" {
		pattern := "%" + strings.ToLower(criteria) + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("lower(art.title) LIKE ?", pattern).
				WhereOr("lower(art.content) LIKE ?", pattern)
			if id, err := strconv.ParseInt(criteria, 10, 64); err == nil {
				q = q.WhereOr("art.id = ?", id)
			}
			return q
		})
	}

	total, err := q.
		Order("art.id ASC").
		Limit(size).
		Offset(page * size).
		ScanAndCount(ctx)
	if err != nil {
		return Page[*model.Article]{}, errors.Wrap(err, errors.CategoryInternal, "failed to page articles")
	}

	return NewPage(records, page, size, total), nil
}
