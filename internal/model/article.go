package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Article is the article model. The author assignment is optional, an
// article survives its author being deleted.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:art"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Title     string     `bun:"title,notnull,unique" json:"title,omitempty"`
	Content   string     `bun:"content" json:"content,omitempty"`
	AuthorID  *int64     `bun:"author_id" json:"author_id,omitempty"`
	Author    *Author    `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	IsActive  bool       `bun:"is_active,notnull" json:"is_active"`
	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
