package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Author is the author profile articles get attributed to.
type Author struct {
	bun.BaseModel `bun:"table:authors,alias:aut"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	FirstName string     `bun:"first_name,notnull" json:"first_name,omitempty"`
	LastName  string     `bun:"last_name,notnull" json:"last_name,omitempty"`
	Email     string     `bun:"email,notnull,unique" json:"email,omitempty"`
	Biography string     `bun:"biography" json:"biography,omitempty"`
	Domain    string     `bun:"domain" json:"domain,omitempty"`
	IsActive  bool       `bun:"is_active,notnull" json:"is_active"`
	Articles  []*Article `bun:"rel:has-many,join:id=author_id" json:"articles,omitempty"`
	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
