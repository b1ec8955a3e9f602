package model

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the account model. The email doubles as the username for
// authentication purposes.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	FirstName    string     `bun:"first_name,notnull" json:"first_name,omitempty"`
	LastName     string     `bun:"last_name,notnull" json:"last_name,omitempty"`
	Email        string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash string     `bun:"password_hash,notnull" json:"-"`
	Biography    string     `bun:"biography" json:"biography,omitempty"`
	Domain       string     `bun:"domain" json:"domain,omitempty"`
	Role         Role       `bun:"role,notnull" json:"role,omitempty"`
	IsActive     bool       `bun:"is_active,notnull" json:"is_active"`
	CreatedAt    *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt    *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Username returns the identifier used as the token subject.
func (u *User) Username() string {
	return u.Email
}

// Authorities renders the user's role as authority strings.
func (u *User) Authorities() []string {
	return []string{u.Role.Authority()}
}
