package userdb

import (
	"time"

	"github.com/uptrace/bun"
)

// User is a minimal directory entry. Authentication lives outside this
// service; join-request and roster projections join against this table for
// names and contact info.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull,unique" json:"email"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
