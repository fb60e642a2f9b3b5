package types

import "time"

// BaseModel carries the audit timestamps shared by all persisted domain
// models. Any change here needs a matching migration.
type BaseModel struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
