package entity

import "time"

// AccountKind discriminates which identity table an account ID belongs to.
// Role grants and tokens always carry a kind next to the ID.
type AccountKind string

const (
	KindAdmin   AccountKind = "admin"
	KindCreator AccountKind = "creator"
	KindUser    AccountKind = "user"
)

type RoleName string

const (
	RoleAdmin   RoleName = "admin"
	RoleCreator RoleName = "creator"
	RoleUser    RoleName = "user"
)

// Admin is the seeded administrator account.
type Admin struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Creator uploads and owns songs.
type Creator struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EndUser consumes content, likes songs and owns playlists.
type EndUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Role struct {
	ID   string   `json:"id"`
	Name RoleName `json:"name"`
}

// RoleGrant links an account of any kind to a role. The kind tag replaces
// the untyped shared integer key of the original schema.
type RoleGrant struct {
	ID          string      `json:"id"`
	AccountKind AccountKind `json:"account_kind"`
	AccountID   string      `json:"account_id"`
	RoleID      string      `json:"role_id"`
	CreatedAt   time.Time   `json:"created_at"`
}
