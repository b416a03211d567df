package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Username  string         `gorm:"type:varchar(80);not null" json:"username"`
	Email     string         `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"type:varchar(130);not null" json:"-"`
	Phone     string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AdminModel) TableName() string { return "admins" }

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type CreatorModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Email     string         `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"type:varchar(130);not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Songs []SongModel `gorm:"foreignKey:CreatorID" json:"songs,omitempty"`
}

func (CreatorModel) TableName() string { return "creators" }

func (m *CreatorModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type EndUserModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Username  string         `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email     string         `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Phone     string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Password  string         `gorm:"type:varchar(130);not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Playlists []PlaylistModel `gorm:"foreignKey:UserID" json:"playlists,omitempty"`
}

func (EndUserModel) TableName() string { return "end_users" }

func (m *EndUserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type RoleModel struct {
	ID   string `gorm:"type:uuid;primary_key" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

func (RoleModel) TableName() string { return "roles" }

func (m *RoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// RoleGrantModel carries an account_kind discriminator so the account_id is
// always resolved against the right table.
type RoleGrantModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	AccountKind string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_role_grant" json:"account_kind"`
	AccountID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_role_grant" json:"account_id"`
	RoleID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_role_grant" json:"role_id"`
	CreatedAt   time.Time `json:"created_at"`

	Role RoleModel `gorm:"foreignKey:RoleID" json:"-"`
}

func (RoleGrantModel) TableName() string { return "role_grants" }

func (m *RoleGrantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
