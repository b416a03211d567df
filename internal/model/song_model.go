package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenreModel struct {
	ID   string `gorm:"type:uuid;primary_key" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

func (GenreModel) TableName() string { return "genres" }

func (m *GenreModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type SongModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	CreatorID   string         `gorm:"type:uuid;not null;index" json:"creator_id"`
	Title       string         `gorm:"type:varchar(120);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	AudioKey    string         `gorm:"type:varchar(500)" json:"audio_key"`
	CoverKey    string         `gorm:"type:varchar(500)" json:"cover_key"`
	GenreID     *string        `gorm:"type:uuid;index" json:"genre_id"`
	Plays       int            `gorm:"default:0" json:"plays"`
	Likes       int            `gorm:"default:0" json:"likes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Genre *GenreModel `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
}

func (SongModel) TableName() string { return "songs" }

func (m *SongModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// SongLikeModel pairs are unique: liking an already-liked song is a toggle,
// never a second row.
type SongLikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_song_like" json:"user_id"`
	SongID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_song_like" json:"song_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (SongLikeModel) TableName() string { return "song_likes" }

func (m *SongLikeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
