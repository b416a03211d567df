package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string         `gorm:"type:varchar(120);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Songs []PlaylistSongModel `gorm:"foreignKey:PlaylistID" json:"songs,omitempty"`
}

func (PlaylistModel) TableName() string { return "playlists" }

func (m *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// PlaylistSongModel rows carry no position: playlist order is undefined.
type PlaylistSongModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	PlaylistID string    `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_song" json:"playlist_id"`
	SongID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_song" json:"song_id"`
	CreatedAt  time.Time `json:"created_at"`

	Song SongModel `gorm:"foreignKey:SongID" json:"-"`
}

func (PlaylistSongModel) TableName() string { return "playlist_songs" }

func (m *PlaylistSongModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
