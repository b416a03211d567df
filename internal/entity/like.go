package entity

import "time"

type SongLike struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SongID    string    `json:"song_id"`
	CreatedAt time.Time `json:"created_at"`
}
