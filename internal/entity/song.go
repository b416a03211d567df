package entity

import "time"

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Song struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AudioKey    string    `json:"-"`
	CoverKey    string    `json:"-"`
	AudioURL    string    `json:"audio_url,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	GenreID     string    `json:"genre_id,omitempty"`
	GenreName   string    `json:"genre,omitempty"`
	Plays       int       `json:"plays"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
