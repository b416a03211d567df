package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatorModel_BeforeCreate(t *testing.T) {
	creator := &CreatorModel{
		Name:     "testcreator",
		Email:    "test@example.com",
		Password: "password",
	}

	// BeforeCreate should set ID if empty
	err := creator.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, creator.ID)
}

func TestCreatorModel_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	creator := &CreatorModel{
		ID:    existingID,
		Name:  "testcreator",
		Email: "test@example.com",
	}

	err := creator.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, creator.ID)
}

func TestEndUserModel_BeforeCreate(t *testing.T) {
	user := &EndUserModel{
		Username: "testuser",
		Email:    "test@example.com",
		Phone:    "1234567890",
		Password: "password",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestSongModel_BeforeCreate(t *testing.T) {
	song := &SongModel{
		CreatorID: "creator-123",
		Title:     "Test Song",
	}

	err := song.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, song.ID)
}

func TestSongModel_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-song-id"
	song := &SongModel{
		ID:        existingID,
		CreatorID: "creator-123",
		Title:     "Test Song",
	}

	err := song.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, song.ID)
}

func TestSongLikeModel_BeforeCreate(t *testing.T) {
	like := &SongLikeModel{
		UserID: "user-123",
		SongID: "song-123",
	}

	err := like.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, like.ID)
}

func TestPlaylistModel_BeforeCreate(t *testing.T) {
	playlist := &PlaylistModel{
		Name:   "Test Playlist",
		UserID: "user-123",
	}

	err := playlist.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, playlist.ID)
}

func TestPlaylistSongModel_BeforeCreate(t *testing.T) {
	entry := &PlaylistSongModel{
		PlaylistID: "playlist-123",
		SongID:     "song-123",
	}

	err := entry.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
}

func TestRoleGrantModel_BeforeCreate(t *testing.T) {
	grant := &RoleGrantModel{
		AccountKind: "creator",
		AccountID:   "creator-123",
		RoleID:      "role-123",
	}

	err := grant.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, grant.ID)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "admins", AdminModel{}.TableName())
	assert.Equal(t, "creators", CreatorModel{}.TableName())
	assert.Equal(t, "end_users", EndUserModel{}.TableName())
	assert.Equal(t, "roles", RoleModel{}.TableName())
	assert.Equal(t, "role_grants", RoleGrantModel{}.TableName())
	assert.Equal(t, "genres", GenreModel{}.TableName())
	assert.Equal(t, "songs", SongModel{}.TableName())
	assert.Equal(t, "song_likes", SongLikeModel{}.TableName())
	assert.Equal(t, "playlists", PlaylistModel{}.TableName())
	assert.Equal(t, "playlist_songs", PlaylistSongModel{}.TableName())
}
