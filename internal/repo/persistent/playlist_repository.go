package persistent

import (
	"songhub/internal/entity"
	"songhub/internal/model"

	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	GetByIDForUser(id, userID string) (*entity.Playlist, error)
	GetByUserID(userID string) ([]*entity.Playlist, error)
	Delete(id string) error
	AddSong(playlistID, songID string) error
	RemoveSong(playlistID, songID string) error
	HasSong(playlistID, songID string) (bool, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := &model.PlaylistModel{
		UserID:      playlist.UserID,
		Name:        playlist.Name,
		Description: playlist.Description,
	}
	if err := r.db.Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	err := r.db.Preload("Songs.Song.Genre").Where("id = ?", id).First(&playlistModel).Error
	if err != nil {
		return nil, err
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) GetByIDForUser(id, userID string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	err := r.db.Preload("Songs.Song.Genre").
		Where("id = ? AND user_id = ?", id, userID).
		First(&playlistModel).Error
	if err != nil {
		return nil, err
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) GetByUserID(userID string) ([]*entity.Playlist, error) {
	var playlistModels []model.PlaylistModel
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&playlistModels).Error
	if err != nil {
		return nil, err
	}

	playlists := make([]*entity.Playlist, len(playlistModels))
	for i := range playlistModels {
		playlists[i] = ToPlaylistEntity(&playlistModels[i])
	}
	return playlists, nil
}

func (r *playlistRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistSongModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PlaylistModel{}, "id = ?", id).Error
	})
}

func (r *playlistRepository) AddSong(playlistID, songID string) error {
	entry := &model.PlaylistSongModel{
		PlaylistID: playlistID,
		SongID:     songID,
	}
	return r.db.Create(entry).Error
}

func (r *playlistRepository) RemoveSong(playlistID, songID string) error {
	return r.db.Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		Delete(&model.PlaylistSongModel{}).Error
}

func (r *playlistRepository) HasSong(playlistID, songID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PlaylistSongModel{}).
		Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		Count(&count).Error
	return count > 0, err
}
