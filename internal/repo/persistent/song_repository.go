package persistent

import (
	"songhub/internal/entity"
	"songhub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SongRepository interface {
	Create(song *entity.Song) error
	GetByID(id string) (*entity.Song, error)
	GetByIDForCreator(id, creatorID string) (*entity.Song, error)
	GetByCreatorID(creatorID string) ([]*entity.Song, error)
	List(limit, offset int, genreID string) ([]*entity.Song, error)
	Update(song *entity.Song) error
	Delete(id string) error
	SongExists(id string) (bool, error)
	IncrementPlays(id string) error

	CreateLike(userID, songID string) error
	DeleteLike(userID, songID string) error
	IsLiked(userID, songID string) (bool, error)
	GetLikeCount(songID string) (int64, error)
	SetLikeCount(songID string, count int64) error
	GetLikedSongs(userID string, limit, offset int) ([]*entity.Song, error)
}

type songRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) SongRepository {
	return &songRepository{db: db}
}

func (r *songRepository) Create(song *entity.Song) error {
	songModel := ToSongModel(song)
	if err := r.db.Create(songModel).Error; err != nil {
		return err
	}
	if songModel.GenreID != nil {
		r.db.Preload("Genre").First(songModel, "id = ?", songModel.ID)
	}
	*song = *ToSongEntity(songModel)
	return nil
}

func (r *songRepository) GetByID(id string) (*entity.Song, error) {
	var songModel model.SongModel
	if err := r.db.Preload("Genre").Where("id = ?", id).First(&songModel).Error; err != nil {
		return nil, err
	}
	return ToSongEntity(&songModel), nil
}

// GetByIDForCreator scopes the lookup by ownership: another creator's song
// is indistinguishable from a missing one.
func (r *songRepository) GetByIDForCreator(id, creatorID string) (*entity.Song, error) {
	var songModel model.SongModel
	err := r.db.Preload("Genre").
		Where("id = ? AND creator_id = ?", id, creatorID).
		First(&songModel).Error
	if err != nil {
		return nil, err
	}
	return ToSongEntity(&songModel), nil
}

func (r *songRepository) GetByCreatorID(creatorID string) ([]*entity.Song, error) {
	var songModels []model.SongModel
	err := r.db.Preload("Genre").
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&songModels).Error
	if err != nil {
		return nil, err
	}

	songs := make([]*entity.Song, len(songModels))
	for i := range songModels {
		songs[i] = ToSongEntity(&songModels[i])
	}
	return songs, nil
}

func (r *songRepository) List(limit, offset int, genreID string) ([]*entity.Song, error) {
	var songModels []model.SongModel
	query := r.db.Preload("Genre").Order("created_at DESC")

	if genreID != "" {
		query = query.Where("genre_id = ?", genreID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&songModels).Error; err != nil {
		return nil, err
	}

	songs := make([]*entity.Song, len(songModels))
	for i := range songModels {
		songs[i] = ToSongEntity(&songModels[i])
	}
	return songs, nil
}

func (r *songRepository) Update(song *entity.Song) error {
	songModel := ToSongModel(song)
	// Save skips nil pointers on updates, so clearing a genre needs an
	// explicit column write.
	if songModel.GenreID == nil {
		if err := r.db.Model(&model.SongModel{}).Where("id = ?", songModel.ID).
			Update("genre_id", nil).Error; err != nil {
			return err
		}
	}
	return r.db.Save(songModel).Error
}

// Delete soft-deletes the song. The playlist and like join rows are hard
// rows without a deleted_at column, so they are removed here; otherwise a
// playlist preload would carry entries pointing at a song it can no longer
// load.
func (r *songRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("song_id = ?", id).Delete(&model.PlaylistSongModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("song_id = ?", id).Delete(&model.SongLikeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SongModel{}, "id = ?", id).Error
	})
}

func (r *songRepository) SongExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SongModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *songRepository) IncrementPlays(id string) error {
	return r.db.Model(&model.SongModel{}).Where("id = ?", id).
		UpdateColumn("plays", clause.Expr{SQL: "plays + ?", Vars: []interface{}{1}}).Error
}

func (r *songRepository) CreateLike(userID, songID string) error {
	likeModel := &model.SongLikeModel{
		UserID: userID,
		SongID: songID,
	}
	return r.db.Create(likeModel).Error
}

func (r *songRepository) DeleteLike(userID, songID string) error {
	return r.db.Where("user_id = ? AND song_id = ?", userID, songID).
		Delete(&model.SongLikeModel{}).Error
}

func (r *songRepository) IsLiked(userID, songID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SongLikeModel{}).
		Where("user_id = ? AND song_id = ?", userID, songID).
		Count(&count).Error
	return count > 0, err
}

func (r *songRepository) GetLikeCount(songID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SongLikeModel{}).Where("song_id = ?", songID).Count(&count).Error
	return count, err
}

// SetLikeCount keeps the denormalized likes column in step with the join
// table after a toggle.
func (r *songRepository) SetLikeCount(songID string, count int64) error {
	return r.db.Model(&model.SongModel{}).Where("id = ?", songID).
		UpdateColumn("likes", count).Error
}

func (r *songRepository) GetLikedSongs(userID string, limit, offset int) ([]*entity.Song, error) {
	var songModels []model.SongModel
	query := r.db.Model(&model.SongModel{}).
		Preload("Genre").
		Joins("INNER JOIN song_likes ON songs.id = song_likes.song_id").
		Where("song_likes.user_id = ?", userID).
		Order("song_likes.created_at DESC")

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&songModels).Error; err != nil {
		return nil, err
	}

	songs := make([]*entity.Song, len(songModels))
	for i := range songModels {
		songs[i] = ToSongEntity(&songModels[i])
	}
	return songs, nil
}
