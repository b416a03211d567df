package persistent

import (
	"songhub/internal/entity"
	"songhub/internal/model"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Ensure(name string) (*entity.Genre, error)
	GetByName(name string) (*entity.Genre, error)
	List() ([]*entity.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Ensure(name string) (*entity.Genre, error) {
	var genreModel model.GenreModel
	err := r.db.Where("name = ?", name).First(&genreModel).Error
	if err == gorm.ErrRecordNotFound {
		genreModel = model.GenreModel{Name: name}
		if err := r.db.Create(&genreModel).Error; err != nil {
			return nil, err
		}
		return ToGenreEntity(&genreModel), nil
	}
	if err != nil {
		return nil, err
	}
	return ToGenreEntity(&genreModel), nil
}

func (r *genreRepository) GetByName(name string) (*entity.Genre, error) {
	var genreModel model.GenreModel
	if err := r.db.Where("name = ?", name).First(&genreModel).Error; err != nil {
		return nil, err
	}
	return ToGenreEntity(&genreModel), nil
}

func (r *genreRepository) List() ([]*entity.Genre, error) {
	var genreModels []model.GenreModel
	if err := r.db.Order("name ASC").Find(&genreModels).Error; err != nil {
		return nil, err
	}

	genres := make([]*entity.Genre, len(genreModels))
	for i := range genreModels {
		genres[i] = ToGenreEntity(&genreModels[i])
	}
	return genres, nil
}
