package database

import (
	"fmt"

	"songhub/internal/model"
	"songhub/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.AdminModel{},
		&model.CreatorModel{},
		&model.EndUserModel{},
		&model.RoleModel{},
		&model.RoleGrantModel{},
		&model.GenreModel{},
		&model.SongModel{},
		&model.SongLikeModel{},
		&model.PlaylistModel{},
		&model.PlaylistSongModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
