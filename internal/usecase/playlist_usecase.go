package usecase

import (
	"fmt"

	"songhub/internal/entity"
	"songhub/internal/repo/persistent"
	"songhub/pkg/logger"
)

type PlaylistUseCase interface {
	CreatePlaylist(userID, name, description string) (*entity.Playlist, error)
	GetPlaylists(userID string) ([]*entity.Playlist, error)
	GetPlaylist(playlistID, userID string) (*entity.Playlist, error)
	DeletePlaylist(playlistID, userID string) error
	AddSong(playlistID, userID, songID string) error
	RemoveSong(playlistID, userID, songID string) error
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	songRepo     persistent.SongRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	songRepo persistent.SongRepository,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		songRepo:     songRepo,
		logger:       logger,
	}
}

func (uc *playlistUseCase) CreatePlaylist(userID, name, description string) (*entity.Playlist, error) {
	playlist := &entity.Playlist{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := uc.playlistRepo.Create(playlist); err != nil {
		uc.logger.Error("Failed to create playlist: %v", err)
		return nil, fmt.Errorf("failed to create playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) GetPlaylists(userID string) ([]*entity.Playlist, error) {
	playlists, err := uc.playlistRepo.GetByUserID(userID)
	if err != nil {
		uc.logger.Error("Failed to list playlists for %s: %v", userID, err)
		return nil, fmt.Errorf("failed to list playlists")
	}
	return playlists, nil
}

func (uc *playlistUseCase) GetPlaylist(playlistID, userID string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByIDForUser(playlistID, userID)
	if err != nil {
		return nil, fmt.Errorf("playlist not found")
	}
	return playlist, nil
}

func (uc *playlistUseCase) DeletePlaylist(playlistID, userID string) error {
	if _, err := uc.playlistRepo.GetByIDForUser(playlistID, userID); err != nil {
		return fmt.Errorf("playlist not found")
	}
	if err := uc.playlistRepo.Delete(playlistID); err != nil {
		uc.logger.Error("Failed to delete playlist %s: %v", playlistID, err)
		return fmt.Errorf("failed to delete playlist")
	}
	return nil
}

func (uc *playlistUseCase) AddSong(playlistID, userID, songID string) error {
	if _, err := uc.playlistRepo.GetByIDForUser(playlistID, userID); err != nil {
		return fmt.Errorf("playlist not found")
	}

	exists, err := uc.songRepo.SongExists(songID)
	if err != nil || !exists {
		return fmt.Errorf("song not found")
	}

	present, err := uc.playlistRepo.HasSong(playlistID, songID)
	if err != nil {
		uc.logger.Error("Failed to check playlist membership: %v", err)
		return fmt.Errorf("failed to add song to playlist")
	}
	if present {
		return fmt.Errorf("song already in playlist")
	}

	if err := uc.playlistRepo.AddSong(playlistID, songID); err != nil {
		uc.logger.Error("Failed to add song %s to playlist %s: %v", songID, playlistID, err)
		return fmt.Errorf("failed to add song to playlist")
	}
	return nil
}

func (uc *playlistUseCase) RemoveSong(playlistID, userID, songID string) error {
	if _, err := uc.playlistRepo.GetByIDForUser(playlistID, userID); err != nil {
		return fmt.Errorf("playlist not found")
	}

	present, err := uc.playlistRepo.HasSong(playlistID, songID)
	if err != nil || !present {
		return fmt.Errorf("song not in playlist")
	}

	if err := uc.playlistRepo.RemoveSong(playlistID, songID); err != nil {
		uc.logger.Error("Failed to remove song %s from playlist %s: %v", songID, playlistID, err)
		return fmt.Errorf("failed to remove song from playlist")
	}
	return nil
}
