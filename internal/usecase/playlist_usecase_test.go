package usecase

import (
	"errors"
	"testing"

	"songhub/internal/entity"
	"songhub/internal/repo/persistent"
	"songhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlaylistRepository is a mock implementation of PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	if args.Error(0) == nil {
		playlist.ID = "pl-new"
	}
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(id string) (*entity.Playlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetByIDForUser(id, userID string) (*entity.Playlist, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetByUserID(userID string) ([]*entity.Playlist, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) AddSong(playlistID, songID string) error {
	args := m.Called(playlistID, songID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveSong(playlistID, songID string) error {
	args := m.Called(playlistID, songID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) HasSong(playlistID, songID string) (bool, error) {
	args := m.Called(playlistID, songID)
	return args.Bool(0), args.Error(1)
}

var _ persistent.PlaylistRepository = (*MockPlaylistRepository)(nil)

// MockSongRepository is a mock implementation of SongRepository
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(song *entity.Song) error {
	args := m.Called(song)
	return args.Error(0)
}

func (m *MockSongRepository) GetByID(id string) (*entity.Song, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

func (m *MockSongRepository) GetByIDForCreator(id, creatorID string) (*entity.Song, error) {
	args := m.Called(id, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

func (m *MockSongRepository) GetByCreatorID(creatorID string) ([]*entity.Song, error) {
	args := m.Called(creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Song), args.Error(1)
}

func (m *MockSongRepository) List(limit, offset int, genreID string) ([]*entity.Song, error) {
	args := m.Called(limit, offset, genreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Song), args.Error(1)
}

func (m *MockSongRepository) Update(song *entity.Song) error {
	args := m.Called(song)
	return args.Error(0)
}

func (m *MockSongRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSongRepository) SongExists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSongRepository) IncrementPlays(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSongRepository) CreateLike(userID, songID string) error {
	args := m.Called(userID, songID)
	return args.Error(0)
}

func (m *MockSongRepository) DeleteLike(userID, songID string) error {
	args := m.Called(userID, songID)
	return args.Error(0)
}

func (m *MockSongRepository) IsLiked(userID, songID string) (bool, error) {
	args := m.Called(userID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSongRepository) GetLikeCount(songID string) (int64, error) {
	args := m.Called(songID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSongRepository) SetLikeCount(songID string, count int64) error {
	args := m.Called(songID, count)
	return args.Error(0)
}

func (m *MockSongRepository) GetLikedSongs(userID string, limit, offset int) ([]*entity.Song, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Song), args.Error(1)
}

var _ persistent.SongRepository = (*MockSongRepository)(nil)

func newPlaylistUseCase(playlistRepo *MockPlaylistRepository, songRepo *MockSongRepository) PlaylistUseCase {
	return NewPlaylistUseCase(playlistRepo, songRepo, logger.New())
}

func TestCreatePlaylist_Success(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := newPlaylistUseCase(playlistRepo, songRepo)

	playlistRepo.On("Create", mock.AnythingOfType("*entity.Playlist")).Return(nil)

	playlist, err := uc.CreatePlaylist("user-123", "Chill", "evening tracks")

	assert.NoError(t, err)
	assert.Equal(t, "user-123", playlist.UserID)
	assert.Equal(t, "Chill", playlist.Name)

	playlistRepo.AssertExpectations(t)
}

func TestGetPlaylist_NotOwned(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := newPlaylistUseCase(playlistRepo, songRepo)

	playlistRepo.On("GetByIDForUser", "pl-1", "user-other").Return(nil, errors.New("record not found"))

	playlist, err := uc.GetPlaylist("pl-1", "user-other")

	assert.Nil(t, playlist)
	// not-owned and nonexistent playlists look the same
	assert.EqualError(t, err, "playlist not found")
}

func TestAddSong_Success(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := newPlaylistUseCase(playlistRepo, songRepo)

	playlistRepo.On("GetByIDForUser", "pl-1", "user-123").Return(&entity.Playlist{ID: "pl-1"}, nil)
	songRepo.On("SongExists", "song-1").Return(true, nil)
	playlistRepo.On("HasSong", "pl-1", "song-1").Return(false, nil)
	playlistRepo.On("AddSong", "pl-1", "song-1").Return(nil)

	err := uc.AddSong("pl-1", "user-123", "song-1")

	assert.NoError(t, err)
	playlistRepo.AssertExpectations(t)
	songRepo.AssertExpectations(t)
}

func TestAddSong_Duplicate(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := newPlaylistUseCase(playlistRepo, songRepo)

	playlistRepo.On("GetByIDForUser", "pl-1", "user-123").Return(&entity.Playlist{ID: "pl-1"}, nil)
	songRepo.On("SongExists", "song-1").Return(true, nil)
	playlistRepo.On("HasSong", "pl-1", "song-1").Return(true, nil)

	err := uc.AddSong("pl-1", "user-123", "song-1")

	assert.EqualError(t, err, "song already in playlist")
	playlistRepo.AssertNotCalled(t, "AddSong")
}

func TestAddSong_SongMissing(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := newPlaylistUseCase(playlistRepo, songRepo)

	playlistRepo.On("GetByIDForUser", "pl-1", "user-123").Return(&entity.Playlist{ID: "pl-1"}, nil)
	songRepo.On("SongExists", "missing").Return(false, nil)

	err := uc.AddSong("pl-1", "user-123", "missing")

	assert.EqualError(t, err, "song not found")
}

func TestRemoveSong_NotInPlaylist(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := newPlaylistUseCase(playlistRepo, songRepo)

	playlistRepo.On("GetByIDForUser", "pl-1", "user-123").Return(&entity.Playlist{ID: "pl-1"}, nil)
	playlistRepo.On("HasSong", "pl-1", "song-1").Return(false, nil)

	err := uc.RemoveSong("pl-1", "user-123", "song-1")

	assert.EqualError(t, err, "song not in playlist")
	playlistRepo.AssertNotCalled(t, "RemoveSong")
}

func TestDeletePlaylist_Success(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := newPlaylistUseCase(playlistRepo, songRepo)

	playlistRepo.On("GetByIDForUser", "pl-1", "user-123").Return(&entity.Playlist{ID: "pl-1"}, nil)
	playlistRepo.On("Delete", "pl-1").Return(nil)

	err := uc.DeletePlaylist("pl-1", "user-123")

	assert.NoError(t, err)
	playlistRepo.AssertExpectations(t)
}
