package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"songhub/internal/entity"
	"songhub/internal/usecase"
	"songhub/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlaylistUseCase is a mock implementation of PlaylistUseCase
type MockPlaylistUseCase struct {
	mock.Mock
}

func (m *MockPlaylistUseCase) CreatePlaylist(userID, name, description string) (*entity.Playlist, error) {
	args := m.Called(userID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) GetPlaylists(userID string) ([]*entity.Playlist, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) GetPlaylist(playlistID, userID string) (*entity.Playlist, error) {
	args := m.Called(playlistID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) DeletePlaylist(playlistID, userID string) error {
	args := m.Called(playlistID, userID)
	return args.Error(0)
}

func (m *MockPlaylistUseCase) AddSong(playlistID, userID, songID string) error {
	args := m.Called(playlistID, userID, songID)
	return args.Error(0)
}

func (m *MockPlaylistUseCase) RemoveSong(playlistID, userID, songID string) error {
	args := m.Called(playlistID, userID, songID)
	return args.Error(0)
}

var _ usecase.PlaylistUseCase = (*MockPlaylistUseCase)(nil)

func playlistRouter(handler *PlaylistHandler, userID string) *gin.Engine {
	router := setupTestRouter()
	withUser := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(middleware.ContextAccountID, userID)
			next(c)
		}
	}
	router.POST("/playlists", withUser(handler.CreatePlaylist))
	router.GET("/playlists", withUser(handler.GetPlaylists))
	router.GET("/playlists/:id", withUser(handler.GetPlaylist))
	router.DELETE("/playlists/:id", withUser(handler.DeletePlaylist))
	router.POST("/playlists/:id/songs", withUser(handler.AddPlaylistSong))
	router.DELETE("/playlists/:id/songs/:songID", withUser(handler.RemovePlaylistSong))
	return router
}

func TestCreatePlaylist_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase)
	router := playlistRouter(handler, "user-123")

	mockPlaylist := &entity.Playlist{ID: "pl-1", UserID: "user-123", Name: "Chill"}
	mockUseCase.On("CreatePlaylist", "user-123", "Chill", "").Return(mockPlaylist, nil)

	body := `{"name":"Chill"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/playlists", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	playlist := response["playlist"].(map[string]interface{})
	assert.Equal(t, "Chill", playlist["name"])

	mockUseCase.AssertExpectations(t)
}

func TestCreatePlaylist_MissingName(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase)
	router := playlistRouter(handler, "user-123")

	body := `{"description":"no name"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/playlists", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreatePlaylist")
}

func TestGetPlaylist_NotOwned(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase)
	router := playlistRouter(handler, "user-123")

	mockUseCase.On("GetPlaylist", "pl-other", "user-123").Return(nil, errors.New("playlist not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/playlists/pl-other", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPlaylists_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase)
	router := playlistRouter(handler, "user-123")

	mockPlaylists := []*entity.Playlist{
		{ID: "pl-1", UserID: "user-123", Name: "Chill"},
		{ID: "pl-2", UserID: "user-123", Name: "Workout"},
	}
	mockUseCase.On("GetPlaylists", "user-123").Return(mockPlaylists, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/playlists", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 2, len(response["playlists"].([]interface{})))

	mockUseCase.AssertExpectations(t)
}

func TestAddPlaylistSong_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase)
	router := playlistRouter(handler, "user-123")

	mockUseCase.On("AddSong", "pl-1", "user-123", "song-1").Return(nil)

	body := `{"song_id":"song-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/playlists/pl-1/songs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddPlaylistSong_Duplicate(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase)
	router := playlistRouter(handler, "user-123")

	mockUseCase.On("AddSong", "pl-1", "user-123", "song-1").Return(errors.New("song already in playlist"))

	body := `{"song_id":"song-1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/playlists/pl-1/songs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddPlaylistSong_SongNotFound(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase)
	router := playlistRouter(handler, "user-123")

	mockUseCase.On("AddSong", "pl-1", "user-123", "missing").Return(errors.New("song not found"))

	body := `{"song_id":"missing"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/playlists/pl-1/songs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestRemovePlaylistSong_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase)
	router := playlistRouter(handler, "user-123")

	mockUseCase.On("RemoveSong", "pl-1", "user-123", "song-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/playlists/pl-1/songs/song-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePlaylist_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase)
	router := playlistRouter(handler, "user-123")

	mockUseCase.On("DeletePlaylist", "pl-1", "user-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/playlists/pl-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
