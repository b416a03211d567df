package http

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"songhub/internal/entity"
	"songhub/internal/usecase"
	"songhub/pkg/logger"
	"songhub/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) AddSong(creatorID, title, description, genreName string, audio, cover *multipart.FileHeader) (*entity.Song, []string, error) {
	args := m.Called(creatorID, title, description, genreName, audio, cover)
	if args.Get(0) == nil {
		return nil, toStrings(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*entity.Song), toStrings(args.Get(1)), args.Error(2)
}

func (m *MockCatalogUseCase) UpdateSong(songID, creatorID string, title, description, genreName *string, audio, cover *multipart.FileHeader) (*entity.Song, []string, error) {
	args := m.Called(songID, creatorID, title, description, genreName, audio, cover)
	if args.Get(0) == nil {
		return nil, toStrings(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*entity.Song), toStrings(args.Get(1)), args.Error(2)
}

func (m *MockCatalogUseCase) DeleteSong(songID, creatorID string) ([]string, error) {
	args := m.Called(songID, creatorID)
	return toStrings(args.Get(0)), args.Error(1)
}

func (m *MockCatalogUseCase) GetCreatorSongs(creatorID string) ([]*entity.Song, error) {
	args := m.Called(creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Song), args.Error(1)
}

func (m *MockCatalogUseCase) ListGenres() ([]*entity.Genre, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockCatalogUseCase) ListSongs(limit, offset int, genreName string) ([]*entity.Song, error) {
	args := m.Called(limit, offset, genreName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Song), args.Error(1)
}

func (m *MockCatalogUseCase) GetSong(id string) (*entity.Song, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

var _ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)

// MockInteractionUseCase is a mock implementation of InteractionUseCase
type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) LikeSong(userID, songID string) (bool, int64, error) {
	args := m.Called(userID, songID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionUseCase) IsLiked(userID, songID string) (bool, error) {
	args := m.Called(userID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionUseCase) GetLikeCount(songID string) (int64, error) {
	args := m.Called(songID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionUseCase) GetLikedSongs(userID string, limit, offset int) ([]*entity.Song, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Song), args.Error(1)
}

func (m *MockInteractionUseCase) PlaySong(songID string) (int64, error) {
	args := m.Called(songID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.InteractionUseCase = (*MockInteractionUseCase)(nil)

func toStrings(v interface{}) []string {
	if v == nil {
		return nil
	}
	return v.([]string)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newSongHandler() (*SongHandler, *MockCatalogUseCase, *MockInteractionUseCase) {
	mockCatalog := new(MockCatalogUseCase)
	mockInteraction := new(MockInteractionUseCase)
	handler := NewSongHandler(mockCatalog, mockInteraction, logger.New())
	return handler, mockCatalog, mockInteraction
}

func TestLikeSong_Like(t *testing.T) {
	handler, _, mockInteraction := newSongHandler()

	router := setupTestRouter()
	router.POST("/songs/:id/like", func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, "user-123")
		handler.LikeSong(c)
	})

	mockInteraction.On("LikeSong", "user-123", "song-123").Return(true, int64(6), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/songs/song-123/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["liked"])
	assert.Equal(t, float64(6), response["likes"])

	mockInteraction.AssertExpectations(t)
}

func TestLikeSong_Unlike(t *testing.T) {
	handler, _, mockInteraction := newSongHandler()

	router := setupTestRouter()
	router.POST("/songs/:id/like", func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, "user-123")
		handler.LikeSong(c)
	})

	mockInteraction.On("LikeSong", "user-123", "song-123").Return(false, int64(5), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/songs/song-123/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["liked"])

	mockInteraction.AssertExpectations(t)
}

func TestLikeSong_SongNotFound(t *testing.T) {
	handler, _, mockInteraction := newSongHandler()

	router := setupTestRouter()
	router.POST("/songs/:id/like", handler.LikeSong)

	mockInteraction.On("LikeSong", "", "missing").Return(false, int64(0), errors.New("song not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/songs/missing/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockInteraction.AssertExpectations(t)
}

func TestPlaySong_Success(t *testing.T) {
	handler, _, mockInteraction := newSongHandler()

	router := setupTestRouter()
	router.POST("/songs/:id/play", handler.PlaySong)

	mockInteraction.On("PlaySong", "song-123").Return(int64(42), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/songs/song-123/play", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(42), response["plays"])

	mockInteraction.AssertExpectations(t)
}

func TestDeleteSong_NotFound(t *testing.T) {
	handler, mockCatalog, _ := newSongHandler()

	router := setupTestRouter()
	router.DELETE("/delete_song/:id", func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, "creator-123")
		handler.DeleteSong(c)
	})

	mockCatalog.On("DeleteSong", "missing", "creator-123").Return(nil, errors.New("song not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/delete_song/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockCatalog.AssertExpectations(t)
}

func TestDeleteSong_WithCleanupWarning(t *testing.T) {
	handler, mockCatalog, _ := newSongHandler()

	router := setupTestRouter()
	router.DELETE("/delete_song/:id", func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, "creator-123")
		handler.DeleteSong(c)
	})

	warnings := []string{"failed to delete stored file audio/1_track.mp3"}
	mockCatalog.On("DeleteSong", "song-123", "creator-123").Return(warnings, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/delete_song/song-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "song deleted", response["message"])
	got := response["warnings"].([]interface{})
	assert.Equal(t, 1, len(got))

	mockCatalog.AssertExpectations(t)
}

func TestGetSongs_Success(t *testing.T) {
	handler, mockCatalog, _ := newSongHandler()

	router := setupTestRouter()
	router.GET("/get_songs", func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, "creator-123")
		handler.GetSongs(c)
	})

	mockSongs := []*entity.Song{
		{ID: "song-1", CreatorID: "creator-123", Title: "T1", GenreName: "Pop", AudioURL: "https://bucket.s3.us-east-1.amazonaws.com/audio/1_t1.mp3"},
		{ID: "song-2", CreatorID: "creator-123", Title: "T2"},
	}
	mockCatalog.On("GetCreatorSongs", "creator-123").Return(mockSongs, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/get_songs", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	songs := response["songs"].([]interface{})
	assert.Equal(t, 2, len(songs))
	first := songs[0].(map[string]interface{})
	assert.Equal(t, "T1", first["title"])
	assert.Equal(t, "Pop", first["genre"])
	assert.NotEmpty(t, first["audio_url"])

	mockCatalog.AssertExpectations(t)
}

func TestCreatorDashboard_Success(t *testing.T) {
	handler, mockCatalog, _ := newSongHandler()

	router := setupTestRouter()
	router.GET("/creator_dashboard", func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, "creator-123")
		handler.CreatorDashboard(c)
	})

	mockCatalog.On("GetCreatorSongs", "creator-123").Return([]*entity.Song{{ID: "song-1", Title: "T1"}}, nil)
	mockCatalog.On("ListGenres").Return([]*entity.Genre{{ID: "g-1", Name: "Pop"}, {ID: "g-2", Name: "Rock"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/creator_dashboard", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 1, len(response["songs"].([]interface{})))
	assert.Equal(t, 2, len(response["genres"].([]interface{})))

	mockCatalog.AssertExpectations(t)
}

func TestListSongs_DefaultPaging(t *testing.T) {
	handler, mockCatalog, _ := newSongHandler()

	router := setupTestRouter()
	router.GET("/songs", handler.ListSongs)

	mockCatalog.On("ListSongs", 20, 0, "").Return([]*entity.Song{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/songs", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCatalog.AssertExpectations(t)
}

func TestListSongs_GenreFilter(t *testing.T) {
	handler, mockCatalog, _ := newSongHandler()

	router := setupTestRouter()
	router.GET("/songs", handler.ListSongs)

	mockCatalog.On("ListSongs", 5, 10, "Jazz").Return([]*entity.Song{{ID: "song-1", GenreName: "Jazz"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/songs?limit=5&offset=10&genre=Jazz", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCatalog.AssertExpectations(t)
}

func TestGetSong_NotFound(t *testing.T) {
	handler, mockCatalog, _ := newSongHandler()

	router := setupTestRouter()
	router.GET("/songs/:id", handler.GetSong)

	mockCatalog.On("GetSong", "missing").Return(nil, errors.New("song not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/songs/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockCatalog.AssertExpectations(t)
}

func TestGetLikedSongs_Success(t *testing.T) {
	handler, _, mockInteraction := newSongHandler()

	router := setupTestRouter()
	router.GET("/liked_songs", func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, "user-123")
		handler.GetLikedSongs(c)
	})

	mockInteraction.On("GetLikedSongs", "user-123", 20, 0).Return([]*entity.Song{{ID: "song-1", Title: "T1"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/liked_songs", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 1, len(response["songs"].([]interface{})))

	mockInteraction.AssertExpectations(t)
}

func TestNewSongHandler(t *testing.T) {
	handler, _, _ := newSongHandler()
	assert.NotNil(t, handler)
}
