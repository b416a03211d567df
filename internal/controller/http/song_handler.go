package http

import (
	"net/http"
	"strconv"

	"songhub/internal/usecase"
	"songhub/pkg/logger"
	"songhub/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type SongHandler struct {
	catalogUseCase     usecase.CatalogUseCase
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewSongHandler(
	catalogUseCase usecase.CatalogUseCase,
	interactionUseCase usecase.InteractionUseCase,
	logger *logger.Logger,
) *SongHandler {
	return &SongHandler{
		catalogUseCase:     catalogUseCase,
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type AddSongRequest struct {
	Title       string `form:"title" binding:"required,max=120"`
	Description string `form:"description"`
	Genre       string `form:"genre"`
}

// AddSong godoc
// @Summary      Upload a new song
// @Description  Create a song with optional audio and cover files. An unknown genre name stores the song untagged and reports a warning.
// @Tags         songs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Song title"
// @Param        description formData string false "Song description"
// @Param        genre formData string false "Genre name"
// @Param        audio formData file false "Audio file"
// @Param        cover formData file false "Cover image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /add_song [post]
func (h *SongHandler) AddSong(c *gin.Context) {
	creatorID := c.GetString(middleware.ContextAccountID)

	var req AddSongRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Both files are optional
	audioFile, _ := c.FormFile("audio")
	coverFile, _ := c.FormFile("cover")

	song, warnings, err := h.catalogUseCase.AddSong(creatorID, req.Title, req.Description, req.Genre, audioFile, coverFile)
	if err != nil {
		h.logger.Error("Failed to add song: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"song": song}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	c.JSON(http.StatusCreated, response)
}

// GetSongs godoc
// @Summary      List the logged-in creator's songs
// @Description  Returns the creator's songs with genre names and derived media URLs
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /get_songs [get]
func (h *SongHandler) GetSongs(c *gin.Context) {
	creatorID := c.GetString(middleware.ContextAccountID)

	songs, err := h.catalogUseCase.GetCreatorSongs(creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"songs": songs})
}

// CreatorDashboard godoc
// @Summary      Creator dashboard data
// @Description  The creator's song list plus the full genre list
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /creator_dashboard [get]
func (h *SongHandler) CreatorDashboard(c *gin.Context) {
	creatorID := c.GetString(middleware.ContextAccountID)

	songs, err := h.catalogUseCase.GetCreatorSongs(creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	genres, err := h.catalogUseCase.ListGenres()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list genres"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"songs": songs, "genres": genres})
}

type EditSongRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	Genre       *string `form:"genre"`
}

// EditSong godoc
// @Summary      Update a song
// @Description  Partial update of an owned song; absent fields are left unchanged. Replacing a file deletes the old object best-effort.
// @Tags         songs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Song ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /edit_song/{id} [post]
func (h *SongHandler) EditSong(c *gin.Context) {
	creatorID := c.GetString(middleware.ContextAccountID)
	songID := c.Param("id")

	var req EditSongRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audioFile, _ := c.FormFile("audio")
	coverFile, _ := c.FormFile("cover")

	song, warnings, err := h.catalogUseCase.UpdateSong(songID, creatorID, req.Title, req.Description, req.Genre, audioFile, coverFile)
	if err != nil {
		if err.Error() == "song not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"song": song}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	c.JSON(http.StatusOK, response)
}

// DeleteSong godoc
// @Summary      Delete a song
// @Description  Removes the song row, then deletes its stored files best-effort; cleanup failures are reported as warnings.
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Song ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /delete_song/{id} [delete]
func (h *SongHandler) DeleteSong(c *gin.Context) {
	creatorID := c.GetString(middleware.ContextAccountID)
	songID := c.Param("id")

	warnings, err := h.catalogUseCase.DeleteSong(songID, creatorID)
	if err != nil {
		if err.Error() == "song not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"message": "song deleted"}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	c.JSON(http.StatusOK, response)
}

// ListSongs godoc
// @Summary      Browse songs
// @Description  Public listing of uploaded songs, newest first, optionally filtered by genre name
// @Tags         songs
// @Produce      json
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Offset" default(0)
// @Param        genre query string false "Genre name filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /songs [get]
func (h *SongHandler) ListSongs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	genre := c.Query("genre")

	songs, err := h.catalogUseCase.ListSongs(limit, offset, genre)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"songs": songs})
}

// GetSong godoc
// @Summary      Get a single song
// @Tags         songs
// @Produce      json
// @Param        id path string true "Song ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /songs/{id} [get]
func (h *SongHandler) GetSong(c *gin.Context) {
	songID := c.Param("id")

	song, err := h.catalogUseCase.GetSong(songID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Song not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"song": song})
}

// LikeSong godoc
// @Summary      Toggle a like on a song
// @Description  Liking an already-liked song removes the like. A (user, song) pair holds at most one like.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Song ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /songs/{id}/like [post]
func (h *SongHandler) LikeSong(c *gin.Context) {
	userID := c.GetString(middleware.ContextAccountID)
	songID := c.Param("id")

	liked, count, err := h.interactionUseCase.LikeSong(userID, songID)
	if err != nil {
		if err.Error() == "song not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes": count})
}

// PlaySong godoc
// @Summary      Record a play
// @Tags         interactions
// @Produce      json
// @Param        id path string true "Song ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /songs/{id}/play [post]
func (h *SongHandler) PlaySong(c *gin.Context) {
	songID := c.Param("id")

	count, err := h.interactionUseCase.PlaySong(songID)
	if err != nil {
		if err.Error() == "song not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plays": count})
}

// GetLikedSongs godoc
// @Summary      List songs the logged-in user has liked
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /liked_songs [get]
func (h *SongHandler) GetLikedSongs(c *gin.Context) {
	userID := c.GetString(middleware.ContextAccountID)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	songs, err := h.interactionUseCase.GetLikedSongs(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list liked songs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"songs": songs})
}
