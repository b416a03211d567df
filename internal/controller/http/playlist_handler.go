package http

import (
	"net/http"

	"songhub/internal/usecase"
	"songhub/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
	}
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description"`
}

type PlaylistSongRequest struct {
	SongID string `json:"song_id" binding:"required"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePlaylistRequest true "Playlist data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID := c.GetString(middleware.ContextAccountID)

	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.CreatePlaylist(userID, req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"playlist": playlist})
}

// GetPlaylists godoc
// @Summary      List the logged-in user's playlists
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /playlists [get]
func (h *PlaylistHandler) GetPlaylists(c *gin.Context) {
	userID := c.GetString(middleware.ContextAccountID)

	playlists, err := h.playlistUseCase.GetPlaylists(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlists": playlists})
}

// GetPlaylist godoc
// @Summary      Get a playlist with its songs
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	userID := c.GetString(middleware.ContextAccountID)
	playlistID := c.Param("id")

	playlist, err := h.playlistUseCase.GetPlaylist(playlistID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlist": playlist})
}

// DeletePlaylist godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID := c.GetString(middleware.ContextAccountID)
	playlistID := c.Param("id")

	if err := h.playlistUseCase.DeletePlaylist(playlistID, userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "playlist deleted"})
}

// AddPlaylistSong godoc
// @Summary      Add a song to a playlist
// @Description  Attaches an existing song; a song can appear at most once per playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body PlaylistSongRequest true "Song reference"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /playlists/{id}/songs [post]
func (h *PlaylistHandler) AddPlaylistSong(c *gin.Context) {
	userID := c.GetString(middleware.ContextAccountID)
	playlistID := c.Param("id")

	var req PlaylistSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.playlistUseCase.AddSong(playlistID, userID, req.SongID); err != nil {
		switch err.Error() {
		case "playlist not found", "song not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "song already in playlist":
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "song added to playlist"})
}

// RemovePlaylistSong godoc
// @Summary      Remove a song from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        songID path string true "Song ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id}/songs/{songID} [delete]
func (h *PlaylistHandler) RemovePlaylistSong(c *gin.Context) {
	userID := c.GetString(middleware.ContextAccountID)
	playlistID := c.Param("id")
	songID := c.Param("songID")

	if err := h.playlistUseCase.RemoveSong(playlistID, userID, songID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "song removed from playlist"})
}
