package http

import (
	"net/http"

	"songhub/internal/entity"
	"songhub/internal/usecase"
	"songhub/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type SignupUserRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=80"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,min=7,max=20"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type SignupCreatorRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func conflictMessage(msg string) bool {
	switch msg {
	case "email already registered", "username already taken", "name already taken", "phone number already registered":
		return true
	}
	return false
}

// SignupUser godoc
// @Summary      Register an end-user account
// @Description  Create a listener account that can like songs and build playlists
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupUserRequest true "Signup data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /signup_user [post]
func (h *AuthHandler) SignupUser(c *gin.Context) {
	var req SignupUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authUseCase.SignupEndUser(req.Username, req.Email, req.Phone, req.Password, req.ConfirmPassword)
	if err != nil {
		if err.Error() == "passwords do not match" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if conflictMessage(err.Error()) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// SignupCreator godoc
// @Summary      Register a creator account
// @Description  Create an account that uploads and owns songs
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupCreatorRequest true "Signup data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /signup_creator [post]
func (h *AuthHandler) SignupCreator(c *gin.Context) {
	var req SignupCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator, token, err := h.authUseCase.SignupCreator(req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		if err.Error() == "passwords do not match" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if conflictMessage(err.Error()) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "creator": creator})
}

// LoginUser godoc
// @Summary      Log in as an end-user
// @Description  Authenticate by email or username and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /login_user [post]
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authUseCase.LoginEndUser(req.Identifier, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// LoginCreator godoc
// @Summary      Log in as a creator
// @Description  Authenticate by email or creator name and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /login_creator [post]
func (h *AuthHandler) LoginCreator(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator, token, err := h.authUseCase.LoginCreator(req.Identifier, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "creator": creator})
}

// LoginAdmin handles the seeded administrator account.
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, token, err := h.authUseCase.LoginAdmin(req.Identifier, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}

// Me godoc
// @Summary      Get the authenticated account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	accountID := c.GetString(middleware.ContextAccountID)
	kind := c.GetString(middleware.ContextAccountKind)

	switch entity.AccountKind(kind) {
	case entity.KindCreator:
		creator, err := h.authUseCase.GetCreator(accountID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"kind": kind, "creator": creator})
	case entity.KindUser:
		user, err := h.authUseCase.GetEndUser(accountID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"kind": kind, "user": user})
	default:
		c.JSON(http.StatusOK, gin.H{"kind": kind, "account_id": accountID})
	}
}
