package handlers

import (
	"net/http"

	"VidaClinic/domain"
	"VidaClinic/services"
	"VidaClinic/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.UserService
}

func NewAuthHandler(service *services.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	username, err := domain.NewUsername(req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := h.service.Authenticate(c.Request.Context(), username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.Identification.Value(), string(user.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)
	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          toUserResponse(user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

type resetRequestBody struct {
	Email string `json:"email"`
}

// RequestPasswordReset emails a short-lived reset code. The response does
// not reveal whether the email is registered.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req resetRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(c.Request.Context(), email.Value(), code); err != nil {
		respondError(c, err)
		return
	}
	if err := utils.SendResetCodeEmail(email.Value(), code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reset code sent if the email is registered"})
}

type resetConfirmBody struct {
	Email       string `json:"email"`
	ResetCode   string `json:"reset_code"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req resetConfirmBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	stored, err := utils.GetResetCode(c.Request.Context(), email.Value())
	if err != nil {
		respondError(c, err)
		return
	}
	if stored == nil || *stored != req.ResetCode {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid reset code"})
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), email, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	if err := utils.DeleteResetCode(c.Request.Context(), email.Value()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
