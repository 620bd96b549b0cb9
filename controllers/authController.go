package controllers

import (
	"VidaClinic/handlers"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	handler *handlers.AuthHandler
}

func NewAuthController(handler *handlers.AuthHandler) *AuthController {
	return &AuthController{handler: handler}
}

func (c *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth/login", c.handler.Login)
	router.POST("/auth/logout", c.handler.Logout)
	router.POST("/auth/password-reset", c.handler.RequestPasswordReset)
	router.POST("/auth/password-reset/confirm", c.handler.ConfirmPasswordReset)
}
