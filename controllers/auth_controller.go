package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/pkg/resp"
	"github.com/godz1llla/DAMDI-QR-ORG/services"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email and password are required")
		return
	}

	token, user, err := ac.Auth.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			resp.Unauthorized(c, "invalid email or password")
		case errors.Is(err, services.ErrRestaurantBlocked):
			resp.Forbidden(c, "restaurant is deactivated")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":            user.ID,
			"email":         user.Email,
			"role":          user.Role,
			"restaurant_id": user.RestaurantID,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
		},
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Auth.Profile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"user": gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"role":          user.Role,
		"restaurant_id": user.RestaurantID,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
	}})
}
