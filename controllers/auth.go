// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	BusinessName string `json:"businessName"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Duplicate emails are checked explicitly so the caller gets a message
	// instead of a constraint violation.
	var existing models.Trainer
	result := config.DB.Where("email = ?", input.Email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	trainer := models.Trainer{
		Name:         input.Name,
		Email:        input.Email,
		Password:     input.Password, // hashed in BeforeCreate hook
		BusinessName: input.BusinessName,
	}

	if err := config.DB.Create(&trainer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := utils.GenerateToken(trainer.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	setSessionCookie(c, token, utils.TokenMaxAge())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"trainer": gin.H{
			"id":           trainer.ID,
			"name":         trainer.Name,
			"email":        trainer.Email,
			"businessName": trainer.BusinessName,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var trainer models.Trainer
	result := config.DB.Where("email = ?", strings.TrimSpace(input.Email)).First(&trainer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, trainer.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(trainer.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	setSessionCookie(c, token, utils.TokenMaxAge())

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"trainer": gin.H{
			"id":           trainer.ID,
			"name":         trainer.Name,
			"email":        trainer.Email,
			"businessName": trainer.BusinessName,
		},
	})
}

func Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func Me(c *gin.Context) {
	trainerID, ok := utils.TrainerID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	var trainer models.Trainer
	if err := config.DB.First(&trainer, "id = ?", trainerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainer": trainer})
}
