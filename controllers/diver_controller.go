package controllers

import (
	"errors"
	"net/http"
	"time"

	"diveshop-backend/config"
	"diveshop-backend/models"
	"diveshop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiverPayload struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	CertificationLevel string `json:"certification_level"`
	MedicalCleared     bool   `json:"medical_cleared"`
}

// GetDivers lists all divers, name ascending (dropdown order).
func GetDivers(c *gin.Context) {
	var divers []models.Diver
	if err := config.DB.Order("name ASC").Find(&divers).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, divers)
}

func GetDiverByID(c *gin.Context) {
	var diver models.Diver
	err := config.DB.First(&diver, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Diver not found")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, diver)
}

func CreateDiver(c *gin.Context) {
	var p DiverPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if p.Name == "" || p.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and email are required")
		return
	}

	diver := models.Diver{
		Name:               p.Name,
		Email:              p.Email,
		Phone:              p.Phone,
		CertificationLevel: p.CertificationLevel,
		MedicalCleared:     p.MedicalCleared,
	}
	if err := config.DB.Create(&diver).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, diver)
}

func updateDiver(c *gin.Context, id string, p DiverPayload) {
	if p.Name == "" || p.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and email are required")
		return
	}

	res := config.DB.Model(&models.Diver{}).Where("id = ?", id).
		Select("name", "email", "phone", "certification_level", "medical_cleared").
		Updates(map[string]interface{}{
			"name":                p.Name,
			"email":               p.Email,
			"phone":               p.Phone,
			"certification_level": p.CertificationLevel,
			"medical_cleared":     p.MedicalCleared,
		})
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Diver not found")
		return
	}

	var diver models.Diver
	if err := config.DB.First(&diver, "id = ?", id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, diver)
}

func UpdateDiver(c *gin.Context) {
	var p DiverPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	updateDiver(c, c.Param("id"), p)
}

// UpdateDiverByBody handles PUT /api/divers with the id carried in the body.
func UpdateDiverByBody(c *gin.Context) {
	var p DiverPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if p.ID == "" {
		utils.JSONError(c, http.StatusBadRequest, "id is required")
		return
	}
	updateDiver(c, p.ID, p)
}

// DeleteDiver removes the diver row only; bookings and group memberships are
// not cascaded.
func DeleteDiver(c *gin.Context) {
	if err := config.DB.Where("id = ?", c.Param("id")).Delete(&models.Diver{}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOK(c)
}

// CompleteOnboarding flips the onboarding flag and stamps the date.
func CompleteOnboarding(c *gin.Context) {
	id := c.Param("id")
	now := time.Now().UTC()

	res := config.DB.Model(&models.Diver{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"onboarding_completed": true,
			"onboarding_date":      now,
		})
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Diver not found")
		return
	}

	var diver models.Diver
	if err := config.DB.First(&diver, "id = ?", id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, diver)
}
