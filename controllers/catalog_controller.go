package controllers

import (
	"net/http"

	"diveshop-backend/config"
	"diveshop-backend/models"
	"diveshop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// Lookup catalogs: accommodations, instructors, boats, dive sites. Simple
// list/create handlers straight against the store, ordered by name.

func GetAccommodations(c *gin.Context) {
	var accs []models.Accommodation
	if err := config.DB.Order("name ASC").Find(&accs).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, accs)
}

type AccommodationPayload struct {
	Name          string  `json:"name"`
	PricePerNight float64 `json:"price_per_night"`
	Tier          string  `json:"tier"`
	Description   string  `json:"description"`
}

func CreateAccommodation(c *gin.Context) {
	var p AccommodationPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if p.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	acc := models.Accommodation{
		Name:          p.Name,
		PricePerNight: p.PricePerNight,
		Tier:          p.Tier,
		Description:   p.Description,
	}
	if err := config.DB.Create(&acc).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, acc)
}

func GetInstructors(c *gin.Context) {
	var instructors []models.Instructor
	if err := config.DB.Order("name ASC").Find(&instructors).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, instructors)
}

func CreateInstructor(c *gin.Context) {
	var instructor models.Instructor
	if err := c.ShouldBindJSON(&instructor); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if instructor.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	if err := config.DB.Create(&instructor).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, instructor)
}

func GetBoats(c *gin.Context) {
	var boats []models.Boat
	if err := config.DB.Order("name ASC").Find(&boats).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, boats)
}

func CreateBoat(c *gin.Context) {
	var boat models.Boat
	if err := c.ShouldBindJSON(&boat); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if boat.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	if err := config.DB.Create(&boat).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, boat)
}

func GetDiveSites(c *gin.Context) {
	var sites []models.DiveSite
	if err := config.DB.Order("name ASC").Find(&sites).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, sites)
}

type DiveSitePayload struct {
	Name              string         `json:"name"`
	Location          string         `json:"location"`
	MaxDepth          *float64       `json:"max_depth"`
	Difficulty        string         `json:"difficulty"`
	Description       string         `json:"description"`
	EmergencyContacts datatypes.JSON `json:"emergency_contacts"`
	NearestHospital   string         `json:"nearest_hospital"`
	DanInfo           string         `json:"dan_info"`
}

func CreateDiveSite(c *gin.Context) {
	var p DiveSitePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if p.Name == "" || p.Location == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and location are required")
		return
	}

	site := models.DiveSite{
		Name:              p.Name,
		Location:          p.Location,
		MaxDepth:          p.MaxDepth,
		Difficulty:        p.Difficulty,
		Description:       p.Description,
		EmergencyContacts: p.EmergencyContacts,
		NearestHospital:   p.NearestHospital,
		DanInfo:           p.DanInfo,
	}
	if err := config.DB.Create(&site).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, site)
}

func DeleteDiveSite(c *gin.Context) {
	if err := config.DB.Where("id = ?", c.Param("id")).Delete(&models.DiveSite{}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOK(c)
}
