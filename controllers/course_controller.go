package controllers

import (
	"net/http"

	"diveshop-backend/config"
	"diveshop-backend/models"
	"diveshop-backend/services"
	"diveshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func courseResponse(course models.Course) gin.H {
	resp := gin.H{
		"id":            course.ID,
		"name":          course.Name,
		"price":         course.Price,
		"description":   course.Description,
		"duration_days": course.DurationDays,
		"start_date":    course.StartDate,
		"end_date":      course.EndDate,
		"max_students":  course.MaxStudents,
		"instructor_id": course.InstructorID,
		"instructors":   gin.H{"name": nil},
		"boat_id":       course.BoatID,
		"boats":         gin.H{"name": nil},
		"created_at":    course.CreatedAt,
	}
	if course.Instructor != nil {
		resp["instructors"] = gin.H{"name": course.Instructor.Name}
	}
	if course.Boat != nil {
		resp["boats"] = gin.H{"name": course.Boat.Name}
	}
	return resp
}

func GetCourses(c *gin.Context) {
	var courses []models.Course
	err := config.DB.
		Preload("Instructor").
		Preload("Boat").
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	result := make([]gin.H, 0, len(courses))
	for _, course := range courses {
		result = append(result, courseResponse(course))
	}
	c.JSON(http.StatusOK, result)
}

type CoursePayload struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays *int    `json:"duration_days"`
	Description  string  `json:"description"`
	InstructorID *string `json:"instructor_id"`
	BoatID       *string `json:"boat_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	MaxStudents  int     `json:"max_students"`
}

func CreateCourse(c *gin.Context) {
	var p CoursePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if p.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	startDate, err := services.ParseDate(p.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start_date")
		return
	}
	endDate, err := services.ParseDate(p.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end_date")
		return
	}

	course := models.Course{
		Name:         p.Name,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		Description:  p.Description,
		InstructorID: p.InstructorID,
		BoatID:       p.BoatID,
		StartDate:    startDate,
		EndDate:      endDate,
		MaxStudents:  p.MaxStudents,
	}
	if err := config.DB.Create(&course).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	// reload with relations for the nested names
	config.DB.Preload("Instructor").Preload("Boat").First(&course, "id = ?", course.ID)
	c.JSON(http.StatusCreated, courseResponse(course))
}

func DeleteCourse(c *gin.Context) {
	if err := config.DB.Where("id = ?", c.Param("id")).Delete(&models.Course{}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOK(c)
}
