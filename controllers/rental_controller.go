package controllers

import (
	"net/http"

	"diveshop-backend/config"
	"diveshop-backend/models"
	"diveshop-backend/services"
	"diveshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type RentalController struct {
	RentalSvc *services.RentalService
}

func NewRentalController(svc *services.RentalService) *RentalController {
	return &RentalController{RentalSvc: svc}
}

// GetEquipment lists the catalog with derived availability.
func (ctrl *RentalController) GetEquipment(c *gin.Context) {
	list, err := ctrl.RentalSvc.ListEquipment()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type EquipmentPayload struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	CanRent           bool    `json:"can_rent"`
	RentalPricePerDay float64 `json:"rental_price_per_day"`
	QuantityInStock   int     `json:"quantity_in_stock"`
}

func CreateEquipment(c *gin.Context) {
	var p EquipmentPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if p.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	eq := models.Equipment{
		Name:              p.Name,
		Category:          p.Category,
		Price:             p.Price,
		CanRent:           p.CanRent,
		RentalPricePerDay: p.RentalPricePerDay,
		QuantityInStock:   p.QuantityInStock,
	}
	if err := config.DB.Create(&eq).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	eq.QuantityAvailable = eq.QuantityInStock
	c.JSON(http.StatusCreated, eq)
}

func (ctrl *RentalController) GetRentals(c *gin.Context) {
	rentals, err := ctrl.RentalSvc.ListActive()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

func (ctrl *RentalController) CheckoutRental(c *gin.Context) {
	var input services.RentalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.EquipmentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "equipment_id is required")
		return
	}

	rental, err := ctrl.RentalSvc.Checkout(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

func (ctrl *RentalController) ReturnRental(c *gin.Context) {
	if err := ctrl.RentalSvc.Return(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONOK(c)
}
