package controllers

import (
	"net/http"

	"diveshop-backend/services"
	"diveshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type WaiverController struct {
	WaiverSvc *services.WaiverService
}

func NewWaiverController(svc *services.WaiverService) *WaiverController {
	return &WaiverController{WaiverSvc: svc}
}

func (ctrl *WaiverController) GetWaivers(c *gin.Context) {
	waivers, err := ctrl.WaiverSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, waivers)
}

// GetWaiverByDiver returns the diver's waiver, or JSON null when none exists
// yet (the UI treats that as "not signed").
func (ctrl *WaiverController) GetWaiverByDiver(c *gin.Context) {
	waiver, err := ctrl.WaiverSvc.GetByDiver(c.Param("diver_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, waiver)
}

func (ctrl *WaiverController) SaveWaiver(c *gin.Context) {
	var input services.WaiverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.DiverID == "" {
		utils.JSONError(c, http.StatusBadRequest, "diver_id is required")
		return
	}

	waiver, err := ctrl.WaiverSvc.Upsert(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, waiver)
}
