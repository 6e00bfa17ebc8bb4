package controllers

import (
	"net/http"

	"diveshop-backend/services"
	"diveshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	GroupSvc *services.GroupService
}

func NewGroupController(svc *services.GroupService) *GroupController {
	return &GroupController{GroupSvc: svc}
}

func (ctrl *GroupController) GetGroups(c *gin.Context) {
	groups, err := ctrl.GroupSvc.ListGroups()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (ctrl *GroupController) CreateGroup(c *gin.Context) {
	var input services.GroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	group, err := ctrl.GroupSvc.CreateGroup(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

type AddMemberPayload struct {
	DiverID string `json:"diver_id"`
	Role    string `json:"role"`
}

func (ctrl *GroupController) AddMember(c *gin.Context) {
	var p AddMemberPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if p.DiverID == "" {
		utils.JSONError(c, http.StatusBadRequest, "diver_id is required")
		return
	}

	member, err := ctrl.GroupSvc.AddMember(c.Param("groupId"), p.DiverID, p.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (ctrl *GroupController) RemoveMember(c *gin.Context) {
	if err := ctrl.GroupSvc.RemoveMember(c.Param("memberId")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONOK(c)
}

func (ctrl *GroupController) GetItinerary(c *gin.Context) {
	entries, err := ctrl.GroupSvc.GetItinerary(c.Param("groupId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

type ItineraryPayload struct {
	DayNumber  int     `json:"day_number"`
	DiveSiteID *string `json:"dive_site_id"`
	Notes      string  `json:"notes"`
}

func (ctrl *GroupController) SaveItinerary(c *gin.Context) {
	var p ItineraryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if p.DayNumber == 0 {
		utils.JSONError(c, http.StatusBadRequest, "day_number is required")
		return
	}

	entry, err := ctrl.GroupSvc.UpsertItinerary(c.Param("groupId"), p.DayNumber, p.DiveSiteID, p.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
