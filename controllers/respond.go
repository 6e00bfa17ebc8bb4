package controllers

import (
	"net/http"
	"strings"

	"diveshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// "validation: <msg>" -> 400 with <msg>, "*_not_found" -> 404, anything else
// -> 500 with the driver message.
func respondServiceError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "validation: "):
		utils.JSONError(c, http.StatusBadRequest, strings.TrimPrefix(msg, "validation: "))
	case strings.HasSuffix(msg, "_not_found"):
		utils.JSONError(c, http.StatusNotFound, notFoundMessage(msg))
	default:
		utils.JSONError(c, http.StatusInternalServerError, msg)
	}
}

func notFoundMessage(sentinel string) string {
	switch sentinel {
	case "booking_not_found":
		return "Booking not found"
	case "rental_not_found":
		return "Rental not found"
	default:
		return "Not found"
	}
}
