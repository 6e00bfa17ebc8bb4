package controllers

import (
	"net/http"

	"diveshop-backend/models"
	"diveshop-backend/services"
	"diveshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// bookingResponse keeps the wire shape the UI expects: top-level booking
// columns plus nested divers/courses/accommodations summaries.
func bookingResponse(b models.Booking) gin.H {
	resp := gin.H{
		"id":               b.ID,
		"diver_id":         b.DiverID,
		"course_id":        b.CourseID,
		"group_id":         b.GroupID,
		"accommodation_id": b.AccommodationID,
		"check_in":         b.CheckIn,
		"check_out":        b.CheckOut,
		"total_amount":     b.TotalAmount,
		"nights":           b.Nights,
		"invoice_number":   b.InvoiceNumber,
		"payment_status":   b.PaymentStatus,
		"notes":            b.Notes,
		"created_at":       b.CreatedAt,
		"updated_at":       b.UpdatedAt,
		"divers":           gin.H{"name": b.Diver.Name},
		"courses":          nil,
		"accommodations":   nil,
	}
	if b.Course != nil {
		resp["courses"] = gin.H{"name": b.Course.Name, "price": b.Course.Price}
	}
	if b.Accommodation != nil {
		resp["accommodations"] = gin.H{
			"name":            b.Accommodation.Name,
			"price_per_night": b.Accommodation.PricePerNight,
			"tier":            b.Accommodation.Tier,
		}
	}
	return resp
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListBookings()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := make([]gin.H, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, bookingResponse(b))
	}
	c.JSON(http.StatusOK, result)
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	booking, err := ctrl.BookingSvc.GetBooking(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponse(booking))
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.DiverID == "" {
		utils.JSONError(c, http.StatusBadRequest, "diver_id is required")
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookingResponse(booking))
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.DiverID == "" {
		utils.JSONError(c, http.StatusBadRequest, "diver_id is required")
		return
	}

	booking, err := ctrl.BookingSvc.UpdateBooking(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponse(booking))
}

type PatchBookingPayload struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

func (ctrl *BookingController) PatchBooking(c *gin.Context) {
	var p PatchBookingPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "payment_status is required")
		return
	}

	booking, err := ctrl.BookingSvc.SetPaymentStatus(c.Param("id"), p.PaymentStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingResponse(booking))
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	if err := ctrl.BookingSvc.DeleteBooking(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONOK(c)
}

func (ctrl *BookingController) Stats(c *gin.Context) {
	stats, err := ctrl.BookingSvc.StatsLast30Days()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetInvoice renders the invoice inline for the browser print dialog.
func (ctrl *BookingController) GetInvoice(c *gin.Context) {
	booking, err := ctrl.BookingSvc.GetBooking(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	html, err := utils.RenderInvoiceHTML(ctrl.BookingSvc.InvoiceDataFor(booking))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

type SaveInvoicePayload struct {
	Email bool `json:"email"`
}

// SaveInvoice persists the invoice document and optionally emails it to the
// diver. Email failure is reported but does not undo the saved file.
func (ctrl *BookingController) SaveInvoice(c *gin.Context) {
	booking, err := ctrl.BookingSvc.GetBooking(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var p SaveInvoicePayload
	_ = c.ShouldBindJSON(&p)

	data := ctrl.BookingSvc.InvoiceDataFor(booking)
	path, err := utils.SaveInvoiceFile(data)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := gin.H{"ok": true, "path": path, "invoice_number": booking.InvoiceNumber}
	if p.Email {
		html, renderErr := utils.RenderInvoiceHTML(data)
		if renderErr == nil {
			renderErr = utils.SendInvoiceEmail(booking.Diver.Email, booking.Diver.Name, booking.InvoiceNumber, html)
		}
		if renderErr != nil {
			resp["email_error"] = renderErr.Error()
		} else {
			resp["emailed"] = true
		}
	}
	c.JSON(http.StatusOK, resp)
}
