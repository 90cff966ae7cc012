package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
	"github.com/vodninamlyn/wedding-rsvp/internal/service"
	"github.com/vodninamlyn/wedding-rsvp/internal/validation"
)

type RsvpHandler struct {
	rsvpService service.RsvpService
}

func NewRsvpHandler(rsvpService service.RsvpService) *RsvpHandler {
	return &RsvpHandler{rsvpService: rsvpService}
}

// SubmitRsvp handles the public form. Field-level validation problems come
// back as a 422 with a field -> message map; remote failures surface as the
// composed banner message and are logged upstream.
func (h *RsvpHandler) SubmitRsvp(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.rsvpService.Submit(c.Request.Context(), &req)
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErr.Fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Chyba při odesílání RSVP: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetCatalog serves the label maps and select options the form renders from.
func (h *RsvpHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"labels": gin.H{
			"attending":     entity.AttendingLabels,
			"accommodation": entity.AccommodationLabels,
			"drink":         entity.DrinkLabels,
		},
		"options": gin.H{
			"attending":     entity.AttendingOptions,
			"accommodation": entity.AccommodationOptions,
			"drink":         entity.DrinkOptions,
		},
	})
}

func (h *RsvpHandler) GetWeddingInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.rsvpService.WeddingInfo())
}

func (h *RsvpHandler) GetCountdown(c *gin.Context) {
	c.JSON(http.StatusOK, h.rsvpService.Countdown(time.Now()))
}
