package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
	"github.com/vodninamlyn/wedding-rsvp/internal/service"
	"github.com/vodninamlyn/wedding-rsvp/internal/transport/middleware"
	"github.com/vodninamlyn/wedding-rsvp/internal/validation"
)

type AdminHandler struct {
	adminService service.AdminService
	authService  service.AuthService
}

func NewAdminHandler(adminService service.AdminService, authService service.AuthService) *AdminHandler {
	return &AdminHandler{adminService: adminService, authService: authService}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Nesprávné přihlašovací údaje"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetSession answers the "is there a current session" question for the
// dashboard; the RequireSession middleware has already done the checking.
func (h *AdminHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.AdminUser(c)})
}

// Logout exists for interface completeness; sessions are stateless tokens
// the client discards.
func (h *AdminHandler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// adminRsvpRow is one dashboard table row: the raw submission plus the
// resolved display strings the table renders.
type adminRsvpRow struct {
	entity.RsvpSubmission
	AccommodationLabel string `json:"accommodationLabel"`
	DrinkLabel         string `json:"drinkLabel"`
	CreatedAtDisplay   string `json:"createdAtDisplay"`
}

func (h *AdminHandler) GetAllRsvps(c *gin.Context) {
	submissions, err := h.adminService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Chyba při načítání RSVP odpovědí: " + err.Error(),
		})
		return
	}

	rows := make([]adminRsvpRow, 0, len(submissions))
	for _, s := range submissions {
		rows = append(rows, adminRsvpRow{
			RsvpSubmission:     s,
			AccommodationLabel: entity.AccommodationLabel(s.Accommodation),
			DrinkLabel:         entity.DrinkLabel(s.DrinkChoice, s.CustomDrink),
			CreatedAtDisplay:   entity.FormatCreatedAt(s.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) UpdateAttendee(c *gin.Context) {
	attendeeID := c.Param("id")
	if _, err := uuid.Parse(attendeeID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attendee id"})
		return
	}

	var req service.UpdateAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.adminService.UpdateAttendee(c.Request.Context(), attendeeID, &req)
	if err != nil {
		var validationErr *validation.Error
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErr.Fields})
		case errors.Is(err, entity.ErrRsvpNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "rsvp not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Chyba při ukládání: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rsvp updated"})
}

// DeleteGroup deletes a whole submission group by its primary id. The
// confirm query parameter carries the interactive confirmation; without it
// no delete is issued.
func (h *AdminHandler) DeleteGroup(c *gin.Context) {
	primaryID := c.Param("id")
	if _, err := uuid.Parse(primaryID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rsvp id"})
		return
	}

	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	err := h.adminService.DeleteGroup(c.Request.Context(), primaryID, confirmed)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrConfirmationNeeded):
			c.JSON(http.StatusConflict, gin.H{"error": "Opravdu chcete smazat tuto RSVP odpověď? Potvrďte smazání."})
		case errors.Is(err, entity.ErrRsvpNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "rsvp not found"})
		case errors.Is(err, entity.ErrNotPrimary):
			c.JSON(http.StatusConflict, gin.H{"error": "rsvp is not a primary record"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Chyba při mazání RSVP: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rsvp group deleted"})
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Chyba při načítání statistik: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
