package api

import (
	"errors"
	"net/http"

	reqdto "lesson-scheduler/internal/handler/dto/request"
	resdto "lesson-scheduler/internal/handler/dto/response"
	"lesson-scheduler/internal/handler/httperr"
	"lesson-scheduler/internal/usecase/commands"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book a lesson
// @Description Book a lesson for a client against one of their packages
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookLessonRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) BookLesson(c *gin.Context) {
	var req reqdto.BookLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	view, err := h.bookingCommands.BookLesson(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrClientNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
		case errors.Is(err, commands.ErrPackageNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
		case errors.Is(err, commands.ErrNoPackageAvailable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No package available for the requested type", nil)
		case errors.Is(err, commands.ErrPackageExhausted):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Package has no lessons remaining", nil)
		case errors.Is(err, commands.ErrInvalidBooking):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", nil)
		case errors.Is(err, commands.ErrBookingInFlight):
			httperr.AbortWithError(c, http.StatusConflict, err, "A booking is already in progress for this client", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get a booking
// @Description Fetch a booked lesson by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
