package api

import (
	"errors"
	"net/http"

	reqdto "lesson-scheduler/internal/handler/dto/request"
	resdto "lesson-scheduler/internal/handler/dto/response"
	"lesson-scheduler/internal/handler/httperr"
	"lesson-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	scheduleCommands commands.ScheduleCommands
}

func NewAvailabilityHandler(scheduleCommands commands.ScheduleCommands) *AvailabilityHandler {
	return &AvailabilityHandler{
		scheduleCommands: scheduleCommands,
	}
}

// @Summary Save a single availability slot
// @Description Normalize and persist one slot for a trainer's day
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveSlotRequest true "Slot request"
// @Success 201 {object} resdto.SlotSavedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability/slots [post]
func (h *AvailabilityHandler) SaveSlot(c *gin.Context) {
	var req reqdto.SaveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	slotID, err := h.scheduleCommands.SaveSingleSlot(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid slot", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SlotSavedResponse{SlotID: slotID})
}

// @Summary Apply a recurring availability rule
// @Description Validate the weekly pattern and queue it for slot expansion
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyRuleRequest true "Rule request"
// @Success 202 {object} resdto.RuleAcceptedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability/rules [post]
func (h *AvailabilityHandler) ApplyRule(c *gin.Context) {
	var req reqdto.ApplyRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	jobID, err := h.scheduleCommands.ApplyRecurringRule(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRule):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid rule", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.RuleAcceptedResponse{JobID: jobID})
}
