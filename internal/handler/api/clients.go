package api

import (
	"net/http"

	resdto "lesson-scheduler/internal/handler/dto/response"
	"lesson-scheduler/internal/handler/httperr"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientsHandler struct {
	trainerQueries queries.TrainerQueries
	clientQueries  queries.ClientQueries
	packageQueries queries.PackageQueries
}

func NewClientsHandler(
	trainerQueries queries.TrainerQueries,
	clientQueries queries.ClientQueries,
	packageQueries queries.PackageQueries,
) *ClientsHandler {
	return &ClientsHandler{
		trainerQueries: trainerQueries,
		clientQueries:  clientQueries,
		packageQueries: packageQueries,
	}
}

// @Summary List trainers
// @Description List active trainers
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TrainerResponse
// @Router /trainers [get]
func (h *ClientsHandler) ListTrainers(c *gin.Context) {
	views, err := h.trainerQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to fetch trainers", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTrainerViews(views))
}

// @Summary List a trainer's clients
// @Description List clients assigned to a trainer
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Success 200 {array} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Router /trainers/{id}/clients [get]
func (h *ClientsHandler) ListTrainerClients(c *gin.Context) {
	trainerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid trainer ID", nil)
		return
	}

	views, err := h.clientQueries.ListByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to fetch clients", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientViews(views))
}

// @Summary List a client's lesson packages
// @Description List lesson packages purchased by a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {array} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Router /clients/{id}/packages [get]
func (h *ClientsHandler) ListClientPackages(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid client ID", nil)
		return
	}

	views, err := h.packageQueries.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to fetch packages", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageViews(views))
}
