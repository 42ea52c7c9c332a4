package api

import (
	"net/http"

	reqdto "course-booking/internal/handler/dto/request"
	"course-booking/internal/handler/httperr"
	"course-booking/internal/usecase/commands"
	"course-booking/internal/usecase/queries"
	"course-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type PrefillHandler struct {
	cmds commands.PrefillCommands
	q    queries.PrefillQueries
}

func NewPrefillHandler(cmds commands.PrefillCommands, q queries.PrefillQueries) *PrefillHandler {
	return &PrefillHandler{cmds: cmds, q: q}
}

// @Summary Recall the last applicant used by a client
// @Tags prefill
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} shared.Prefill
// @Failure 404 {object} httperr.Response
// @Router /prefill/{clientId} [get]
func (h *PrefillHandler) Get(c *gin.Context) {
	p, err := h.q.Recall(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Remember an applicant for a client
// @Tags prefill
// @Accept json
// @Param clientId path string true "Client ID"
// @Param request body reqdto.PrefillRequest true "Applicant"
// @Success 204 "No Content"
// @Router /prefill/{clientId} [put]
func (h *PrefillHandler) Put(c *gin.Context) {
	var req reqdto.PrefillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p := shared.Prefill{CompanyName: req.CompanyName, FullName: req.FullName}
	if err := h.cmds.Remember(c.Request.Context(), c.Param("clientId"), p); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
