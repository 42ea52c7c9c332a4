package api

import (
	"net/http"

	reqdto "course-booking/internal/handler/dto/request"
	resdto "course-booking/internal/handler/dto/response"
	"course-booking/internal/handler/httperr"
	"course-booking/internal/usecase/commands"
	"course-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	cmds commands.CategoryCommands
	q    queries.CategoryQueries
}

func NewCategoryHandler(cmds commands.CategoryCommands, q queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{cmds: cmds, q: q}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} readmodel.CategoryRM
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.q.ListCategories(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary Create category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} resdto.CreatedResponse
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateCategory(c.Request.Context(), req.Name, req.Description, req.Order)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
