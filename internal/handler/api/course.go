package api

import (
	"net/http"

	reqdto "course-booking/internal/handler/dto/request"
	resdto "course-booking/internal/handler/dto/response"
	"course-booking/internal/handler/httperr"
	"course-booking/internal/usecase/commands"
	"course-booking/internal/usecase/queries"
	"course-booking/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourseHandler struct {
	cmds commands.CourseCommands
	q    queries.CourseQueries
}

func NewCourseHandler(cmds commands.CourseCommands, q queries.CourseQueries) *CourseHandler {
	return &CourseHandler{cmds: cmds, q: q}
}

// @Summary List active courses
// @Tags courses
// @Produce json
// @Success 200 {array} resdto.CourseResponse
// @Router /courses [get]
func (h *CourseHandler) ListActive(c *gin.Context) {
	rms, err := h.q.ListActiveCourses(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondList(c, rms)
}

// @Summary List all courses
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CourseResponse
// @Router /admin/courses [get]
func (h *CourseHandler) ListAll(c *gin.Context) {
	rms, err := h.q.ListCourses(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondList(c, rms)
}

// @Summary Get course with per-schedule availability
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} resdto.CourseDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course id", nil)
		return
	}
	rm, err := h.q.GetCourseAvailability(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCourseAvailabilityRM(rm)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create course
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCourseRequest true "Course"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 422 {object} httperr.Response
// @Router /admin/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req reqdto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateCourse(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update course
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Course ID"
// @Param request body reqdto.UpdateCourseRequest true "Fields to replace"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course id", nil)
		return
	}
	var req reqdto.UpdateCourseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.UpdateCourse(c.Request.Context(), id, req.ToPatch()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) respondList(c *gin.Context, rms []readmodel.CourseRM) {
	res, err := resdto.FromCourseRMs(rms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
