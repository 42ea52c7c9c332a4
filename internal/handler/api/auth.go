package api

import (
	"net/http"

	reqdto "course-booking/internal/handler/dto/request"
	resdto "course-booking/internal/handler/dto/response"
	"course-booking/internal/handler/httperr"
	"course-booking/internal/handler/middleware"
	"course-booking/internal/pkg/config"
	"course-booking/internal/pkg/cookie"
	"course-booking/internal/usecase/commands"
	"course-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.AdminQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.AdminQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q, cookieCfg: cfg.Cookie}
}

// @Summary Admin login
// @Description Login with email and password; the token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	cookie.SetAdminToken(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		AdminID:     result.AdminID,
		Email:       result.Email,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
	})
}

// @Summary Admin logout
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; dropping the cookie is all there is
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} readmodel.AdminRM
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Unauthorized", nil)
		return
	}

	adm, err := h.q.GetCurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, adm)
}
