//go:build e2e

package authtest

import (
	"net/http"
	"testing"

	"course-booking/internal/handler/dto/request"
	"course-booking/internal/pkg/cookie"
	"course-booking/tests/common/dbtest"
	"course-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin returns the admin token cookie set by a successful login.
func LoginAdmin(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, c, "admin token not found in cookies")
	require.NotEmpty(t, c.Value, "admin token cookie is empty")
	return c
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) *http.Cookie {
	t.Helper()
	dbtest.CreateTestAdmin(t, db, email, dbtest.DefaultPassword)
	return LoginAdmin(t, router, email, dbtest.DefaultPassword)
}
