//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"course-booking/internal/handler/dto/request"
	resdto "course-booking/internal/handler/dto/response"
	"course-booking/internal/pkg/cookie"
	"course-booking/tests/common/authtest"
	"course-booking/tests/common/dbtest"
	"course-booking/tests/common/httptest"
	"course-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用管理者を作成
	dbtest.CreateTestAdmin(s.T(), s.DB, "admin@example.com", dbtest.DefaultPassword)
	dbtest.CreateTestAdmin(s.T(), s.DB, "inactive@example.com", dbtest.DefaultPassword)

	_, err := s.DB.Exec(s.T().Context(), "UPDATE admins SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "admin@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "メールアドレスの大文字小文字は区別しない",
			email:          "Admin@Example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "正規化されたメールアドレスで照合されること",
		},
		{
			name:           "存在しない管理者",
			email:          "nonexistent@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しない管理者でログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブな管理者",
			email:          "inactive@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブな管理者はログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "admin@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &loginRes)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, "admin@example.com", loginRes.Email)
				require.Greater(t, loginRes.ExpiresIn, int64(0), "有効期限が無効")

				c := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
				require.NotNil(t, c, "admin_token クッキーが設定されていない")
				require.True(t, c.HttpOnly)

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login_at FROM admins WHERE email = $1", "admin@example.com").Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login_at が更新されていない")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("クッキーが削除される", func() {
		t := s.T()

		adminCookie := authtest.LoginAdmin(t, s.Router, "admin@example.com", dbtest.DefaultPassword)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, []*http.Cookie{adminCookie})
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		request        func() httptest.Request
		expectedStatus int
		description    string
	}{
		{
			name: "クッキーで取得",
			request: func() httptest.Request {
				c := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "me@example.com")
				return httptest.Request{Method: http.MethodGet, Path: meURL, Cookies: []*http.Cookie{c}}
			},
			expectedStatus: http.StatusOK,
			description:    "ログイン中の管理者情報が取得できること",
		},
		{
			name: "Bearer トークンで取得",
			request: func() httptest.Request {
				id := dbtest.CreateTestAdmin(s.T(), s.DB, "me@example.com", dbtest.DefaultPassword)
				token := s.jwtHelper.GenerateToken(s.T(), id, "me@example.com")
				return httptest.Request{Method: http.MethodGet, Path: meURL, Token: token}
			},
			expectedStatus: http.StatusOK,
			description:    "Authorization ヘッダーでも認証できること",
		},
		{
			name: "無効なトークン",
			request: func() httptest.Request {
				return httptest.Request{Method: http.MethodGet, Path: meURL, Token: "invalid-token"}
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでは情報取得できないこと",
		},
		{
			name: "期限切れトークン",
			request: func() httptest.Request {
				id := dbtest.CreateTestAdmin(s.T(), s.DB, "me@example.com", dbtest.DefaultPassword)
				token := s.jwtHelper.CreateExpiredToken(s.T(), id, "me@example.com")
				return httptest.Request{Method: http.MethodGet, Path: meURL, Token: token}
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "期限切れトークンは拒否されること",
		},
		{
			name: "削除済みの管理者",
			request: func() httptest.Request {
				token := s.jwtHelper.GenerateToken(s.T(), uuid.New(), "ghost@example.com")
				return httptest.Request{Method: http.MethodGet, Path: meURL, Token: token}
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しない管理者のトークンでは取得できないこと",
		},
		{
			name: "トークンなし",
			request: func() httptest.Request {
				return httptest.Request{Method: http.MethodGet, Path: meURL}
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしでは情報取得できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.Do(t, s.Router, tt.request())
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, "me@example.com", "レスポンスにメールアドレスが含まれていない")
				require.NotContains(t, body, "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}
