//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"lesson-scheduler/internal/domain/user"
	"lesson-scheduler/internal/handler/dto/request"
	resdto "lesson-scheduler/internal/handler/dto/response"
	"lesson-scheduler/tests/common/authtest"
	"lesson-scheduler/tests/common/dbtest"
	"lesson-scheduler/tests/common/httptest"
	"lesson-scheduler/tests/e2e"

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

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin), nil)
	dbtest.CreateTestUser(s.T(), s.DB, "trainer@example.com", string(user.RoleTrainer), nil)
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleAdmin), nil)

	// 非アクティブユーザーを作成
	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
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
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
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

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, tt.email, loginRes.User.Email)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie, "アクセストークンのCookieが設定されていない")

				// last_loginが更新されることを確認
				var lastLogin interface{}
				err = s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
		description    string
	}{
		{
			name: "正常なログアウト",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "admin@example.com", "password123")
			},
			expectedStatus: http.StatusNoContent,
			description:    "有効なトークンでログアウトできること",
		},
		{
			name: "無効なトークン",
			setupToken: func() string {
				return "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでログアウトできないこと",
		},
		{
			name: "トークンなし",
			setupToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしでログアウトできないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			token := tt.setupToken()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "管理者ユーザーの情報取得",
			setupUser: func() (string, string, string) {
				email := "admin@example.com"
				token := authtest.LoginUser(s.T(), s.Router, email, "password123")
				return email, string(user.RoleAdmin), token
			},
			expectedStatus: http.StatusOK,
			description:    "管理者ユーザーの情報が取得できること",
		},
		{
			name: "トレーナーユーザーの情報取得",
			setupUser: func() (string, string, string) {
				email := "trainer@example.com"
				token := authtest.LoginUser(s.T(), s.Router, email, "password123")
				return email, string(user.RoleTrainer), token
			},
			expectedStatus: http.StatusOK,
			description:    "トレーナーユーザーの情報が取得できること",
		},
		{
			name: "無効なトークン",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでは情報取得できないこと",
		},
		{
			name: "トークンなし",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしでは情報取得できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email, "レスポンスにメールアドレスが含まれていない")
				require.Contains(t, responseBody, role, "レスポンスにロールが含まれていない")
				require.NotContains(t, responseBody, "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleAdmin), nil)

		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("認証が必要なエンドポイント", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/trainers"},
			{http.MethodPost, "/api/availability/slots"},
			{http.MethodPost, "/api/bookings"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "認証なしでは拒否されるべき")
		}
	})
}
