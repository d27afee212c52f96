package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/codetrackr/adapters/persistence"
	authUC "github.com/khoahotran/codetrackr/internal/application/usecase/auth"
	"github.com/khoahotran/codetrackr/internal/config"
	"github.com/khoahotran/codetrackr/pkg/auth"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type AuthE2ETestSuite struct {
	suite.Suite
	Router   *gin.Engine
	username string
	password string
}

func (s *AuthE2ETestSuite) SetupSuite() {
	cfg, err := config.LoadConfig()
	if err != nil {
		s.T().Fatalf("Failed to load config for E2E test: %v", err)
	}

	dbPool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect postgres: %v", err)
	}

	redisClient, err := persistence.NewRedisClient(cfg, logger.NewNop())
	if err != nil {
		s.T().Fatalf("E2E test failed to connect redis: %v", err)
	}

	appLogger := logger.NewZapLogger("development")

	// Unique per run so reruns never collide on the username constraint.
	s.username = fmt.Sprintf("e2e_%s", uuid.New().String()[:8])
	s.password = "e2e_test_password_123"

	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	txManager := persistence.NewTxManager(dbPool)
	tokenStore := persistence.NewRedisTokenStore(redisClient)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	registerUseCase := authUC.NewRegisterUseCase(userRepo, profileRepo, txManager, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, tokenStore, cfg.Auth.RefreshTokenLifespan, appLogger)
	refreshUseCase := authUC.NewRefreshUseCase(jwtSvc, tokenStore, cfg.Auth.RefreshTokenLifespan, appLogger)
	authHandler := NewAuthHandler(registerUseCase, loginUseCase, refreshUseCase, appLogger)
	authMiddleware := AuthMiddleware(jwtSvc)
	errorMiddleware := ErrorMiddleware(appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}
		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/health-auth", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "OK"})
			})
		}
	}

	s.Router = router
}

func (s *AuthE2ETestSuite) TearDownSuite() {}

func TestAuthE2E(t *testing.T) {
	if os.Getenv("E2E_TESTS") == "" {
		t.Skip("Skipping E2E tests. Set E2E_TESTS=1 to run.")
	}
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) postJSON(path string, body gin.H) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *AuthE2ETestSuite) Test_Signup_Login_Refresh_Flow() {
	rrSignup := s.postJSON("/api/auth/signup", gin.H{
		"username":  s.username,
		"email":     s.username + "@example.com",
		"password":  s.password,
		"password2": s.password,
	})
	assert.Equal(s.T(), http.StatusCreated, rrSignup.Code)

	rrBad := s.postJSON("/api/auth/login", gin.H{"username": s.username, "password": "wrongpassword"})
	assert.Equal(s.T(), http.StatusUnauthorized, rrBad.Code)

	rrGood := s.postJSON("/api/auth/login", gin.H{"username": s.username, "password": s.password})
	assert.Equal(s.T(), http.StatusOK, rrGood.Code)

	var loginResponse map[string]string
	json.Unmarshal(rrGood.Body.Bytes(), &loginResponse)
	accessToken := loginResponse["access"]
	refreshToken := loginResponse["refresh"]
	assert.NotEmpty(s.T(), accessToken)
	assert.NotEmpty(s.T(), refreshToken)

	reqAuth := httptest.NewRequest(http.MethodGet, "/api/health-auth", nil)
	reqAuth.Header.Set("Authorization", "Bearer "+accessToken)
	rrAuth := httptest.NewRecorder()
	s.Router.ServeHTTP(rrAuth, reqAuth)
	assert.Equal(s.T(), http.StatusOK, rrAuth.Code)

	reqNoAuth := httptest.NewRequest(http.MethodGet, "/api/health-auth", nil)
	rrNoAuth := httptest.NewRecorder()
	s.Router.ServeHTTP(rrNoAuth, reqNoAuth)
	assert.Equal(s.T(), http.StatusUnauthorized, rrNoAuth.Code)

	rrRefresh := s.postJSON("/api/auth/refresh", gin.H{"refresh": refreshToken})
	assert.Equal(s.T(), http.StatusOK, rrRefresh.Code)

	var refreshResponse map[string]string
	json.Unmarshal(rrRefresh.Body.Bytes(), &refreshResponse)
	assert.NotEmpty(s.T(), refreshResponse["access"])
	assert.NotEmpty(s.T(), refreshResponse["refresh"])
	assert.NotEqual(s.T(), refreshToken, refreshResponse["refresh"])

	// Consumed tokens are single use.
	rrReplay := s.postJSON("/api/auth/refresh", gin.H{"refresh": refreshToken})
	assert.Equal(s.T(), http.StatusUnauthorized, rrReplay.Code)
}

func (s *AuthE2ETestSuite) Test_Signup_PasswordMismatch() {
	rr := s.postJSON("/api/auth/signup", gin.H{
		"username":  "mismatch_" + uuid.New().String()[:8],
		"email":     "mismatch@example.com",
		"password":  s.password,
		"password2": "something-else",
	})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)

	var body map[string]json.RawMessage
	json.Unmarshal(rr.Body.Bytes(), &body)
	assert.Contains(s.T(), body, "fields")
}
