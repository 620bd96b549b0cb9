package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"VidaClinic/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TokenAuthMiddleware())
	router.Use(extra...)
	router.GET("/protected", func(c *gin.Context) {
		userID, err := ExtractUserIDFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func issueToken(t *testing.T, role string) string {
	t.Helper()
	t.Setenv("SYMMETRIC_KEY", strings.Repeat("k", 32))
	accessToken, _, err := utils.GenerateTokens("52001", role)
	require.NoError(t, err)
	return accessToken
}

func TestTokenAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := sessionRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestTokenAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", strings.Repeat("k", 32))
	router := sessionRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected?accessToken=not-a-token", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestTokenAuthMiddlewarePutsClaimsInContext(t *testing.T) {
	token := issueToken(t, "DOCTOR")
	router := sessionRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected?accessToken="+token, nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "52001")
}

func TestRoleAuthMiddleware(t *testing.T) {
	adminToken := issueToken(t, "ADMINISTRATIVE")
	nurseToken := issueToken(t, "NURSE")
	router := sessionRouter(RoleAuthMiddleware("ADMINISTRATIVE"))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected?accessToken="+adminToken, nil)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodGet, "/protected?accessToken="+nurseToken, nil)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
