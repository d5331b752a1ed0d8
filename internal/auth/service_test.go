package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewAuthService("test-secret")
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "user@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewAuthService("one-secret").GenerateToken(uuid.New(), "user@example.com", time.Hour)
	require.NoError(t, err)

	_, err = NewAuthService("another-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	service := NewAuthService("test-secret")

	token, err := service.GenerateToken(uuid.New(), "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsNonUUIDSubject(t *testing.T) {
	now := time.Now()
	claims := Claims{
		UserID: "not-a-uuid",
		Email:  "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewAuthService("test-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := NewAuthService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestRequireAuthSetsCallerIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewAuthService("test-secret")
	middleware := NewAuthMiddleware(service)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "user@example.com", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		callerID, ok := CallerID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"caller_id": callerID})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(NewAuthService("test-secret"))

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(NewAuthService("test-secret"))

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
