package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)
	os.Exit(m.Run())
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware()}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/protected", chain...)
	return r
}

func request(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	w := request(t, newRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	w := request(t, newRouter(), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInjectsClaims(t *testing.T) {
	token, err := utils.GenerateAccessToken("user-1", models.RolePengelola, "owner-1", "prop-1", []string{models.PermManageRooms})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		uid, _ := c.Get(CtxUserID)
		oid, _ := c.Get(CtxOwnerID)
		assert.Equal(t, "user-1", uid)
		assert.Equal(t, "owner-1", oid)
		c.Status(http.StatusOK)
	})
	w := request(t, r, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireOwner(t *testing.T) {
	ownerToken, err := utils.GenerateAccessToken("user-1", models.RoleOwner, "user-1", "", nil)
	require.NoError(t, err)
	pengelolaToken, err := utils.GenerateAccessToken("user-2", models.RolePengelola, "owner-1", "", nil)
	require.NoError(t, err)

	r := newRouter(RequireOwner())

	assert.Equal(t, http.StatusOK, request(t, r, ownerToken).Code)
	assert.Equal(t, http.StatusForbidden, request(t, r, pengelolaToken).Code)
}

func TestRequirePermission(t *testing.T) {
	ownerToken, err := utils.GenerateAccessToken("user-1", models.RoleOwner, "user-1", "", nil)
	require.NoError(t, err)
	grantedToken, err := utils.GenerateAccessToken("user-2", models.RolePengelola, "owner-1", "", []string{models.PermManageRooms})
	require.NoError(t, err)
	deniedToken, err := utils.GenerateAccessToken("user-3", models.RolePengelola, "owner-1", "", []string{models.PermManageCanteen})
	require.NoError(t, err)

	r := newRouter(RequirePermission(models.PermManageRooms))

	// Owners hold every permission implicitly
	assert.Equal(t, http.StatusOK, request(t, r, ownerToken).Code)
	assert.Equal(t, http.StatusOK, request(t, r, grantedToken).Code)
	assert.Equal(t, http.StatusForbidden, request(t, r, deniedToken).Code)
}

func TestPropertyScope(t *testing.T) {
	tests := []struct {
		name      string
		tokenProp string
		queryProp string
		want      string
		allowed   bool
	}{
		{"owner without filter", "", "", "", true},
		{"owner with filter", "", "prop-1", "prop-1", true},
		{"scoped pengelola default", "prop-1", "", "prop-1", true},
		{"scoped pengelola matching filter", "prop-1", "prop-1", "prop-1", true},
		{"scoped pengelola foreign filter", "prop-1", "prop-2", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/rooms?property_id="+tt.queryProp, nil)
			c.Set(CtxPropertyID, tt.tokenProp)

			got, ok := PropertyScope(c)
			assert.Equal(t, tt.allowed, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
