package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rohand-19/gully/internal/common"
)

func newRoleRouter(seed gin.HandlerFunc, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{}
	if seed != nil {
		handlers = append(handlers, seed)
	}
	handlers = append(handlers, guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.POST("/guarded", handlers...)
	return r
}

func seedRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(common.ContextUserIDKey, uint(1))
		c.Set(common.ContextUserRoleKey, role)
	}
}

func doPost(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))
	return w
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	t.Parallel()
	r := newRoleRouter(seedRole("admin"), AdminMiddleware())

	w := doPost(r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddlewareRejectsRegularUser(t *testing.T) {
	t.Parallel()
	r := newRoleRouter(seedRole("user"), AdminMiddleware())

	w := doPost(r)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You do not have permission to perform this action")
}

func TestAdminMiddlewareIgnoresRoleCase(t *testing.T) {
	t.Parallel()
	r := newRoleRouter(seedRole("Admin"), AdminMiddleware())

	w := doPost(r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddlewareWithoutAuthContext(t *testing.T) {
	t.Parallel()
	r := newRoleRouter(nil, AdminMiddleware())

	w := doPost(r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddlewareAcceptsAnyRequiredRole(t *testing.T) {
	t.Parallel()
	r := newRoleRouter(seedRole("user"), RoleMiddleware("admin", "user"))

	w := doPost(r)
	assert.Equal(t, http.StatusOK, w.Code)
}
