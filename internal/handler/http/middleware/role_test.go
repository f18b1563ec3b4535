package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/user"
)

func permissionTestRequest(t *testing.T, ja *jwtauth.JWTAuth, role string, permission user.Permission) *httptest.ResponseRecorder {
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := jwtauth.Verifier(ja)(RequirePermission(permission)(final))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequirePermission(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)

	t.Run("admin can manage payroll", func(t *testing.T) {
		rec := permissionTestRequest(t, ja, "admin", user.PermissionPayrollManage)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("staff account cannot manage payroll", func(t *testing.T) {
		rec := permissionTestRequest(t, ja, "user", user.PermissionPayrollManage)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff account can view attendance", func(t *testing.T) {
		rec := permissionTestRequest(t, ja, "user", user.PermissionAttendanceView)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin cannot manage users", func(t *testing.T) {
		rec := permissionTestRequest(t, ja, "admin", user.PermissionUserManage)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		rec := permissionTestRequest(t, ja, "guest", user.PermissionStaffView)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
