package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/payroll-backend-go/internal/domain/user"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret-key", "15m")

	employeeID := "emp-1"
	token, expiresAt, err := svc.GenerateAccessToken("user-1", &employeeID, "company-1", user.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	companyID, ok := decoded.Get("company_id")
	require.True(t, ok)
	assert.Equal(t, "company-1", companyID)

	role, _ := decoded.Get("role")
	assert.Equal(t, "manager", role)

	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)

	emp, _ := decoded.Get("employee_id")
	assert.Equal(t, "emp-1", emp)
}

func TestGenerateAccessToken_NoEmployeeAccount(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret-key", "15m")

	token, _, err := svc.GenerateAccessToken("user-1", nil, "company-1", user.RoleOwner)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	emp, _ := decoded.Get("employee_id")
	assert.Nil(t, emp)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("user-1", nil, "company-1", user.RoleOwner)
	assert.Error(t, err)
}
