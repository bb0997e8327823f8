package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/user"
)

// callerClaims is the token scope every handler works under.
type callerClaims struct {
	UserID     string
	CompanyID  string
	EmployeeID string
	Role       user.Role
}

func claimsFromRequest(r *http.Request) (callerClaims, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return callerClaims{}, false
	}

	c := callerClaims{}
	c.UserID, _ = claims["user_id"].(string)
	c.CompanyID, _ = claims["company_id"].(string)
	c.EmployeeID, _ = claims["employee_id"].(string)
	if roleStr, ok := claims["role"].(string); ok {
		c.Role = user.Role(roleStr)
	}

	if c.CompanyID == "" {
		return callerClaims{}, false
	}
	return c, true
}
