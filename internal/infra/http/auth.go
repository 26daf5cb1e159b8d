package http

import (
	"errors"
	"net/http"
	"strings"

	"takecost/internal/domain"
	"takecost/internal/infra/auth/rbac"

	"github.com/gin-gonic/gin"
)

const securityContextKey = "securityContext"

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func setSecurityContext(c *gin.Context, sc domain.SecurityContext) {
	c.Set(securityContextKey, sc)
}

// getSecurityContext returns the request's identity. Absent means anonymous;
// the zero value is safe to use directly.
func getSecurityContext(c *gin.Context) (domain.SecurityContext, bool) {
	v, ok := c.Get(securityContextKey)
	if !ok {
		return domain.SecurityContext{}, false
	}
	sc, ok := v.(domain.SecurityContext)
	return sc, ok
}

// authenticate resolves the bearer token into a per-request security
// context. It never rejects: a missing, malformed, expired, or otherwise
// invalid token leaves the request anonymous and the authorization layer
// decides what that request may reach.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}
		// An identity established earlier in the chain wins.
		if _, ok := getSecurityContext(c); ok {
			c.Next()
			return
		}
		identity, err := s.verifier.Verify(token)
		if err != nil || identity.Subject == "" {
			c.Next()
			return
		}
		principal, err := s.users.LoadByName(c.Request.Context(), identity.Subject)
		if err != nil {
			c.Next()
			return
		}
		if !s.verifier.ValidateFor(token, principal) {
			c.Next()
			return
		}
		setSecurityContext(c, domain.SecurityContext{
			Authenticated: true,
			PrincipalName: principal.Name,
			Roles:         identity.Roles,
		})
		c.Next()
	}
}

// authorize enforces the route rule table before any handler runs.
func (s *Server) authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		rule := s.rules.RuleFor(c.Request.URL.Path)
		sc, _ := getSecurityContext(c)
		if err := rbac.Check(rule, sc); err != nil {
			writeAuthzError(c, err)
			return
		}
		c.Next()
	}
}

func writeAuthzError(c *gin.Context, err error) {
	code, ok := rbac.IsAuthzError(err)
	if !ok {
		code = "ACCESS_DENIED"
	}
	status := http.StatusForbidden
	message := "access denied"
	if errors.Is(err, domain.ErrUnauthorized) {
		status = http.StatusUnauthorized
		message = "authentication required"
	}
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Message: message})
}
