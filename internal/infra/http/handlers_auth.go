package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"takecost/internal/domain"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "username and password are required")
		return
	}
	if !s.allowLoginAttempt(c, req.Username) {
		return
	}
	token, err := s.login.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
			return
		}
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type meResponse struct {
	Authenticated bool     `json:"authenticated"`
	Principal     string   `json:"principal,omitempty"`
	Roles         []string `json:"roles,omitempty"`
}

// handleMe reports the caller's resolved identity. Anonymous callers get
// authenticated=false rather than an error.
func (s *Server) handleMe(c *gin.Context) {
	sc, _ := getSecurityContext(c)
	c.JSON(http.StatusOK, meResponse{
		Authenticated: sc.Authenticated,
		Principal:     sc.PrincipalName,
		Roles:         sc.Roles,
	})
}

// allowLoginAttempt throttles per username and client address. Limiter
// outages fail open unless configured otherwise; a broken redis should not
// lock everyone out.
func (s *Server) allowLoginAttempt(c *gin.Context, username string) bool {
	if s.rateLimiter == nil || s.cfg.LoginRateLimitAttempts <= 0 {
		return true
	}
	key := "login:" + username + ":" + c.ClientIP()
	decision, err := s.rateLimiter.Allow(c.Request.Context(), key, s.cfg.LoginRateLimitAttempts, s.cfg.LoginRateLimitWindow())
	if err != nil {
		if s.cfg.LoginRateLimitFailClosed {
			writeError(c, http.StatusServiceUnavailable, "RATE_LIMIT_UNAVAILABLE", "try again later")
			return false
		}
		return true
	}
	if !decision.Allowed {
		if wait := time.Until(decision.ResetAt); wait > 0 {
			c.Header("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
		}
		writeError(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many login attempts")
		return false
	}
	return true
}
