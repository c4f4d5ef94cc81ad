package server

import (
	"net/http"
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/civiceye/civiceye/db"
	errs "github.com/civiceye/civiceye/errors"
	"github.com/civiceye/civiceye/models"
	"github.com/civiceye/civiceye/server/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger emits one structured line per request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := log.Info()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("ip", c.ClientIP()).
			Msg("request completed")
	}
}

// ResolveCurrentUser attributes the request to a user when the injected
// resolver finds one. Resolution failures degrade to anonymous; report
// submission is open to everyone.
func (s *Server) ResolveCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.CurrentUser != nil {
			user, err := s.CurrentUser(c)
			if err != nil {
				s.Logger.Warn().Err(err).Msg("current user resolution failed, treating as anonymous")
			} else if user != nil {
				c.Set("user", user)
			}
		}
		c.Next()
	}
}

// HeaderUserResolver is the default CurrentUserFunc: it reads X-User-ID and
// loads the user. Absence or an unknown id means anonymous.
func HeaderUserResolver(userRepo db.UserRepository) CurrentUserFunc {
	return func(c *gin.Context) (*models.User, error) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			return nil, nil
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, nil
		}
		user, err := userRepo.FindUserByID(uint(id))
		if err != nil {
			return nil, nil
		}
		return user, nil
	}
}

// GetUserFromContext returns the resolved user, or nil for anonymous requests.
func GetUserFromContext(c *gin.Context) *models.User {
	if userI, exists := c.Get("user"); exists {
		if user, ok := userI.(*models.User); ok {
			return user
		}
	}
	return nil
}

func reportRateLimiter() gin.HandlerFunc {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 30,
	})
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			response.JSON(c, "too many reports, slow down", http.StatusTooManyRequests, nil,
				errs.New("rate limit exceeded", http.StatusTooManyRequests))
			c.Abort()
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	})
}
