package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/helper"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/cache"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
)

const (
	// AuthCookieName is the session cookie the frontend stores the token in.
	AuthCookieName = "w_auth"

	ContextUserKey   = "x-user"
	ContextUserIDKey = "x-user-id"
)

// AuthGuard resolves the session token from the w_auth cookie or the
// Authorization header and attaches the user to the gin context. The guard is
// read-only: it consults nothing but the token. Lookups are served from the
// token cache when possible, falling back to the auth service on a miss.
func AuthGuard(authService port.AuthService, tokenCache cache.TokenCache, appMetrics *metrics.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if token == "" {
			if appMetrics != nil {
				appMetrics.RecordAuthFailure(c.Request.Context(), "missing_token")
			}

			helper.SendUnauthorized(c, "Unauthorized request")
			return
		}

		if tokenCache != nil {
			if user, found := tokenCache.Get(c.Request.Context(), token); found && user.Token == token {
				if appMetrics != nil {
					appMetrics.RecordTokenCacheHit(c.Request.Context())
				}

				c.Set(ContextUserKey, user)
				c.Set(ContextUserIDKey, user.ID.String())
				c.Next()
				return
			}

			if appMetrics != nil {
				appMetrics.RecordTokenCacheMiss(c.Request.Context())
			}
		}

		user, err := authService.ResolveToken(c.Request.Context(), token)

		if err != nil {
			if appMetrics != nil {
				appMetrics.RecordAuthFailure(c.Request.Context(), "invalid_token")
			}

			helper.SendUnauthorized(c, "Unauthorized request")
			return
		}

		if tokenCache != nil {
			tokenCache.Set(c.Request.Context(), token, *user)
		}

		c.Set(ContextUserKey, *user)
		c.Set(ContextUserIDKey, user.ID.String())
		c.Next()
	}
}

// CurrentUser returns the user the guard attached to the request.
func CurrentUser(c *gin.Context) domain.User {
	if value, ok := c.Get(ContextUserKey); ok {
		if user, ok := value.(domain.User); ok {
			return user
		}
	}

	return domain.User{}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	bearer := c.GetHeader("Authorization")

	if strings.HasPrefix(bearer, "Bearer ") {
		return bearer[len("Bearer "):]
	}

	return ""
}
