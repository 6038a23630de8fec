package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/money_planner/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are paths PostHog never sees.
var untrackedPrefixes = []string{"/health", "/swagger"}

// PosthogMiddleware sends one event per successful authenticated API request. The event
// name is derived from the route template, e.g. "PUT /api/v1/transactions/:id" becomes
// "put_api_v1_transactions_id".
func PosthogMiddleware(tracker *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracker.IsInitialized() || isUntracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}
		eventName := routeEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		}
		// Scope is the interesting dimension of series mutations.
		if scope := c.Query("scope"); scope != "" {
			props["scope"] = scope
		}
		tracker.Enqueue(userID, eventName, props)
	}
}

func isUntracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func routeEventName(method, route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return ""
	}
	replacer := strings.NewReplacer("/", "_", ":", "", "*", "")
	return strings.ToLower(method) + "_" + replacer.Replace(route)
}
