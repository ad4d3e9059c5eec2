package middleware

import (
	"net/http"

	"pulsex/domain/core"
	"pulsex/internal"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the dashboard session id
const SessionCookieName = "pulsex_session"

const sessionContextKey = "pulsex.session_id"

// EnsureSession attaches a session id to every request. A missing or
// malformed cookie is replaced with a freshly issued id.
func EnsureSession(logger *internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID core.SessionID

		cookie, err := c.Cookie(SessionCookieName)
		if err == nil {
			sessionID, err = core.ParseSessionID(cookie)
			if err != nil {
				logger.Debug("[EnsureSession] Discarding malformed session cookie: %v", err)
			}
		}

		if sessionID == "" {
			sessionID = core.NewSessionID()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, sessionID.String(), 0, "/", "", false, true)
			logger.Trace("[EnsureSession] Issued session %s", sessionID)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session id attached by EnsureSession
func SessionID(c *gin.Context) (core.SessionID, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return "", false
	}
	sessionID, ok := value.(core.SessionID)
	return sessionID, ok
}
