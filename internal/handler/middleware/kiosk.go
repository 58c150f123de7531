package middleware

import (
	"tab-kiosk/internal/pkg/config"
	"tab-kiosk/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionIDContextKey = "kiosk_session_id"
	deviceKeyContextKey = "kiosk_device_key"
)

// KioskMiddleware attaches identity to every request: a per-browser session
// ID for the booking state machine and a long-lived device key for the
// remembered display ID. Missing or malformed cookies are replaced with
// fresh identifiers.
type KioskMiddleware struct {
	cfg config.Config
}

func NewKioskMiddleware(cfg config.Config) *KioskMiddleware {
	return &KioskMiddleware{cfg: cfg}
}

func (m *KioskMiddleware) AttachIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := uuid.Parse(cookie.GetSessionID(c))
		if err != nil {
			sessionID = uuid.New()
			cookie.SetSessionCookie(c, m.cfg.Cookie, sessionID.String(), m.cfg.Session.IdleTTL)
		}

		deviceKey := cookie.GetDeviceKey(c)
		if _, err := uuid.Parse(deviceKey); err != nil {
			deviceKey = uuid.NewString()
			cookie.SetDeviceCookie(c, m.cfg.Cookie, deviceKey)
		}

		c.Set(sessionIDContextKey, sessionID)
		c.Set(deviceKeyContextKey, deviceKey)
		c.Next()
	}
}

func GetKioskSessionID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(sessionIDContextKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

func GetKioskDeviceKey(c *gin.Context) (string, bool) {
	value, exists := c.Get(deviceKeyContextKey)
	if !exists {
		return "", false
	}
	key, ok := value.(string)
	return key, ok
}
