package cookie

import (
	"net/http"
	"time"

	"tab-kiosk/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the per-browser booking session ID.
	SessionCookieName = "kiosk_session"
	// DeviceCookieName carries the long-lived device key the remembered
	// display ID is stored under.
	DeviceCookieName = "kiosk_device"

	DeviceCookieLifetime = 365 * 24 * time.Hour
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string, lifetime time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		sessionID,
		int(lifetime.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func SetDeviceCookie(c *gin.Context, cfg config.CookieConfig, deviceKey string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		DeviceCookieName,
		deviceKey,
		int(DeviceCookieLifetime.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionID(c *gin.Context) string {
	id, _ := c.Cookie(SessionCookieName)
	return id
}

func GetDeviceKey(c *gin.Context) string {
	key, _ := c.Cookie(DeviceCookieName)
	return key
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
