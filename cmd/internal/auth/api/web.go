package authapi

import (
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"taskd/cmd/internal/auth/session"
)

// maxDeviceBytes bounds the device descriptor persisted per session.
const maxDeviceBytes = 256

// setSessionCookie writes the credential cookie carrying the session token.
// MaxAge only bounds the client-side lifetime; the server never checks age.
func setSessionCookie(w http.ResponseWriter, cfg session.Config, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.CookieMaxAge / time.Second),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the credential cookie on the client.
func clearSessionCookie(w http.ResponseWriter, cfg session.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionTokenFromRequest extracts the token from the credential cookie.
func sessionTokenFromRequest(r *http.Request, cfg session.Config) string {
	c, err := r.Cookie(cfg.CookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

// deviceDescriptor derives a free-text device label for the session list.
// The result is always valid UTF-8: the descriptor is stored in a TEXT
// column, and Postgres rejects invalid byte sequences outright.
func deviceDescriptor(r *http.Request) string {
	ua := strings.ToValidUTF8(strings.TrimSpace(r.UserAgent()), "")
	if ua == "" {
		return session.DeviceUnknown
	}
	if len(ua) > maxDeviceBytes {
		// Truncate on a rune boundary, never mid-sequence.
		cut := maxDeviceBytes
		for cut > 0 && !utf8.RuneStart(ua[cut]) {
			cut--
		}
		ua = ua[:cut]
	}
	return ua
}

func clientIP(r *http.Request, trustProxy bool) net.IP {
	if trustProxy {
		if ip := parseForwardedIP(r.Header.Get("X-Forwarded-For")); ip != nil {
			return ip
		}
		if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil {
		if ip := net.ParseIP(host); ip != nil {
			return ip
		}
	}
	return nil
}

func parseForwardedIP(raw string) net.IP {
	if raw == "" {
		return nil
	}
	for _, p := range strings.Split(raw, ",") {
		if ip := net.ParseIP(strings.TrimSpace(p)); ip != nil {
			return ip
		}
	}
	return nil
}
