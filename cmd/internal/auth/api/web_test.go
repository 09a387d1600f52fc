package authapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"taskd/cmd/internal/auth/session"
)

func requestWithUserAgent(ua string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	return req
}

func TestDeviceDescriptor_Defaults(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("User-Agent", "   ")
	if got := deviceDescriptor(req); got != session.DeviceUnknown {
		t.Fatalf("blank user agent: got %q", got)
	}

	if got := deviceDescriptor(requestWithUserAgent("Firefox on Linux")); got != "Firefox on Linux" {
		t.Fatalf("plain user agent mangled: %q", got)
	}
}

func TestDeviceDescriptor_TruncatesOnRuneBoundary(t *testing.T) {
	t.Parallel()

	// A multibyte rune straddles the truncation point: 255 ASCII bytes
	// followed by U+00E9 (2 bytes) puts the continuation byte at index 256.
	ua := strings.Repeat("a", 255) + "é" + strings.Repeat("b", 50)

	got := deviceDescriptor(requestWithUserAgent(ua))
	if len(got) > maxDeviceBytes {
		t.Fatalf("descriptor is %d bytes, limit is %d", len(got), maxDeviceBytes)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("descriptor is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("a", 255) {
		t.Fatalf("expected the straddling rune dropped whole, got %d bytes", len(got))
	}
}

func TestDeviceDescriptor_DropsInvalidUTF8(t *testing.T) {
	t.Parallel()

	got := deviceDescriptor(requestWithUserAgent("bad\xff\xfeagent"))
	if !utf8.ValidString(got) {
		t.Fatalf("descriptor is not valid UTF-8: %q", got)
	}
	if got != "badagent" {
		t.Fatalf("expected invalid bytes stripped, got %q", got)
	}
}
