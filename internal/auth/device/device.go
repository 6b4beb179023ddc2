// Package device derives a human-readable device description from the
// User-Agent header, used only for login audit logging.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// Describe extracts a display name like "Chrome on Windows" from a
// User-Agent string.
func Describe(userAgentString string) string {
	if userAgentString == "" {
		return "Unknown Device"
	}

	ua := useragent.New(userAgentString)

	browser, _ := ua.Browser()
	os := ua.OS()

	if ua.Mobile() {
		if platform := ua.Platform(); platform != "" {
			return strings.TrimSpace(browser + " on " + platform)
		}
	}

	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		os = "Unknown OS"
	}

	return strings.TrimSpace(browser + " on " + os)
}
