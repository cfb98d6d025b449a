package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// URL resolves a user's avatar reference: the platform-provided URL when set,
// otherwise a gravatar derived from the email. Empty when neither resolves,
// in which case callers fall back to Initial.
func URL(avatarURL, email string, size int) string {
	if avatarURL != "" {
		return avatarURL
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ""
	}
	sum := md5.Sum([]byte(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d&d=identicon", hex.EncodeToString(sum[:]), size)
}

// Initial returns the uppercase first character of the handle for the
// initials-badge fallback.
func Initial(handle string) string {
	for _, r := range strings.TrimSpace(handle) {
		return strings.ToUpper(string(r))
	}
	return "?"
}
