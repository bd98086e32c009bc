package reddit

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

// ParseProfileURL extrae el username de una URL de perfil de Reddit.
// Acepta tambien la forma corta "u/<name>" y el username pelado.
func ParseProfileURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty profile url")
	}

	// Username pelado o forma corta u/<name>.
	if !strings.Contains(raw, "://") {
		candidate := strings.TrimPrefix(strings.TrimPrefix(raw, "/"), "u/")
		candidate = strings.TrimSuffix(candidate, "/")
		if usernamePattern.MatchString(candidate) && !strings.Contains(candidate, "/") {
			return candidate, nil
		}
		return "", fmt.Errorf("invalid reddit profile reference: %q", raw)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse profile url: %w", err)
	}

	host := strings.ToLower(parsed.Hostname())
	if host != "www.reddit.com" && host != "reddit.com" && host != "old.reddit.com" {
		return "", fmt.Errorf("not a reddit host: %q", host)
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || (parts[0] != "user" && parts[0] != "u") {
		return "", fmt.Errorf("invalid reddit profile url: %q", raw)
	}
	if !usernamePattern.MatchString(parts[1]) {
		return "", fmt.Errorf("invalid reddit username: %q", parts[1])
	}
	return parts[1], nil
}
