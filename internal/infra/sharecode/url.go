package sharecode

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/runoshun/tasklist/internal/domain"
)

// ShareURL returns base with the share code set as the list query parameter.
// Other query parameters on base are preserved.
func ShareURL(base, token string) (string, error) {
	if strings.TrimSpace(base) == "" {
		return "", domain.ErrNoShareBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse share base URL: %w", err)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("share base URL must be absolute: %q", base)
	}
	q := u.Query()
	q.Set(domain.ShareQueryParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// TokenFromInput extracts a share code from user input.
// An absolute URL yields its list query parameter; anything else is
// returned trimmed, as a bare code.
func TokenFromInput(input string) string {
	input = strings.TrimSpace(input)
	if !strings.Contains(input, "://") {
		return input
	}
	u, err := url.Parse(input)
	if err != nil || !u.IsAbs() {
		return input
	}
	return u.Query().Get(domain.ShareQueryParam)
}

// Link builds a share URL for the token on base.
func (c *Codec) Link(base, token string) (string, error) {
	return ShareURL(base, token)
}

// TokenFromInput extracts a share code from a pasted code or URL.
func (c *Codec) TokenFromInput(input string) string {
	return TokenFromInput(input)
}
