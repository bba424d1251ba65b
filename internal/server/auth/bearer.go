package auth

import (
	"strings"

	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// value. Anything else yields "", which Verify reports as a missing token.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}
