// internal/backend/token.go
package backend

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// IsTokenExpired decides, client-side, whether a backend-issued token is
// still usable. The token is assumed to be JWT-shaped; the middle segment
// is decoded and its exp claim compared against the current time. A token
// that does not decode is treated as expired. A decodable token without an
// exp claim is treated as non-expiring, matching the backend's own
// behavior for service tokens.
func IsTokenExpired(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return true
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		// Some issuers pad; retry with standard encoding before giving up.
		payload, err = base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			return true
		}
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return true
	}
	if claims.Exp == 0 {
		return false
	}
	return time.Unix(claims.Exp, 0).Before(time.Now())
}
