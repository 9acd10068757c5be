// internal/backend/imageurl.go
package backend

import "strings"

// ImageURL resolves a raw image reference into a displayable URL. The same
// four branches apply to every image-bearing entity:
//
//   - empty input stays empty (consumers render a placeholder instead)
//   - an absolute http(s) URL is an external reference, returned unchanged
//   - a "/uploads..." path is served by the backend's origin (the API base
//     URL with its trailing /api stripped)
//   - a bare value with useUpload set is a stored upload filename
//   - anything else is treated as a literal external reference
func (c *Client) ImageURL(raw string, useUpload bool) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if strings.HasPrefix(raw, "/uploads") {
		return c.origin + raw
	}
	if useUpload {
		return c.origin + "/uploads/images/" + raw
	}
	return raw
}
