// internal/backend/profile.go
package backend

import (
	"context"
	"net/http"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

// GetProfile fetches the public organization profile (site identity,
// contact details, social links).
func (c *Client) GetProfile(ctx context.Context) Result[models.Profile] {
	res := getOne[models.Profile](c, ctx, "/profile", false, "profile", "data")
	if res.Success {
		c.transformProfile(&res.Data)
	}
	return res
}

// GetAdminProfile fetches the profile through the admin endpoint, which
// includes fields the public read omits.
func (c *Client) GetAdminProfile(ctx context.Context) Result[models.Profile] {
	res := getOne[models.Profile](c, ctx, "/profile/admin", true, "profile", "data")
	if res.Success {
		c.transformProfile(&res.Data)
	}
	return res
}

// ProfileInput is the JSON write shape for the singleton profile. Social
// links are keyed by the five fixed platform names.
type ProfileInput struct {
	NGOName     string            `json:"ngoName"`
	Description string            `json:"description"`
	MobileNo    string            `json:"mobileNo"`
	Email       string            `json:"email"`
	Website     string            `json:"website"`
	Address     string            `json:"address"`
	AddressMap  string            `json:"addressMap"`
	SocialLinks map[string]string `json:"socialLinks"`

	// ProfilePicture carries an external URL; ignored when a file upload
	// goes through UploadProfilePicture instead.
	ProfilePicture string `json:"profilePicture,omitempty"`
	UseUpload      bool   `json:"useUpload"`
}

// UpdateProfile upserts the profile with a JSON body.
func (c *Client) UpdateProfile(ctx context.Context, in ProfileInput) Result[models.Profile] {
	res := mutate[models.Profile](c, ctx, http.MethodPost, "/profile", in, "profile", "data")
	if res.Success {
		c.transformProfile(&res.Data)
	}
	return res
}

// UploadProfilePicture replaces the profile picture with an uploaded file.
func (c *Client) UploadProfilePicture(ctx context.Context, file Upload) Result[models.Profile] {
	raw, ce := c.doMultipart(ctx, http.MethodPost, "/profile/picture", nil, []Upload{file})
	if ce != nil {
		return fail[models.Profile](ce)
	}
	var p models.Profile
	if len(raw) > 0 {
		_ = decodeInto(raw, &p, "profile", "data")
	}
	c.transformProfile(&p)
	return ok(p)
}

// ResetProfile restores the backend's default profile.
func (c *Client) ResetProfile(ctx context.Context) Result[models.Profile] {
	res := mutate[models.Profile](c, ctx, http.MethodPost, "/profile/reset", nil, "profile", "data")
	if res.Success {
		c.transformProfile(&res.Data)
	}
	return res
}
