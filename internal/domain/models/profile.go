// internal/domain/models/profile.go
package models

// DefaultSiteName is used until the organization profile has loaded.
const DefaultSiteName = "HopeWorks Foundation"

// SocialPlatforms are the five platform keys the profile form exposes.
// The backend stores socialLinks as a map keyed by these.
var SocialPlatforms = []string{"facebook", "instagram", "twitter", "linkedin", "youtube"}

// Profile is the singleton organization profile.
type Profile struct {
	Record

	NGOName     string            `json:"ngoName"`
	Description string            `json:"description"`
	MobileNo    string            `json:"mobileNo"`
	Email       string            `json:"email"`
	Website     string            `json:"website"`
	Address     string            `json:"address"`
	AddressMap  string            `json:"addressMap"` // embedded map URL
	SocialLinks map[string]string `json:"socialLinks"`

	ProfilePicture string `json:"profilePicture"`
	UseUpload      bool   `json:"useUpload"`

	ComputedProfilePicture string `json:"-"`
}

// SocialLink returns the stored URL for a platform key, or "".
func (p Profile) SocialLink(platform string) string {
	if p.SocialLinks == nil {
		return ""
	}
	return p.SocialLinks[platform]
}
