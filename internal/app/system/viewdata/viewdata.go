package viewdata

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/hopeworks/ngohub/internal/app/system/auth"
	"github.com/hopeworks/ngohub/internal/domain/models"
)

// SocialLinkVM is one footer social icon.
type SocialLinkVM struct {
	Platform string
	URL      string
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site identity (from the backend profile, defaults if unreachable)
	SiteName    string
	Tagline     string
	LogoURL     string
	Email       string
	Phone       string
	Address     string
	SocialLinks []SocialLinkVM

	// User context (from auth middleware)
	IsLoggedIn bool
	UserName   string
	UserEmail  string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string
}

// ProfileLoader returns the site profile for the footer and header, or nil
// when the backend cannot serve one. Set by bootstrap to avoid a circular
// dependency on the backend client.
type ProfileLoader func(ctx context.Context) *models.Profile

var (
	profileLoader    ProfileLoader
	fallbackSiteName = models.DefaultSiteName
)

// SetProfileLoader installs the profile source. Call once at startup.
func SetProfileLoader(loader ProfileLoader) {
	profileLoader = loader
}

// SetFallbackSiteName overrides the site name used until the profile
// loads. Call once at startup.
func SetFallbackSiteName(name string) {
	if name != "" {
		fallbackSiteName = name
	}
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    fallbackSiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if user, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserName = user.Name
		vm.UserEmail = user.Email
	}

	if profileLoader != nil {
		if p := profileLoader(r.Context()); p != nil {
			applyProfile(&vm, p)
		}
	}
	return vm
}

func applyProfile(vm *BaseVM, p *models.Profile) {
	if p.NGOName != "" {
		vm.SiteName = p.NGOName
	}
	vm.Tagline = p.Description
	vm.LogoURL = p.ComputedProfilePicture
	vm.Email = p.Email
	vm.Phone = p.MobileNo
	vm.Address = p.Address
	for _, platform := range models.SocialPlatforms {
		if url := p.SocialLink(platform); url != "" {
			vm.SocialLinks = append(vm.SocialLinks, SocialLinkVM{Platform: platform, URL: url})
		}
	}
}
