// internal/domain/models/hero.go
package models

// DefaultSlideDuration is the autoplay interval, in seconds, used when a
// slide does not configure its own.
const DefaultSlideDuration = 3

// HeroSlide is one slide of a page's hero carousel.
type HeroSlide struct {
	Record

	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`

	// UseUpload distinguishes an image stored by the backend's upload
	// service from an externally linked URL.
	UseUpload bool `json:"useUpload"`

	Autoplay bool `json:"autoplay"`
	Duration int  `json:"duration"` // seconds

	// ComputedImageURL is derived on every fetch and never sent back.
	ComputedImageURL string `json:"-"`
}

// DurationOrDefault returns the configured slide duration in seconds,
// falling back to DefaultSlideDuration.
func (s HeroSlide) DurationOrDefault() int {
	if s.Duration > 0 {
		return s.Duration
	}
	return DefaultSlideDuration
}
