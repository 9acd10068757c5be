// internal/domain/models/content.go
package models

// Stat is a single animated counter on the home page ("120+ villages",
// "15 years", ...).
type Stat struct {
	Record

	Icon   string `json:"icon"`  // emoji
	Color  string `json:"color"` // hex
	Number int    `json:"number"`
	Label  string `json:"label"`
}

// AboutItem is one card in the home page's "about" strip, and also the
// shape of the about-us page's singleton section.
type AboutItem struct {
	Record

	Title       string `json:"title"`
	Description string `json:"description"`
	MainImage   string `json:"mainImage"`
	ImageURL    string `json:"imageUrl"`
	UseUpload   bool   `json:"useUpload"`

	ComputedImageURL string `json:"-"`
}

// RawImage returns whichever raw image reference the backend populated.
// Older records use mainImage, newer ones imageUrl.
func (a AboutItem) RawImage() string {
	if a.MainImage != "" {
		return a.MainImage
	}
	return a.ImageURL
}

// Area is one focus-area card on the about-us page.
type Area struct {
	Record

	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	UseUpload   bool   `json:"useUpload"`

	ComputedImageURL string `json:"-"`
}
