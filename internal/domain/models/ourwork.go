// internal/domain/models/ourwork.go
package models

// WorkSummary is the strip above the project grid on the our-work page.
type WorkSummary struct {
	Record

	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	UseUpload   bool   `json:"useUpload"`

	ComputedImageURL string `json:"-"`
}

// Project is one showcased project. Admin writes carry several named image
// fields; gallery and solution images are backend-bounded (1-4 solution,
// 3-6 gallery).
type Project struct {
	Record

	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`

	CoverImage string `json:"coverImage"`
	HeroImage  string `json:"heroImage"`
	WhatImage  string `json:"whatImage"`
	UseUpload  bool   `json:"useUpload"`

	WhatWeDo       string   `json:"whatWeDo"`
	Solution       string   `json:"solution"`
	SolutionImages []string `json:"solutionImages"`
	GalleryImages  []string `json:"galleryImages"`

	ComputedCoverImage     string   `json:"-"`
	ComputedHeroImage      string   `json:"-"`
	ComputedWhatImage      string   `json:"-"`
	ComputedSolutionImages []string `json:"-"`
	ComputedGalleryImages  []string `json:"-"`
}

// Bounds for project image sets, mirrored from the backend contract so the
// admin form can reject bad submissions before the upload starts.
const (
	MinSolutionImages = 1
	MaxSolutionImages = 4
	MinGalleryImages  = 3
	MaxGalleryImages  = 6
)
