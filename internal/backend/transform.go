// internal/backend/transform.go
package backend

import (
	"sort"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

// sortByOrder sorts in place, ascending by display order. The sort is
// stable: records without an order field decode to 0 and keep their
// backend-returned relative position among equals.
func sortByOrder[T models.Ordered](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DisplayOrder() < items[j].DisplayOrder()
	})
}

// Per-entity transform passes. Each runs on every fetch: collapse the id
// alias, then recompute derived display URLs. Derived fields are never sent
// back to the backend.

func (c *Client) transformHero(s *models.HeroSlide) {
	s.ResolveID()
	s.ComputedImageURL = c.ImageURL(s.ImageURL, s.UseUpload)
}

func (c *Client) transformAbout(a *models.AboutItem) {
	a.ResolveID()
	a.ComputedImageURL = c.ImageURL(a.RawImage(), a.UseUpload)
}

func (c *Client) transformArea(a *models.Area) {
	a.ResolveID()
	a.ComputedImageURL = c.ImageURL(a.ImageURL, a.UseUpload)
}

func (c *Client) transformVM(v *models.VisionMissionItem) {
	v.ResolveID()
	v.ComputedImageURL = c.ImageURL(v.ImageURL, v.UseUpload)
}

func (c *Client) transformSummary(s *models.WorkSummary) {
	s.ResolveID()
	s.ComputedImageURL = c.ImageURL(s.ImageURL, s.UseUpload)
}

func (c *Client) transformProject(p *models.Project) {
	p.ResolveID()
	p.ComputedCoverImage = c.ImageURL(p.CoverImage, p.UseUpload)
	p.ComputedHeroImage = c.ImageURL(p.HeroImage, p.UseUpload)
	p.ComputedWhatImage = c.ImageURL(p.WhatImage, p.UseUpload)
	p.ComputedSolutionImages = c.imageURLs(p.SolutionImages, p.UseUpload)
	p.ComputedGalleryImages = c.imageURLs(p.GalleryImages, p.UseUpload)
}

func (c *Client) transformProfile(p *models.Profile) {
	p.ResolveID()
	p.ComputedProfilePicture = c.ImageURL(p.ProfilePicture, p.UseUpload)
}

func (c *Client) imageURLs(raws []string, useUpload bool) []string {
	if len(raws) == 0 {
		return nil
	}
	out := make([]string, len(raws))
	for i, raw := range raws {
		out[i] = c.ImageURL(raw, useUpload)
	}
	return out
}

// transformList applies a per-item transform and sorts by order.
func transformList[T models.Ordered](items []T, transform func(*T)) {
	for i := range items {
		transform(&items[i])
	}
	sortByOrder(items)
}
