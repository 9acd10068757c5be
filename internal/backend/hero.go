// internal/backend/hero.go
package backend

import (
	"context"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

// Hero endpoint families. Home and about-us carry slide lists; the
// vision & mission page's hero is a singleton.
const (
	HeroHome    = "/home/hero"
	HeroAboutUs = "/about-us/hero"
	HeroVM      = "/vm/hero"
)

// ListHeroSlides fetches a page's hero slides, transformed and sorted.
func (c *Client) ListHeroSlides(ctx context.Context, family string) Result[[]models.HeroSlide] {
	res := getList[models.HeroSlide](c, ctx, family, false, "hero", "data")
	if res.Success {
		transformList(res.Data, c.transformHero)
	}
	return res
}

// GetVMHero fetches the vision & mission page's singleton hero.
func (c *Client) GetVMHero(ctx context.Context) Result[models.HeroSlide] {
	res := getOne[models.HeroSlide](c, ctx, HeroVM, false, "hero", "data")
	if res.Success {
		c.transformHero(&res.Data)
	}
	return res
}
