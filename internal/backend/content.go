// internal/backend/content.go
package backend

import (
	"context"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

// ListStats fetches the home page counters, sorted by order.
func (c *Client) ListStats(ctx context.Context) Result[[]models.Stat] {
	res := getList[models.Stat](c, ctx, "/home/stats", false, "stats", "data")
	if res.Success {
		transformList(res.Data, func(s *models.Stat) { s.ResolveID() })
	}
	return res
}

// ListAboutItems fetches the home page's about cards.
func (c *Client) ListAboutItems(ctx context.Context) Result[[]models.AboutItem] {
	res := getList[models.AboutItem](c, ctx, "/home/about", false, "about", "data")
	if res.Success {
		transformList(res.Data, c.transformAbout)
	}
	return res
}

// GetAboutSection fetches the about-us page's singleton section.
func (c *Client) GetAboutSection(ctx context.Context) Result[models.AboutItem] {
	res := getOne[models.AboutItem](c, ctx, "/about-us/about", false, "about", "data")
	if res.Success {
		c.transformAbout(&res.Data)
	}
	return res
}

// ListAreas fetches the about-us focus areas.
func (c *Client) ListAreas(ctx context.Context) Result[[]models.Area] {
	res := getList[models.Area](c, ctx, "/about-us/areas", false, "areas", "data")
	if res.Success {
		transformList(res.Data, c.transformArea)
	}
	return res
}

// ListVideos fetches the home page's video items.
func (c *Client) ListVideos(ctx context.Context) Result[[]models.VideoItem] {
	res := getList[models.VideoItem](c, ctx, "/home/video", false, "videos", "data")
	if res.Success {
		transformList(res.Data, func(v *models.VideoItem) { v.ResolveID() })
	}
	return res
}

// ListVMItems fetches vision & mission items, optionally filtered by type
// (mission|vision|goal|values). An empty filter returns all items.
func (c *Client) ListVMItems(ctx context.Context, vmType string) Result[[]models.VisionMissionItem] {
	path := "/vm/items"
	if vmType != "" {
		path += "?type=" + vmType
	}
	res := getList[models.VisionMissionItem](c, ctx, path, false, "items", "data")
	if res.Success {
		transformList(res.Data, c.transformVM)
	}
	return res
}
