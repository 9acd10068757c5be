// internal/backend/ourwork.go
package backend

import (
	"context"
	"net/http"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

// GetWorkSummary fetches the strip above the project grid.
func (c *Client) GetWorkSummary(ctx context.Context) Result[models.WorkSummary] {
	res := getOne[models.WorkSummary](c, ctx, "/our-work/summary", false, "summary", "data")
	if res.Success {
		c.transformSummary(&res.Data)
	}
	return res
}

// ListProjects fetches the public project grid, sorted by order.
func (c *Client) ListProjects(ctx context.Context) Result[[]models.Project] {
	res := getList[models.Project](c, ctx, "/our-work", false, "projects", "data")
	if res.Success {
		transformList(res.Data, c.transformProject)
	}
	return res
}

// GetProject fetches one project for the public detail page.
func (c *Client) GetProject(ctx context.Context, id string) Result[models.Project] {
	res := getOne[models.Project](c, ctx, "/our-work/"+id, false, "project", "data")
	if res.Success {
		c.transformProject(&res.Data)
	}
	return res
}

// ProjectWrite is an admin create/update for a project. Projects always
// write multipart because they carry up to three named images plus bounded
// solution (1-4) and gallery (3-6) image sets; images already stored are
// referenced by their field value instead of re-uploading.
type ProjectWrite struct {
	Fields map[string]string
	Files  []Upload // named parts: coverImage, heroImage, whatImage, solutionImages, galleryImages
}

// CreateProject posts a new project.
func (c *Client) CreateProject(ctx context.Context, w ProjectWrite) Result[models.Project] {
	return c.writeProject(ctx, http.MethodPost, "/our-work", w)
}

// UpdateProject rewrites an existing project.
func (c *Client) UpdateProject(ctx context.Context, id string, w ProjectWrite) Result[models.Project] {
	return c.writeProject(ctx, http.MethodPut, "/our-work/"+id, w)
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id string) Result[models.Project] {
	return mutate[models.Project](c, ctx, http.MethodDelete, "/our-work/"+id, nil, "project", "data")
}

func (c *Client) writeProject(ctx context.Context, method, path string, w ProjectWrite) Result[models.Project] {
	var (
		raw []byte
		ce  *callError
	)
	if len(w.Files) > 0 {
		raw, ce = c.doMultipart(ctx, method, path, w.Fields, w.Files)
	} else {
		body, err := jsonBody(w.Fields)
		if err != nil {
			return Result[models.Project]{Error: err.Error()}
		}
		raw, ce = c.do(ctx, method, path, body, "application/json", true)
	}
	if ce != nil {
		return fail[models.Project](ce)
	}
	var p models.Project
	if len(raw) > 0 {
		_ = decodeInto(raw, &p, "project", "data")
	}
	c.transformProject(&p)
	return ok(p)
}
