package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dkoval/projectdesk/internal/model"
)

type projectsResp struct {
	Projects []model.Project `json:"projects"`
}

type projectResp struct {
	Message string        `json:"message"`
	Project model.Project `json:"project"`
}

// UserProjects lists the projects visible to a user.
func (c *Client) UserProjects(ctx context.Context, userID string) ([]model.Project, error) {
	var resp projectsResp
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/projects", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

// CreateProject creates a project upstream and returns the stored record.
func (c *Client) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	var resp projectResp
	if err := c.do(ctx, http.MethodPost, "/projects", p, &resp); err != nil {
		return model.Project{}, err
	}
	return resp.Project, nil
}

// UpdateProject replaces a project's mutable fields.
func (c *Client) UpdateProject(ctx context.Context, p model.Project) (model.Project, error) {
	var resp projectResp
	if err := c.do(ctx, http.MethodPut, "/projects/"+url.PathEscape(p.ID), p, &resp); err != nil {
		return model.Project{}, err
	}
	return resp.Project, nil
}

// DeleteProject removes a project upstream.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), nil, nil)
}
