package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dkoval/projectdesk/internal/model"
)

type tasksResp struct {
	Tasks []model.Task `json:"tasks"`
}

type taskResp struct {
	Message string     `json:"message"`
	Task    model.Task `json:"task"`
}

// ProjectTasks lists the tasks of one project.
func (c *Client) ProjectTasks(ctx context.Context, projectID string) ([]model.Task, error) {
	var resp tasksResp
	if err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// UserTasks lists the tasks visible to a user across projects.
func (c *Client) UserTasks(ctx context.Context, userID string) ([]model.Task, error) {
	var resp tasksResp
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CreateTask creates a task under its project.
func (c *Client) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	var resp taskResp
	if err := c.do(ctx, http.MethodPost, "/projects/"+url.PathEscape(t.ProjectID)+"/tasks", t, &resp); err != nil {
		return model.Task{}, err
	}
	return resp.Task, nil
}

type taskStateReq struct {
	State string `json:"state"`
}

// UpdateTaskState moves a task to a new state.
func (c *Client) UpdateTaskState(ctx context.Context, id, state string) (model.Task, error) {
	var resp taskResp
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id)+"/state", taskStateReq{State: state}, &resp); err != nil {
		return model.Task{}, err
	}
	return resp.Task, nil
}

// DeleteTask removes a task upstream.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}
