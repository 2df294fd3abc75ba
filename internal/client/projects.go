package client

import (
	"context"

	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
)

// ProjectsClient binds the project endpoints of the task service.
type ProjectsClient struct {
	c *Client
}

func NewProjectsClient(g *Gateway, baseURL string) *ProjectsClient {
	return &ProjectsClient{c: g.Client("tasks", baseURL)}
}

func (p *ProjectsClient) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := p.c.get(ctx, apiPrefix+"/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (p *ProjectsClient) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	if err := p.c.get(ctx, apiPrefix+"/projects/"+id, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (p *ProjectsClient) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	var project domain.Project
	if err := p.c.post(ctx, apiPrefix+"/projects", input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (p *ProjectsClient) UpdateProject(ctx context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	var project domain.Project
	if err := p.c.put(ctx, apiPrefix+"/projects/"+id, patch, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
