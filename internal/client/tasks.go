package client

import (
	"context"

	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
)

// TasksClient binds the task endpoints of the task service.
type TasksClient struct {
	c *Client
}

func NewTasksClient(g *Gateway, baseURL string) *TasksClient {
	return &TasksClient{c: g.Client("tasks", baseURL)}
}

func (t *TasksClient) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := t.c.get(ctx, apiPrefix+"/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (t *TasksClient) ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := t.c.get(ctx, apiPrefix+"/projects/"+projectID+"/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (t *TasksClient) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := t.c.get(ctx, apiPrefix+"/tasks/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (t *TasksClient) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	var task domain.Task
	if err := t.c.post(ctx, apiPrefix+"/tasks", input, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (t *TasksClient) UpdateTask(ctx context.Context, id string, patch ports.TaskPatch) (*domain.Task, error) {
	var task domain.Task
	if err := t.c.put(ctx, apiPrefix+"/tasks/"+id, patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}
