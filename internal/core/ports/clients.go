package ports

import (
	"context"

	"github.com/taskhub/taskhub-client/internal/core/domain"
)

// CreateTaskInput carries the fields accepted by the task creation endpoint.
// Priority is defaulted by the use-case layer, not here.
type CreateTaskInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	ProjectID   string              `json:"project_id,omitempty"`
	Priority    domain.TaskPriority `json:"priority"`
}

// TaskPatch is a partial update; nil fields are omitted from the request body
// and left untouched server-side.
type TaskPatch struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Status      *domain.TaskStatus   `json:"status,omitempty"`
	Priority    *domain.TaskPriority `json:"priority,omitempty"`
	ProjectID   *string              `json:"project_id,omitempty"`
}

// CreateProjectInput carries the fields accepted by the project creation endpoint.
type CreateProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProjectPatch is a partial project update.
type ProjectPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UserAPI is the binding to the user service.
type UserAPI interface {
	Register(ctx context.Context, email, fullName, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// TaskAPI is the binding to the task endpoints of the task service.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)
}

// ProjectAPI is the binding to the project endpoints of the task service.
type ProjectAPI interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)
}

// NotificationAPI is the binding to the notification service.
type NotificationAPI interface {
	ListNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}
