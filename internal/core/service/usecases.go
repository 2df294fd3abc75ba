package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
)

// Use cases are stateless adapters that validate and shape request payloads
// before delegating to the service bindings. They hold no state beyond the
// injected client and a validator instance.

// AuthUseCases wraps the user binding with payload validation. It satisfies
// ports.UserAPI so it can sit between Session and the raw binding.
type AuthUseCases struct {
	users    ports.UserAPI
	validate *validator.Validate
}

func NewAuthUseCases(users ports.UserAPI) *AuthUseCases {
	return &AuthUseCases{users: users, validate: validator.New()}
}

type registerPayload struct {
	Email    string `validate:"required,email"`
	FullName string `validate:"required"`
	Password string `validate:"required,min=8"`
}

type loginPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (a *AuthUseCases) Register(ctx context.Context, email, fullName, password string) (*domain.User, error) {
	payload := registerPayload{Email: email, FullName: fullName, Password: password}
	if err := checkPayload(a.validate, payload); err != nil {
		return nil, err
	}
	return a.users.Register(ctx, email, fullName, password)
}

func (a *AuthUseCases) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	payload := loginPayload{Email: email, Password: password}
	if err := checkPayload(a.validate, payload); err != nil {
		return nil, err
	}
	return a.users.Login(ctx, email, password)
}

func (a *AuthUseCases) CurrentUser(ctx context.Context) (*domain.User, error) {
	return a.users.CurrentUser(ctx)
}

// TaskUseCases shapes task requests: list switching on the project filter,
// creation defaulting the priority to medium.
type TaskUseCases struct {
	tasks    ports.TaskAPI
	validate *validator.Validate
}

func NewTaskUseCases(tasks ports.TaskAPI) *TaskUseCases {
	return &TaskUseCases{tasks: tasks, validate: validator.New()}
}

type createTaskPayload struct {
	Title    string              `validate:"required"`
	Priority domain.TaskPriority `validate:"required,oneof=low medium high urgent"`
}

// GetTasks lists all tasks, or the tasks of one project when projectID is
// non-empty.
func (t *TaskUseCases) GetTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	if projectID != "" {
		return t.tasks.ListTasksByProject(ctx, projectID)
	}
	return t.tasks.ListTasks(ctx)
}

func (t *TaskUseCases) CreateTask(ctx context.Context, title, description, projectID string, priority domain.TaskPriority) (*domain.Task, error) {
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if err := checkPayload(t.validate, createTaskPayload{Title: title, Priority: priority}); err != nil {
		return nil, err
	}
	return t.tasks.CreateTask(ctx, ports.CreateTaskInput{
		Title:       title,
		Description: description,
		ProjectID:   projectID,
		Priority:    priority,
	})
}

func (t *TaskUseCases) UpdateTask(ctx context.Context, id string, patch ports.TaskPatch) (*domain.Task, error) {
	return t.tasks.UpdateTask(ctx, id, patch)
}

// ProjectUseCases shapes project requests.
type ProjectUseCases struct {
	projects ports.ProjectAPI
	validate *validator.Validate
}

func NewProjectUseCases(projects ports.ProjectAPI) *ProjectUseCases {
	return &ProjectUseCases{projects: projects, validate: validator.New()}
}

type createProjectPayload struct {
	Name string `validate:"required"`
}

func (p *ProjectUseCases) GetProjects(ctx context.Context) ([]domain.Project, error) {
	return p.projects.ListProjects(ctx)
}

func (p *ProjectUseCases) CreateProject(ctx context.Context, name, description string) (*domain.Project, error) {
	if err := checkPayload(p.validate, createProjectPayload{Name: name}); err != nil {
		return nil, err
	}
	return p.projects.CreateProject(ctx, ports.CreateProjectInput{Name: name, Description: description})
}

func (p *ProjectUseCases) UpdateProject(ctx context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	return p.projects.UpdateProject(ctx, id, patch)
}

// NotificationUseCases shapes notification requests.
type NotificationUseCases struct {
	notifications ports.NotificationAPI
}

func NewNotificationUseCases(notifications ports.NotificationAPI) *NotificationUseCases {
	return &NotificationUseCases{notifications: notifications}
}

func (n *NotificationUseCases) GetNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	return n.notifications.ListNotifications(ctx, unreadOnly)
}

func (n *NotificationUseCases) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return n.notifications.MarkRead(ctx, id)
}
