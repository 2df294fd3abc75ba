package store

import (
	"context"

	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
)

// TaskOps is the slice of the task use cases the task store needs.
type TaskOps interface {
	GetTasks(ctx context.Context, projectID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, title, description, projectID string, priority domain.TaskPriority) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch ports.TaskPatch) (*domain.Task, error)
}

// TaskStore caches the task collection.
type TaskStore struct {
	*Store[domain.Task]
	ops TaskOps
}

func NewTaskStore(ops TaskOps) *TaskStore {
	return &TaskStore{
		Store: New(func(t domain.Task) string { return t.ID }),
		ops:   ops,
	}
}

// Fetch reloads all tasks, or one project's tasks when projectID is non-empty.
func (s *TaskStore) Fetch(ctx context.Context, projectID string) {
	s.fetch(ctx, func(ctx context.Context) ([]domain.Task, error) {
		return s.ops.GetTasks(ctx, projectID)
	})
}

func (s *TaskStore) Create(ctx context.Context, title, description, projectID string, priority domain.TaskPriority) (*domain.Task, error) {
	return s.create(ctx, func(ctx context.Context) (*domain.Task, error) {
		return s.ops.CreateTask(ctx, title, description, projectID, priority)
	})
}

func (s *TaskStore) Update(ctx context.Context, id string, patch ports.TaskPatch) (*domain.Task, error) {
	return s.update(ctx, id, func(ctx context.Context) (*domain.Task, error) {
		return s.ops.UpdateTask(ctx, id, patch)
	})
}

// ProjectOps is the slice of the project use cases the project store needs.
type ProjectOps interface {
	GetProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, name, description string) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error)
}

// ProjectStore caches the project collection.
type ProjectStore struct {
	*Store[domain.Project]
	ops ProjectOps
}

func NewProjectStore(ops ProjectOps) *ProjectStore {
	return &ProjectStore{
		Store: New(func(p domain.Project) string { return p.ID }),
		ops:   ops,
	}
}

func (s *ProjectStore) Fetch(ctx context.Context) {
	s.fetch(ctx, s.ops.GetProjects)
}

func (s *ProjectStore) Create(ctx context.Context, name, description string) (*domain.Project, error) {
	return s.create(ctx, func(ctx context.Context) (*domain.Project, error) {
		return s.ops.CreateProject(ctx, name, description)
	})
}

func (s *ProjectStore) Update(ctx context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	return s.update(ctx, id, func(ctx context.Context) (*domain.Project, error) {
		return s.ops.UpdateProject(ctx, id, patch)
	})
}

// NotificationOps is the slice of the notification use cases the
// notification store needs.
type NotificationOps interface {
	GetNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}

// NotificationStore caches the notification collection.
type NotificationStore struct {
	*Store[domain.Notification]
	ops NotificationOps
}

func NewNotificationStore(ops NotificationOps) *NotificationStore {
	return &NotificationStore{
		Store: New(func(n domain.Notification) string { return n.ID }),
		ops:   ops,
	}
}

func (s *NotificationStore) Fetch(ctx context.Context, unreadOnly bool) {
	s.fetch(ctx, func(ctx context.Context) ([]domain.Notification, error) {
		return s.ops.GetNotifications(ctx, unreadOnly)
	})
}

// MarkRead flips a notification to read server-side and reconciles the local
// entry through the update path.
func (s *NotificationStore) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.update(ctx, id, func(ctx context.Context) (*domain.Notification, error) {
		return s.ops.MarkRead(ctx, id)
	})
}

// UnreadCount is recomputed from the collection on every read.
func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.items {
		if !s.items[i].Read {
			count++
		}
	}
	return count
}
