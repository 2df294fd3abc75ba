package service

import (
	"context"
	"strings"
	"testing"

	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
)

type recordingTaskAPI struct {
	lastInput     *ports.CreateTaskInput
	listAllCalls  int
	byProjectArgs []string
}

func (r *recordingTaskAPI) ListTasks(context.Context) ([]domain.Task, error) {
	r.listAllCalls++
	return nil, nil
}

func (r *recordingTaskAPI) ListTasksByProject(_ context.Context, projectID string) ([]domain.Task, error) {
	r.byProjectArgs = append(r.byProjectArgs, projectID)
	return nil, nil
}

func (r *recordingTaskAPI) GetTask(context.Context, string) (*domain.Task, error) {
	return nil, domain.ErrTaskNotFound
}

func (r *recordingTaskAPI) CreateTask(_ context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	r.lastInput = &input
	return &domain.Task{ID: "t1", Title: input.Title, Priority: input.Priority}, nil
}

func (r *recordingTaskAPI) UpdateTask(_ context.Context, id string, _ ports.TaskPatch) (*domain.Task, error) {
	return &domain.Task{ID: id}, nil
}

func TestCreateTaskDefaultsPriorityToMedium(t *testing.T) {
	api := &recordingTaskAPI{}
	uc := NewTaskUseCases(api)

	task, err := uc.CreateTask(context.Background(), "write report", "", "", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.Priority != domain.PriorityMedium {
		t.Fatalf("expected medium priority, got %s", task.Priority)
	}
	if api.lastInput == nil || api.lastInput.Priority != domain.PriorityMedium {
		t.Fatalf("default priority not sent to the API: %+v", api.lastInput)
	}
}

func TestCreateTaskKeepsExplicitPriority(t *testing.T) {
	api := &recordingTaskAPI{}
	uc := NewTaskUseCases(api)

	if _, err := uc.CreateTask(context.Background(), "x", "", "", domain.PriorityUrgent); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if api.lastInput.Priority != domain.PriorityUrgent {
		t.Fatalf("explicit priority was overridden: %s", api.lastInput.Priority)
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	api := &recordingTaskAPI{}
	uc := NewTaskUseCases(api)

	_, err := uc.CreateTask(context.Background(), "", "", "", "")
	if err == nil {
		t.Fatalf("expected validation error for empty title")
	}
	if !strings.Contains(err.Error(), "title is required") {
		t.Fatalf("unexpected message: %v", err)
	}
	if api.lastInput != nil {
		t.Fatalf("invalid payload must not reach the API")
	}
}

func TestCreateTaskRejectsUnknownPriority(t *testing.T) {
	uc := NewTaskUseCases(&recordingTaskAPI{})

	if _, err := uc.CreateTask(context.Background(), "x", "", "", "asap"); err == nil {
		t.Fatalf("expected validation error for unknown priority")
	}
}

func TestGetTasksSwitchesOnProjectFilter(t *testing.T) {
	api := &recordingTaskAPI{}
	uc := NewTaskUseCases(api)

	if _, err := uc.GetTasks(context.Background(), ""); err != nil {
		t.Fatalf("list all: %v", err)
	}
	if _, err := uc.GetTasks(context.Background(), "p1"); err != nil {
		t.Fatalf("list by project: %v", err)
	}
	if api.listAllCalls != 1 {
		t.Fatalf("expected one list-all call, got %d", api.listAllCalls)
	}
	if len(api.byProjectArgs) != 1 || api.byProjectArgs[0] != "p1" {
		t.Fatalf("expected one by-project call for p1, got %v", api.byProjectArgs)
	}
}

type recordingUserAPI struct {
	registered bool
}

func (r *recordingUserAPI) Register(context.Context, string, string, string) (*domain.User, error) {
	r.registered = true
	return &domain.User{ID: "u1"}, nil
}

func (r *recordingUserAPI) Login(context.Context, string, string) (*domain.LoginResult, error) {
	return &domain.LoginResult{AccessToken: "T1", User: &domain.User{ID: "u1"}}, nil
}

func (r *recordingUserAPI) CurrentUser(context.Context) (*domain.User, error) {
	return &domain.User{ID: "u1"}, nil
}

func TestRegisterValidatesEmail(t *testing.T) {
	api := &recordingUserAPI{}
	uc := NewAuthUseCases(api)

	_, err := uc.Register(context.Background(), "not-an-email", "Alice", "password1")
	if err == nil {
		t.Fatalf("expected validation error for bad email")
	}
	if api.registered {
		t.Fatalf("invalid payload must not reach the API")
	}
}

func TestRegisterValidatesPasswordLength(t *testing.T) {
	uc := NewAuthUseCases(&recordingUserAPI{})

	if _, err := uc.Register(context.Background(), "a@x.com", "Alice", "short"); err == nil {
		t.Fatalf("expected validation error for short password")
	}
}

func TestLoginValidatesPayload(t *testing.T) {
	uc := NewAuthUseCases(&recordingUserAPI{})

	if _, err := uc.Login(context.Background(), "a@x.com", ""); err == nil {
		t.Fatalf("expected validation error for empty password")
	}
	if _, err := uc.Login(context.Background(), "a@x.com", "pw"); err != nil {
		t.Fatalf("valid login payload rejected: %v", err)
	}
}

type recordingProjectAPI struct {
	created bool
}

func (r *recordingProjectAPI) ListProjects(context.Context) ([]domain.Project, error) {
	return nil, nil
}

func (r *recordingProjectAPI) GetProject(context.Context, string) (*domain.Project, error) {
	return nil, domain.ErrProjectNotFound
}

func (r *recordingProjectAPI) CreateProject(_ context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	r.created = true
	return &domain.Project{ID: "p1", Name: input.Name}, nil
}

func (r *recordingProjectAPI) UpdateProject(_ context.Context, id string, _ ports.ProjectPatch) (*domain.Project, error) {
	return &domain.Project{ID: id}, nil
}

func TestCreateProjectRequiresName(t *testing.T) {
	api := &recordingProjectAPI{}
	uc := NewProjectUseCases(api)

	if _, err := uc.CreateProject(context.Background(), "", "desc"); err == nil {
		t.Fatalf("expected validation error for empty name")
	}
	if api.created {
		t.Fatalf("invalid payload must not reach the API")
	}
}
