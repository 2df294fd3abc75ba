package stubserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/taskhub-client/internal/core/domain"
)

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	ProjectID   string `json:"project_id"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=todo in_progress done cancelled"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	ProjectID   *string `json:"project_id"`
}

type createProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *Server) handleListTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.listTasks(userID(c), ""))
}

func (s *Server) handleListProjectTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.listTasks(userID(c), c.Param("id")))
}

func (s *Server) handleGetTask(c echo.Context) error {
	task, err := s.store.getTask(userID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleCreateTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	priority := domain.TaskPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	uid := userID(c)
	task := s.store.createTask(domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.StatusTodo,
		Priority:    priority,
		ProjectID:   req.ProjectID,
		CreatedBy:   uid,
	})

	// The real platform emits this through the notification service's event
	// consumer; the stub shortcuts it in-process.
	s.store.addNotification(domain.Notification{
		UserID:  uid,
		Title:   "Task created",
		Message: task.Title,
		Type:    "task_created",
	})

	s.log.Info().Str("task_id", task.ID).Str("user_id", uid).Msg("task created")
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := s.store.updateTask(userID(c), c.Param("id"), func(t *domain.Task) {
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.Status != nil {
			t.Status = domain.TaskStatus(*req.Status)
		}
		if req.Priority != nil {
			t.Priority = domain.TaskPriority(*req.Priority)
		}
		if req.ProjectID != nil {
			t.ProjectID = *req.ProjectID
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleListProjects(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.listProjects(userID(c)))
}

func (s *Server) handleGetProject(c echo.Context) error {
	project, err := s.store.getProject(userID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (s *Server) handleCreateProject(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project := s.store.createProject(domain.Project{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID(c),
	})
	return c.JSON(http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := s.store.updateProject(userID(c), c.Param("id"), func(p *domain.Project) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}
