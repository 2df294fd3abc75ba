package stubserver

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-client/internal/core/domain"
)

// account pairs a user record with its password hash; the hash never leaves
// the stub.
type account struct {
	user domain.User
	hash string
}

// memStore holds all stub state behind one mutex. Ids are server-assigned
// uuids; collections preserve insertion order the way the real services do.
type memStore struct {
	mu            sync.Mutex
	accounts      map[string]*account // keyed by lowercase email
	tasks         []domain.Task
	projects      []domain.Project
	notifications []domain.Notification
}

func newMemStore() *memStore {
	return &memStore{accounts: make(map[string]*account)}
}

func (m *memStore) createAccount(email, fullName, hash string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := m.accounts[key]; exists {
		return nil, domain.ErrUserExists
	}
	user := domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}
	m.accounts[key] = &account{user: user, hash: hash}
	return &user, nil
}

func (m *memStore) findAccount(email string) (*account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct, ok := m.accounts[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *acct
	return &clone, nil
}

func (m *memStore) findUserByID(id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, acct := range m.accounts {
		if acct.user.ID == id {
			user := acct.user
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memStore) listTasks(userID, projectID string) []domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Task, 0)
	for _, t := range m.tasks {
		if t.CreatedBy != userID {
			continue
		}
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (m *memStore) createTask(task domain.Task) domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UTC()
	m.tasks = append(m.tasks, task)
	return task
}

func (m *memStore) getTask(userID, id string) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tasks {
		if t.ID == id && t.CreatedBy == userID {
			task := t
			return &task, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (m *memStore) updateTask(userID, id string, apply func(*domain.Task)) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id && m.tasks[i].CreatedBy == userID {
			apply(&m.tasks[i])
			now := time.Now().UTC()
			m.tasks[i].UpdatedAt = &now
			task := m.tasks[i]
			return &task, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (m *memStore) listProjects(userID string) []domain.Project {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Project, 0)
	for _, p := range m.projects {
		if p.CreatedBy == userID {
			out = append(out, p)
		}
	}
	return out
}

func (m *memStore) createProject(project domain.Project) domain.Project {
	m.mu.Lock()
	defer m.mu.Unlock()

	project.ID = uuid.NewString()
	project.CreatedAt = time.Now().UTC()
	m.projects = append(m.projects, project)
	return project
}

func (m *memStore) getProject(userID, id string) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.projects {
		if p.ID == id && p.CreatedBy == userID {
			project := p
			return &project, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (m *memStore) updateProject(userID, id string, apply func(*domain.Project)) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.projects {
		if m.projects[i].ID == id && m.projects[i].CreatedBy == userID {
			apply(&m.projects[i])
			now := time.Now().UTC()
			m.projects[i].UpdatedAt = &now
			project := m.projects[i]
			return &project, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (m *memStore) addNotification(n domain.Notification) domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	m.notifications = append(m.notifications, n)
	return n
}

func (m *memStore) listNotifications(userID string, unreadOnly bool) []domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Notification, 0)
	for _, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (m *memStore) markNotificationRead(userID, id string) (*domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.notifications {
		if m.notifications[i].ID == id && m.notifications[i].UserID == userID {
			m.notifications[i].Read = true
			n := m.notifications[i]
			return &n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}
