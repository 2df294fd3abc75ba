package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
)

type fakeTaskOps struct {
	mu      sync.Mutex
	tasks   []domain.Task
	listErr error

	createErr error
	updateErr error
	updated   *domain.Task

	// When set, GetTasks blocks until a value arrives on the channel; the
	// value becomes the response. Used to control resolution order.
	listGate chan []domain.Task
}

func (f *fakeTaskOps) GetTasks(context.Context, string) ([]domain.Task, error) {
	if f.listGate != nil {
		return <-f.listGate, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeTaskOps) CreateTask(_ context.Context, title, _, _ string, priority domain.TaskPriority) (*domain.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Task{ID: "srv-1", Title: title, Priority: priority}, nil
}

func (f *fakeTaskOps) UpdateTask(_ context.Context, id string, _ ports.TaskPatch) (*domain.Task, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updated != nil {
		return f.updated, nil
	}
	return &domain.Task{ID: id, Title: "updated"}, nil
}

func task(id, title string) domain.Task {
	return domain.Task{ID: id, Title: title, Status: domain.StatusTodo, Priority: domain.PriorityMedium}
}

func TestFetchReplacesItemsWholesale(t *testing.T) {
	ops := &fakeTaskOps{tasks: []domain.Task{task("t1", "one"), task("t2", "two")}}
	s := NewTaskStore(ops)

	if s.Loading() {
		t.Fatalf("loading must be false before the call")
	}

	s.Fetch(context.Background(), "")

	if s.Loading() {
		t.Fatalf("loading must be false after the call settles")
	}
	if s.Err() != "" {
		t.Fatalf("unexpected error: %q", s.Err())
	}
	items := s.Items()
	if len(items) != 2 || items[0].ID != "t1" || items[1].ID != "t2" {
		t.Fatalf("unexpected items: %+v", items)
	}

	// A later fetch replaces, not merges.
	ops.mu.Lock()
	ops.tasks = []domain.Task{task("t3", "three")}
	ops.mu.Unlock()
	s.Fetch(context.Background(), "")
	items = s.Items()
	if len(items) != 1 || items[0].ID != "t3" {
		t.Fatalf("fetch did not replace wholesale: %+v", items)
	}
}

func TestFetchFailurePreservesItems(t *testing.T) {
	ops := &fakeTaskOps{tasks: []domain.Task{task("t1", "one")}}
	s := NewTaskStore(ops)
	s.Fetch(context.Background(), "")

	ops.mu.Lock()
	ops.listErr = errors.New("service unavailable")
	ops.mu.Unlock()
	s.Fetch(context.Background(), "")

	if s.Err() == "" {
		t.Fatalf("expected error slot to be set")
	}
	if s.Loading() {
		t.Fatalf("loading must settle to false on failure")
	}
	items := s.Items()
	if len(items) != 1 || items[0].ID != "t1" {
		t.Fatalf("failed fetch must preserve prior items: %+v", items)
	}
}

func TestFetchSuccessClearsPriorError(t *testing.T) {
	ops := &fakeTaskOps{listErr: errors.New("down")}
	s := NewTaskStore(ops)
	s.Fetch(context.Background(), "")
	if s.Err() == "" {
		t.Fatalf("expected recorded error")
	}

	ops.mu.Lock()
	ops.listErr = nil
	ops.mu.Unlock()
	s.Fetch(context.Background(), "")
	if s.Err() != "" {
		t.Fatalf("successful fetch must clear the error slot, got %q", s.Err())
	}
}

func TestCreateAppendsExactlyOne(t *testing.T) {
	ops := &fakeTaskOps{tasks: []domain.Task{task("t1", "one")}}
	s := NewTaskStore(ops)
	s.Fetch(context.Background(), "")

	created, err := s.Create(context.Background(), "new task", "", "", domain.PriorityHigh)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after create, got %d", len(items))
	}
	if items[1].ID != created.ID || items[1].ID != "srv-1" {
		t.Fatalf("appended item must carry the server id: %+v", items[1])
	}
}

func TestCreateFailureRecordsAndReturnsError(t *testing.T) {
	ops := &fakeTaskOps{createErr: errors.New("validation rejected")}
	s := NewTaskStore(ops)

	_, err := s.Create(context.Background(), "x", "", "", "")
	if err == nil {
		t.Fatalf("create must re-throw the error")
	}
	if s.Err() != "validation rejected" {
		t.Fatalf("error slot not recorded: %q", s.Err())
	}
	if len(s.Items()) != 0 {
		t.Fatalf("failed create must not touch items")
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	ops := &fakeTaskOps{tasks: []domain.Task{task("t1", "one"), task("t2", "two")}}
	s := NewTaskStore(ops)
	s.Fetch(context.Background(), "")

	ops.updated = &domain.Task{ID: "t1", Title: "renamed", Status: domain.StatusDone}
	if _, err := s.Update(context.Background(), "t1", ports.TaskPatch{}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("update must not change the collection size")
	}
	if items[0].Title != "renamed" || items[0].Status != domain.StatusDone {
		t.Fatalf("entry not replaced with server representation: %+v", items[0])
	}
	if items[1].ID != "t2" {
		t.Fatalf("insertion order disturbed: %+v", items)
	}
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	ops := &fakeTaskOps{tasks: []domain.Task{task("t1", "one")}}
	s := NewTaskStore(ops)
	s.Fetch(context.Background(), "")

	ops.updated = &domain.Task{ID: "ghost", Title: "phantom"}
	if _, err := s.Update(context.Background(), "ghost", ports.TaskPatch{}); err != nil {
		t.Fatalf("no-op update must not surface an error: %v", err)
	}
	if s.Err() != "" {
		t.Fatalf("no-op update must not set the error slot: %q", s.Err())
	}

	items := s.Items()
	if len(items) != 1 || items[0].ID != "t1" {
		t.Fatalf("collection must be untouched: %+v", items)
	}
}

func TestUpdateFailureSurfacesHTTPError(t *testing.T) {
	ops := &fakeTaskOps{
		tasks:     []domain.Task{task("t1", "one")},
		updateErr: errors.New("http 404: task not found"),
	}
	s := NewTaskStore(ops)
	s.Fetch(context.Background(), "")

	if _, err := s.Update(context.Background(), "t1", ports.TaskPatch{}); err == nil {
		t.Fatalf("underlying HTTP failure must be surfaced")
	}
	if s.Err() == "" {
		t.Fatalf("error slot must record the failure")
	}
}

func TestConcurrentFetchLastWriteWins(t *testing.T) {
	gate := make(chan []domain.Task)
	s := NewTaskStore(&fakeTaskOps{listGate: gate})

	settled := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			s.Fetch(context.Background(), "")
			settled <- struct{}{}
		}()
	}

	// Two fetches are in flight. Resolve one with the stale response and
	// wait for it to settle, then resolve the other; the later response
	// overwrites the earlier one wholesale.
	gate <- []domain.Task{task("stale", "first response")}
	<-settled
	gate <- []domain.Task{task("fresh", "second response")}
	<-settled

	items := s.Items()
	if len(items) != 1 || items[0].ID != "fresh" {
		t.Fatalf("last response must win wholesale: %+v", items)
	}
}

func TestLoadingDropsWhenFirstCallSettles(t *testing.T) {
	gate := make(chan []domain.Task)
	s := NewTaskStore(&fakeTaskOps{listGate: gate})

	settled := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			s.Fetch(context.Background(), "")
			settled <- struct{}{}
		}()
	}

	// Let one of the two in-flight fetches settle.
	gate <- []domain.Task{task("t1", "one")}
	<-settled

	// The flag is not reference-counted: it already reads false while the
	// second call is still outstanding.
	if s.Loading() {
		t.Fatalf("loading must drop as soon as the first call settles")
	}

	gate <- []domain.Task{task("t2", "two")}
	<-settled
}

func TestObserverNotifiedOnMutation(t *testing.T) {
	ops := &fakeTaskOps{tasks: []domain.Task{task("t1", "one")}}
	s := NewTaskStore(ops)

	var mu sync.Mutex
	notified := 0
	s.SetObserver(func() {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	s.Fetch(context.Background(), "")

	mu.Lock()
	defer mu.Unlock()
	// begin and settle each notify.
	if notified != 2 {
		t.Fatalf("expected 2 notifications for one fetch, got %d", notified)
	}
}
