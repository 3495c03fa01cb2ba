package main

import (
	"sync"
	"time"
)

type Task struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTaskRequestBody struct {
	Title       string `json:"title" binding:"required" form:"title"`
	Description string `json:"description,omitempty" form:"description"`
	Completed   bool   `json:"completed,omitempty" form:"completed"`
}

type UpdateTaskRequestBody struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// TaskStore holds every task for the lifetime of the process. It is created
// once in main and handed to the handlers; nothing else mutates it. IDs are
// monotonically increasing and never reused, even after deletes.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []*Task
	nextID uint
}

func NewTaskStore() *TaskStore {
	return &TaskStore{nextID: 1}
}

func (s *TaskStore) List() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	return out
}

func (s *TaskStore) Create(params CreateTaskRequestBody) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	task := &Task{
		ID:          s.nextID,
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.tasks = append(s.tasks, task)
	return *task
}

func (s *TaskStore) Get(id uint) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return *t, true
		}
	}
	return Task{}, false
}

// Update merges the non-nil fields of the payload into the stored task.
func (s *TaskStore) Update(id uint, params UpdateTaskRequestBody) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID != id {
			continue
		}
		if params.Title != nil {
			t.Title = *params.Title
		}
		if params.Description != nil {
			t.Description = *params.Description
		}
		if params.Completed != nil {
			t.Completed = *params.Completed
		}
		t.UpdatedAt = time.Now()
		return *t, true
	}
	return Task{}, false
}

func (s *TaskStore) Toggle(id uint) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			t.Completed = !t.Completed
			t.UpdatedAt = time.Now()
			return *t, true
		}
	}
	return Task{}, false
}

func (s *TaskStore) Delete(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}
