// Package testutil provides testing utilities.
package testutil

import (
	"taskman/internal/store"
)

// FakeStore is an in-memory implementation of store.Store for testing.
// Commands run against it single-threaded, like the real process.
type FakeStore struct {
	tasks  []store.Task
	nextID int

	// Missing simulates an absent store file: reads and rewrites return
	// store.ErrNoStore until the first Add.
	Missing bool

	// Error injection for testing
	NextIDErr    error
	AddErr       error
	ListErr      error
	SetStatusErr error
	DeleteErr    error
}

// NewFakeStore creates an empty fake store whose file "exists".
func NewFakeStore() *FakeStore {
	return &FakeStore{nextID: 1}
}

// Seed appends tasks directly, bypassing id assignment.
func (f *FakeStore) Seed(tasks ...store.Task) {
	f.tasks = append(f.tasks, tasks...)
	for _, t := range tasks {
		if t.ID >= f.nextID {
			f.nextID = t.ID + 1
		}
	}
}

// Tasks returns the current contents, in order.
func (f *FakeStore) Tasks() []store.Task {
	out := make([]store.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// NextID implements store.Store.
func (f *FakeStore) NextID() (int, error) {
	if f.NextIDErr != nil {
		return 0, f.NextIDErr
	}
	if f.Missing {
		return 1, nil
	}
	return f.nextID, nil
}

// Add implements store.Store.
func (f *FakeStore) Add(description string) (store.Task, error) {
	if f.AddErr != nil {
		return store.Task{}, f.AddErr
	}
	id, _ := f.NextID()
	t := store.Task{ID: id, Description: description}
	f.tasks = append(f.tasks, t)
	f.nextID = id + 1
	f.Missing = false
	return t, nil
}

// List implements store.Store.
func (f *FakeStore) List() ([]store.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	if f.Missing {
		return nil, store.ErrNoStore
	}
	return f.Tasks(), nil
}

// SetStatus implements store.Store.
func (f *FakeStore) SetStatus(id int, completed bool) (bool, error) {
	if f.SetStatusErr != nil {
		return false, f.SetStatusErr
	}
	if f.Missing {
		return false, store.ErrNoStore
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = completed
			return true, nil
		}
	}
	return false, nil
}

// Delete implements store.Store.
func (f *FakeStore) Delete(id int) (bool, error) {
	if f.DeleteErr != nil {
		return false, f.DeleteErr
	}
	if f.Missing {
		return false, store.ErrNoStore
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
