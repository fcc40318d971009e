package task

import "slices"

// MemoryRepository keeps tasks in an insertion-ordered slice.
type MemoryRepository struct {
	tasks []Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(t Task) error {
	r.tasks = append(r.tasks, t)
	return nil
}

func (r *MemoryRepository) Toggle(id ID) (Task, error) {
	i := r.index(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	r.tasks[i].Completed = !r.tasks[i].Completed
	return r.tasks[i], nil
}

func (r *MemoryRepository) Delete(id ID) (Task, error) {
	i := r.index(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	t := r.tasks[i]
	r.tasks = slices.Delete(r.tasks, i, i+1)
	return t, nil
}

func (r *MemoryRepository) List() ([]Task, error) {
	return slices.Clone(r.tasks), nil
}

func (r *MemoryRepository) index(id ID) int {
	return slices.IndexFunc(r.tasks, func(t Task) bool { return t.ID == id })
}
