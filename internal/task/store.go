package task

import (
	"fmt"
	"strings"
)

// Repository stores task rows in insertion order. Toggle and Delete return
// ErrNotFound for unknown ids and leave the collection untouched.
type Repository interface {
	Insert(t Task) error
	Toggle(id ID) (Task, error)
	Delete(id ID) (Task, error)
	List() ([]Task, error)
}

type ChangeKind int

const (
	ChangeAdded ChangeKind = iota + 1
	ChangeToggled
	ChangeDeleted
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeToggled:
		return "toggled"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change describes one committed mutation. Task is the state after the
// change, or the removed task for ChangeDeleted.
type Change struct {
	Kind    ChangeKind
	Task    Task
	Version uint64
}

type Observer func(Change)

type subscription struct {
	id int
	fn Observer
}

// Store is the single source of truth for the to-do list. It is driven by
// one event loop and is not safe for concurrent use.
type Store struct {
	repo      Repository
	newID     func() ID
	version   uint64
	nextSubID int
	observers []subscription
}

type Option func(*Store)

// WithIDGenerator replaces the UUID generator, mostly for tests.
func WithIDGenerator(gen func() ID) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

func NewStore(repo Repository, opts ...Option) *Store {
	if repo == nil {
		repo = NewMemoryRepository()
	}
	s := &Store{repo: repo, newID: NewID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed appends the initial task set. Seeds get fresh ids and are otherwise
// treated exactly like tasks added later. A blank name rejects the whole set.
func (s *Store) Seed(seeds []Seed) error {
	for i, seed := range seeds {
		if blank(seed.Name) {
			return fmt.Errorf("seed task %d: %w", i, ErrEmptyInput)
		}
	}
	for _, seed := range seeds {
		t := Task{ID: s.newID(), Name: seed.Name, Completed: seed.Completed}
		if err := s.repo.Insert(t); err != nil {
			return fmt.Errorf("seed task %q: %w", seed.Name, err)
		}
		s.publish(ChangeAdded, t)
	}
	return nil
}

// Add appends "<category>: <description>" and returns the new id.
func (s *Store) Add(category, description string) (ID, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrEmptyInput
	}
	t := Task{ID: s.newID(), Name: Name(category, description)}
	if err := s.repo.Insert(t); err != nil {
		return "", fmt.Errorf("add task: %w", err)
	}
	s.publish(ChangeAdded, t)
	return t.ID, nil
}

func (s *Store) ToggleCompleted(id ID) error {
	t, err := s.repo.Toggle(id)
	if err != nil {
		return fmt.Errorf("toggle task %s: %w", id, err)
	}
	s.publish(ChangeToggled, t)
	return nil
}

func (s *Store) Delete(id ID) error {
	t, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	s.publish(ChangeDeleted, t)
	return nil
}

// List returns a snapshot in insertion order.
func (s *Store) List() ([]Task, error) {
	return s.repo.List()
}

// Version counts committed changes.
func (s *Store) Version() uint64 {
	return s.version
}

// Subscribe registers fn to run after every committed change. The returned
// func removes it again.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.nextSubID++
	id := s.nextSubID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) publish(kind ChangeKind, t Task) {
	s.version++
	c := Change{Kind: kind, Task: t, Version: s.version}
	for _, sub := range s.observers {
		sub.fn(c)
	}
}
